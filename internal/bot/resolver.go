// Package bot implements the conversation turn-resolution pipeline: given
// one inbound message and a per-user session, decide how to answer it
// (structured lookup vs. generative fallback), maintain bounded
// conversational state, and produce a structured outbound reply.
package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"

	"github.com/Niharikab29/Airport-Saathi/internal/kb"
	"github.com/Niharikab29/Airport-Saathi/internal/store"
)

// Transcriber converts an audio byte stream to a text transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Completer returns a generated reply for a list of role-tagged messages.
type Completer interface {
	Complete(ctx context.Context, messages []openaigo.ChatCompletionMessageParamUnion, maxTokens int64) (string, error)
}

// MediaFetcher downloads an inbound media item from the channel.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, mediaURL string) ([]byte, error)
}

// Inbound is one inbound turn, already lifted out of channel form fields.
type Inbound struct {
	UserID           string
	Text             string
	HasAudio         bool
	MediaURL         string
	MediaContentType string
	Latitude         string
	Longitude        string
}

func (in Inbound) hasGeolocation() bool {
	return strings.TrimSpace(in.Latitude) != "" && strings.TrimSpace(in.Longitude) != ""
}

// Resolver orchestrates one turn. It is the only writer of session state.
type Resolver struct {
	store       *store.Store
	transcriber Transcriber
	completer   Completer
	media       MediaFetcher
	now         func() time.Time
}

func NewResolver(st *store.Store, transcriber Transcriber, completer Completer, media MediaFetcher) *Resolver {
	return &Resolver{
		store:       st,
		transcriber: transcriber,
		completer:   completer,
		media:       media,
		now:         time.Now,
	}
}

// HandleTurn resolves one inbound turn into a reply. All collaborator
// failures are absorbed here; the caller always gets something renderable.
//
// Turns for the same sender are serialized on a per-user mutex held across
// the whole turn, including the transcription and completion calls. The
// reference behavior left concurrent same-user turns racy; this closes
// that race on purpose.
func (r *Resolver) HandleTurn(ctx context.Context, in Inbound) Reply {
	mu := r.store.Lock(in.UserID)
	mu.Lock()
	defer mu.Unlock()

	now := r.now()

	// Geolocation takes priority over any text body sent alongside it.
	text := in.Text
	hasLocation := in.hasGeolocation()
	if hasLocation {
		text = fmt.Sprintf("I am at latitude %s, longitude %s inside the airport.",
			strings.TrimSpace(in.Latitude), strings.TrimSpace(in.Longitude))
	} else if in.HasAudio {
		text = r.transcribeInbound(ctx, in)
	}

	s := r.store.GetOrCreate(in.UserID)
	store.RecordProfileHints(s, text)
	s.Prune(now)
	s.Append(store.RoleUser, text, now)

	trimmed := strings.ToLower(strings.TrimSpace(text))

	// A pending feedback prompt is resolved by the very next inbound turn:
	// yes/no is recorded and acknowledged, anything else falls through to
	// normal answer resolution.
	if s.Feedback.Awaiting {
		s.Feedback.Awaiting = false
		s.Feedback.InteractionCount = 0
		if trimmed == "yes" || trimmed == "no" {
			s.RecordFeedback(trimmed, now)
			log.Printf("%s feedback recorded: user=%s response=%s", logPrefix, in.UserID, trimmed)
			return Reply{Text: feedbackThanks}
		}
	}

	// First contact, or an explicit ask for help, without a location to
	// work from: prompt for one. Counts as an answered interaction.
	if (s.TotalTurns == 1 || hasHelpIntent(trimmed)) && !hasLocation {
		return r.finishTurn(s, now, locationPrompt)
	}

	if fact, ok := kb.Resolve(text); ok {
		log.Printf("%s kb hit: user=%s", logPrefix, in.UserID)
		return r.finishTurn(s, now, fact)
	}

	answer, err := r.complete(ctx, s)
	if err != nil {
		// No partial assistant turn on this path; the user turn stays.
		log.Printf("%s generation failed: user=%s err=%v", logPrefix, in.UserID, err)
		return Reply{Text: apologyReply}
	}
	if isUncertain(answer) {
		log.Printf("%s uncertain reply replaced with helpdesk fallback: user=%s", logPrefix, in.UserID)
		answer = helpdeskFallback
	}
	return r.finishTurn(s, now, answer)
}

// finishTurn is the shared tail of every answered turn: store the answer,
// bump the interaction counter, maybe swap in the satisfaction prompt, and
// lift inline directives into the structured reply.
func (r *Resolver) finishTurn(s *store.Session, now time.Time, answer string) Reply {
	s.Append(store.RoleAssistant, answer, now)
	s.Feedback.InteractionCount++

	out := answer
	if s.Feedback.InteractionCount >= feedbackEvery && !s.Feedback.Awaiting {
		// The computed answer stays in history; the user sees it one
		// interaction later in effect.
		s.Feedback.Awaiting = true
		s.Feedback.InteractionCount = 0
		out = feedbackPrompt
	}
	return parseReplyDirectives(out)
}

// transcribeInbound fetches and transcribes a voice note. Failures degrade
// to an empty utterance so the turn can continue.
func (r *Resolver) transcribeInbound(ctx context.Context, in Inbound) string {
	audio, err := r.media.FetchMedia(ctx, in.MediaURL)
	if err != nil {
		log.Printf("%s media fetch failed, continuing with empty text: user=%s err=%v", logPrefix, in.UserID, err)
		return ""
	}
	transcript, err := r.transcriber.Transcribe(ctx, audio, in.MediaContentType)
	if err != nil {
		log.Printf("%s transcription failed, continuing with empty text: user=%s err=%v", logPrefix, in.UserID, err)
		return ""
	}
	return transcript
}

// complete builds the generative request: system instruction (plus a
// profile summary when anything is known about the traveler) followed by
// the pruned history, oldest first.
func (r *Resolver) complete(ctx context.Context, s *store.Session) (string, error) {
	system := systemPrompt
	if summary := profileSummary(s.Profile); summary != "" {
		system += "\n\n" + summary
	}

	messages := make([]openaigo.ChatCompletionMessageParamUnion, 0, 1+len(s.History))
	messages = append(messages, openaigo.SystemMessage(system))
	for _, turn := range s.History {
		switch turn.Role {
		case store.RoleAssistant:
			messages = append(messages, openaigo.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openaigo.UserMessage(turn.Content))
		}
	}

	return r.completer.Complete(ctx, messages, maxReplyTokens)
}

func profileSummary(p store.Profile) string {
	var parts []string
	if p.Name != "" {
		parts = append(parts, "name: "+p.Name)
	}
	if p.Language != "" {
		parts = append(parts, "preferred language: "+p.Language)
	}
	if p.FavoriteAirline != "" {
		parts = append(parts, "usual airline: "+p.FavoriteAirline)
	}
	if len(parts) == 0 {
		return ""
	}
	return "What you know about this traveler - " + strings.Join(parts, ", ") + "."
}
