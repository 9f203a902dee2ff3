// Package store owns per-user conversation state. Sessions live in memory
// only and are created lazily on first contact; they are never evicted,
// though each session's history is pruned to a trailing time window.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// HistoryWindow is the trailing window a session's history is pruned to at
// the start of every turn.
const HistoryWindow = time.Hour

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one history entry, user or assistant.
type Turn struct {
	ID      string
	Role    Role
	Content string
	At      time.Time
}

// Profile holds attributes inferred from user messages. Fields are filled
// in monotonically and never cleared; a later mention overwrites an
// earlier one.
type Profile struct {
	Name            string
	Language        string
	FavoriteAirline string
}

type FeedbackEntry struct {
	ID       string
	Response string // "yes" or "no"
	At       time.Time
}

type Feedback struct {
	InteractionCount int
	Awaiting         bool
	Log              []FeedbackEntry
}

// Session is the accumulated conversation state for one sender.
type Session struct {
	UserID   string
	History  []Turn
	Profile  Profile
	Feedback Feedback

	// TotalTurns counts user turns ever seen, so first-contact detection
	// survives history pruning.
	TotalTurns int
}

// Prune drops history entries older than HistoryWindow relative to now.
// Called at the start of each turn, before the new user entry is appended.
func (s *Session) Prune(now time.Time) {
	cutoff := now.Add(-HistoryWindow)
	kept := s.History[:0]
	for _, t := range s.History {
		if !t.At.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	s.History = kept
}

// Append adds a turn to the history. User turns bump TotalTurns.
func (s *Session) Append(role Role, content string, at time.Time) {
	s.History = append(s.History, Turn{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
		At:      at,
	})
	if role == RoleUser {
		s.TotalTurns++
	}
}

// RecordFeedback logs a yes/no answer to the satisfaction prompt.
func (s *Session) RecordFeedback(response string, at time.Time) {
	s.Feedback.Log = append(s.Feedback.Log, FeedbackEntry{
		ID:       uuid.NewString(),
		Response: response,
		At:       at,
	})
}

// Store is the process-wide session map. The turn resolver is the only
// writer of session state; it must hold the per-user lock for the whole
// turn so that turns from the same sender never interleave.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		sessions: map[string]*Session{},
		locks:    map[string]*sync.Mutex{},
	}
}

// GetOrCreate returns the session for a sender, creating an empty one on
// first contact.
func (st *Store) GetOrCreate(userID string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s = &Session{UserID: userID}
	st.sessions[userID] = s
	return s
}

// Lock returns the per-user mutex for a sender, creating it lazily.
func (st *Store) Lock(userID string) *sync.Mutex {
	st.lockMu.Lock()
	defer st.lockMu.Unlock()
	if mu, ok := st.locks[userID]; ok {
		return mu
	}
	mu := &sync.Mutex{}
	st.locks[userID] = mu
	return mu
}
