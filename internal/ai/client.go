// Package ai adapts the OpenAI API for the bot: chat completions for the
// generative fallback and whisper transcription for voice notes.
package ai

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Niharikab29/Airport-Saathi/internal/config"
)

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultChatHTTPTimeout}
}

// Client talks to the OpenAI API. No retries: a failed call degrades to a
// fixed fallback reply immediately.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.OpenAIBaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.ChatModel)
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.OpenAIAPIKey),
		model:      model,
		httpClient: NewHTTPClient(),
	}
}

func (c *Client) api() (openaigo.Client, error) {
	if c.apiKey == "" {
		return openaigo.Client{}, fmt.Errorf("config incomplete: OPENAI_API_KEY is required")
	}
	return openaigo.NewClient(
		option.WithBaseURL(c.baseURL),
		option.WithAPIKey(c.apiKey),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(DefaultChatHTTPTimeout),
	), nil
}

// Complete sends the role-tagged messages to the chat model and returns the
// generated reply text.
func (c *Client) Complete(ctx context.Context, messages []openaigo.ChatCompletionMessageParamUnion, maxTokens int64) (string, error) {
	client, err := c.api()
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	resp, err := client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model:     openaigo.ChatModel(c.model),
		Messages:  messages,
		MaxTokens: openaigo.Int(maxTokens),
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Err: fmt.Errorf("llm returned empty choices")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Transcribe converts an audio byte stream to a text transcript.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	client, err := c.api()
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}

	resp, err := client.Audio.Transcriptions.New(ctx, openaigo.AudioTranscriptionNewParams{
		Model: transcriptionModel,
		File:  openaigo.File(bytes.NewReader(audio), transcriptionFilename, mimeType),
	})
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}
	return strings.TrimSpace(resp.Text), nil
}
