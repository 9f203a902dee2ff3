package ai

import "time"

const (
	DefaultBaseURL         = "https://api.openai.com/v1"
	DefaultModel           = "gpt-4o-mini"
	DefaultChatHTTPTimeout = 75 * time.Second

	transcriptionModel    = "whisper-1"
	transcriptionFilename = "voice.ogg"
)
