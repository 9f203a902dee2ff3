package ai

// TranscriptionError wraps an audio fetch or conversion failure. Callers
// degrade to an empty transcript and continue the turn.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string { return "transcription failed: " + e.Err.Error() }
func (e *TranscriptionError) Unwrap() error { return e.Err }

// GenerationError wraps a completion provider failure. Callers abort the
// turn with a fixed apology reply.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "generation failed: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }
