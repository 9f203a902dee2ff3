package ai

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("socket closed")

	var genErr *GenerationError
	wrapped := fmt.Errorf("turn failed: %w", &GenerationError{Err: cause})
	if !errors.As(wrapped, &genErr) {
		t.Fatalf("errors.As failed for GenerationError")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("cause lost through GenerationError")
	}

	var trErr *TranscriptionError
	if !errors.As(&TranscriptionError{Err: cause}, &trErr) {
		t.Fatalf("errors.As failed for TranscriptionError")
	}
}
