package stt

import "context"

// Result is a single recognition outcome.
type Result struct {
	Text       string
	Confidence float64
	IsFinal    bool
	Source     string
}

// Recognizer defines the contract for any speech-to-text vendor implementation.
type Recognizer interface {
	// Name returns adapter name for logging/metrics.
	Name() string
	// TranscribeFile recognizes a complete audio clip.
	TranscribeFile(ctx context.Context, audio []byte, language string) (Result, error)
	// TranscribeChunk recognizes one streamed audio chunk.
	TranscribeChunk(ctx context.Context, audio []byte, language string) (Result, error)
	// Ready reports whether the backing service is usable.
	Ready() bool
}
