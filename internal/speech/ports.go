package speech

import (
	"context"
	"io"

	"github.com/nextgenbank/voicebank/internal/bank"
)

// Voice is one entry of the synthesizer's voice catalog.
type Voice struct {
	ID   string
	Name string
	Lang string // BCP-47 style tag, e.g. "en-US", "hi-IN"
}

type STTClient interface {
	Transcribe(ctx context.Context, audio io.Reader, lang bank.Language) (string, error)
}

type TTSClient interface {
	Voices(ctx context.Context) ([]Voice, error)
	Synthesize(ctx context.Context, voiceID, text string, settings Settings) ([]byte, error)
}

// Sink receives synthesized audio. The terminal client writes files,
// tests capture in memory.
type Sink interface {
	Play(audio []byte) error
}

// Settings are fixed per product decision: callers choose only text and
// language.
type Settings struct {
	Rate   float64
	Pitch  float64
	Volume float64
}
