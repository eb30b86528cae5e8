package capture

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/nextgenbank/voicebank/internal/bank"
	"github.com/nextgenbank/voicebank/internal/speech"
)

// Service wraps the STT backend with the one-shot capture contract:
// exactly one transcript or one error per capture, Idle restored on
// every exit path.
type Service struct {
	stt       speech.STTClient
	setStatus func(text string)
	listening atomic.Bool
}

func NewService(stt speech.STTClient, setStatus func(text string)) *Service {
	if setStatus == nil {
		setStatus = func(string) {}
	}
	return &Service{stt: stt, setStatus: setStatus}
}

// Listening reports whether a capture is currently in flight.
func (s *Service) Listening() bool {
	return s.listening.Load()
}

// Capture transcribes one utterance. Interim results are not exposed:
// only the finalized transcript is returned.
func (s *Service) Capture(ctx context.Context, clip io.Reader, lang bank.Language) (string, error) {
	if s.stt == nil {
		return "", ErrUnsupported
	}
	if !s.listening.CompareAndSwap(false, true) {
		return "", ErrAlreadyListening
	}
	defer func() {
		s.listening.Store(false)
		s.setStatus(StatusReady)
	}()

	s.setStatus(StatusListening)

	transcript, err := s.stt.Transcribe(ctx, clip, lang)
	if err != nil {
		return "", err
	}

	s.setStatus(StatusProcessing)
	return transcript, nil
}
