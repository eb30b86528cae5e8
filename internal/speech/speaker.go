package speech

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/bank"
)

// Fixed output settings: pitch slightly lowered for a more masculine
// timbre. Callers choose only text and language.
var defaultSettings = Settings{
	Rate:   1.0,
	Pitch:  0.9,
	Volume: 1.0,
}

// Speaker turns assistant replies into audio. Speak never fails the
// caller's flow: synthesis errors are logged and swallowed.
type Speaker struct {
	tts            TTSClient
	sink           Sink
	log            *zap.Logger
	defaultVoiceID string

	once   sync.Once
	voices []Voice
}

func NewSpeaker(tts TTSClient, sink Sink, defaultVoiceID string, log *zap.Logger) *Speaker {
	return &Speaker{
		tts:            tts,
		sink:           sink,
		log:            log,
		defaultVoiceID: defaultVoiceID,
	}
}

func (s *Speaker) Speak(text string, lang bank.Language) {
	go s.speak(text, lang)
}

func (s *Speaker) speak(text string, lang bank.Language) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.once.Do(func() {
		voices, err := s.tts.Voices(ctx)
		if err != nil {
			s.log.Warn("voice catalog unavailable, using default voice", zap.Error(err))
			return
		}
		s.voices = voices
	})

	voiceID := s.defaultVoiceID
	if v := PickVoice(s.voices, lang); v != nil {
		voiceID = v.ID
	}

	audio, err := s.tts.Synthesize(ctx, voiceID, text, defaultSettings)
	if err != nil {
		s.log.Warn("speech synthesis failed", zap.String("voice", voiceID), zap.Error(err))
		return
	}

	if err := s.sink.Play(audio); err != nil {
		s.log.Warn("audio playback failed", zap.Error(err))
	}
}
