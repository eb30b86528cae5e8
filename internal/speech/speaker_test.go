package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/bank"
)

type synthCall struct {
	voiceID  string
	text     string
	settings Settings
}

type fakeTTS struct {
	voices    []Voice
	voicesErr error
	synthErr  error
	calls     []synthCall
}

func (f *fakeTTS) Voices(context.Context) ([]Voice, error) {
	return f.voices, f.voicesErr
}

func (f *fakeTTS) Synthesize(_ context.Context, voiceID, text string, settings Settings) ([]byte, error) {
	f.calls = append(f.calls, synthCall{voiceID, text, settings})
	if f.synthErr != nil {
		return nil, f.synthErr
	}
	return []byte("audio"), nil
}

type memorySink struct {
	played  [][]byte
	playErr error
}

func (m *memorySink) Play(audio []byte) error {
	m.played = append(m.played, audio)
	return m.playErr
}

func TestSpeakerUsesFixedSettings(t *testing.T) {
	tts := &fakeTTS{voices: []Voice{{ID: "v1", Name: "David", Lang: "en-US"}}}
	sink := &memorySink{}
	sp := NewSpeaker(tts, sink, "default", zap.NewNop())

	sp.speak("hello", bank.LangEnglish)

	require.Len(t, tts.calls, 1)
	assert.Equal(t, "v1", tts.calls[0].voiceID)
	assert.Equal(t, Settings{Rate: 1.0, Pitch: 0.9, Volume: 1.0}, tts.calls[0].settings)
	require.Len(t, sink.played, 1)
	assert.Equal(t, []byte("audio"), sink.played[0])
}

func TestSpeakerDefaultVoiceWhenCatalogFails(t *testing.T) {
	tts := &fakeTTS{voicesErr: errors.New("api down")}
	sink := &memorySink{}
	sp := NewSpeaker(tts, sink, "fallback-voice", zap.NewNop())

	sp.speak("hello", bank.LangEnglish)

	require.Len(t, tts.calls, 1)
	assert.Equal(t, "fallback-voice", tts.calls[0].voiceID)
}

func TestSpeakerSynthesisFailureIsSilent(t *testing.T) {
	tts := &fakeTTS{synthErr: errors.New("quota")}
	sink := &memorySink{}
	sp := NewSpeaker(tts, sink, "v", zap.NewNop())

	sp.speak("hello", bank.LangEnglish)

	assert.Empty(t, sink.played)
}

func TestSpeakerCatalogFetchedOnce(t *testing.T) {
	tts := &fakeTTS{voices: []Voice{{ID: "v1", Name: "Ravi", Lang: "hi-IN"}}}
	sink := &memorySink{}
	sp := NewSpeaker(tts, sink, "default", zap.NewNop())

	sp.speak("एक", bank.LangHindi)
	sp.speak("दो", bank.LangHindi)

	require.Len(t, tts.calls, 2)
	assert.Equal(t, "v1", tts.calls[0].voiceID)
	assert.Equal(t, "v1", tts.calls[1].voiceID)
}
