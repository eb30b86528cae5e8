package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nextgenbank/voicebank/internal/bank"
)

type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient() *WhisperClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		panic("OPENAI_API_KEY not set")
	}
	return &WhisperClient{client: openai.NewClient(apiKey)}
}

func NewWhisperClientWith(client *openai.Client) *WhisperClient {
	return &WhisperClient{client: client}
}

func (c *WhisperClient) Transcribe(ctx context.Context, audio io.Reader, lang bank.Language) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: "clip.wav",
		Language: string(lang),
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
