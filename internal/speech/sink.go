package speech

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileSink drops synthesized clips into a directory; the terminal
// client has no audio device of its own.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) Play(audio []byte) error {
	name := fmt.Sprintf("reply_%d.mp3", time.Now().UnixMilli())
	return os.WriteFile(filepath.Join(s.dir, name), audio, 0o644)
}
