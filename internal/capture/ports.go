package capture

import "errors"

var (
	// ErrUnsupported — no speech recognition backend configured. The
	// capture never transitions to Listening in this case.
	ErrUnsupported = errors.New("speech recognition unsupported")

	// ErrAlreadyListening — a capture is in flight. Concurrent captures
	// are rejected, not queued.
	ErrAlreadyListening = errors.New("capture already in progress")
)

const (
	StatusListening  = "Listening..."
	StatusProcessing = "Processing..."
	StatusReady      = "Ready to help"
)
