package dispatch

import (
	"context"

	"github.com/nextgenbank/voicebank/internal/bank"
)

// Query is built once per dispatch and never reused.
type Query struct {
	Text     string
	UserID   *string
	ThreadID string
	Language bank.Language
}

// Result is the normalized outcome of one gateway call. Transport
// errors, bad statuses and malformed bodies all collapse into Ok=false;
// callers never see a raw error from the gateway boundary.
type Result struct {
	Ok             bool
	Response       string
	AccountBalance *float64
	Transactions   []bank.Transaction
	Reason         string
}

type Gateway interface {
	Dispatch(ctx context.Context, q Query) Result
}

type Speaker interface {
	Speak(text string, lang bank.Language)
}

// Surface is the rendering surface the pipeline pushes results into.
// Layout belongs to the implementation, not to the core.
type Surface interface {
	AppendMessage(role, text string)
	SetStatus(text string)
	RenderBalance(amount float64)
	RenderTransactions(list []bank.Transaction)
}

// AccountState is the slice of the session store the orchestrator needs.
type AccountState interface {
	Authenticated() bool
	User() *bank.UserProfile
	Language(ctx context.Context) bank.Language
	ApplyBalance(ctx context.Context, amount float64)
	ApplyTransactions(list []bank.Transaction)
	Transactions() []bank.Transaction
	AppendTranscript(ctx context.Context, role, text string)
}
