package history

import (
	"context"
	"time"
)

type Record struct {
	ID        int64
	ThreadID  string
	UserID    *string
	Role      string // user | assistant
	Text      string
	CreatedAt time.Time
}

// Repo — conversation turns in Postgres.
type Repo interface {
	Append(ctx context.Context, threadID string, userID *string, role, text string) (int64, error)
	GetByThread(ctx context.Context, threadID string, limit int) ([]Record, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// Service — conversation transcript operations.
type Service interface {
	AddTurn(ctx context.Context, threadID string, userID *string, role, text string) error
	Recent(ctx context.Context, threadID string, limit int) ([]Record, error)
	// ClearForUser erases the stored transcript, used on login and logout.
	ClearForUser(ctx context.Context, userID string) error
}
