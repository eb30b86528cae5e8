package bank

import "context"

// UserRepo — account data in Postgres.
type UserRepo interface {
	GetByID(ctx context.Context, userID string) (*UserProfile, error)
	GetPassword(ctx context.Context, userID string) (string, error)
	// FindRecipient matches by user id, full name or first name,
	// skipping the sender's own account.
	FindRecipient(ctx context.Context, query, senderID string) (*UserProfile, error)
}

// TransactionRepo — per-user transaction history, newest first.
type TransactionRepo interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]Transaction, error)
	// Transfer atomically moves amount between two accounts and records
	// the debit/credit pair. Returns the sender's new balance.
	Transfer(ctx context.Context, fromID, toID string, amount float64, fromDesc, toDesc string) (float64, error)
}

type AuthService interface {
	// Authenticate checks the demo credential table. Returns the profile
	// (without the password) and a signed session token.
	Authenticate(ctx context.Context, username, password string) (*UserProfile, string, error)
}

type TransferService interface {
	Transfer(ctx context.Context, senderID, recipient string, amount float64) (*TransferResult, error)
}

type TransferResult struct {
	Amount           float64
	RecipientName    string
	RecipientAccount string
	NewBalance       float64
}
