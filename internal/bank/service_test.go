package bank

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	profiles   map[string]*UserProfile
	passwords  map[string]string
	recipients map[string]*UserProfile
}

func (r *stubUserRepo) GetByID(_ context.Context, userID string) (*UserProfile, error) {
	return r.profiles[userID], nil
}

func (r *stubUserRepo) GetPassword(_ context.Context, userID string) (string, error) {
	return r.passwords[userID], nil
}

func (r *stubUserRepo) FindRecipient(_ context.Context, query, _ string) (*UserProfile, error) {
	return r.recipients[query], nil
}

type stubTxRepo struct {
	newBalance float64
	err        error
}

func (r *stubTxRepo) ListByUser(context.Context, string, int) ([]Transaction, error) {
	return nil, nil
}

func (r *stubTxRepo) Transfer(context.Context, string, string, float64, string, string) (float64, error) {
	return r.newBalance, r.err
}

func demoRepo() *stubUserRepo {
	nehaP := &UserProfile{UserID: "neha", Name: "Neha Sharma", AccountNumber: "NGB001234567890", Balance: 125000.00}
	niyatiP := &UserProfile{UserID: "niyati", Name: "Niyati Patel", AccountNumber: "NGB009876543210", Balance: 89500.75}
	return &stubUserRepo{
		profiles:   map[string]*UserProfile{"neha": nehaP, "niyati": niyatiP},
		passwords:  map[string]string{"neha": "neha123", "niyati": "niyati123"},
		recipients: map[string]*UserProfile{"niyati": niyatiP},
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := NewAuthService(demoRepo(), "test-secret")

	profile, token, err := svc.Authenticate(context.Background(), "neha", "neha123")
	require.NoError(t, err)
	assert.Equal(t, "Neha Sharma", profile.Name)
	assert.Equal(t, 125000.00, profile.Balance)
	assert.NotEmpty(t, token)
}

func TestAuthenticateNormalizesUsername(t *testing.T) {
	svc := NewAuthService(demoRepo(), "test-secret")

	profile, _, err := svc.Authenticate(context.Background(), "  NEHA  ", "neha123")
	require.NoError(t, err)
	assert.Equal(t, "neha", profile.UserID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewAuthService(demoRepo(), "test-secret")

	_, _, err := svc.Authenticate(context.Background(), "neha", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := NewAuthService(demoRepo(), "test-secret")

	_, _, err := svc.Authenticate(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateTokenDeterministic(t *testing.T) {
	svc := NewAuthService(demoRepo(), "test-secret")

	_, t1, err := svc.Authenticate(context.Background(), "neha", "neha123")
	require.NoError(t, err)
	_, t2, err := svc.Authenticate(context.Background(), "neha", "neha123")
	require.NoError(t, err)
	assert.Equal(t, t1, t2)

	other := NewAuthService(demoRepo(), "other-secret")
	_, t3, err := other.Authenticate(context.Background(), "neha", "neha123")
	require.NoError(t, err)
	assert.NotEqual(t, t1, t3)
}

func TestTransferSuccess(t *testing.T) {
	svc := NewTransferService(demoRepo(), &stubTxRepo{newBalance: 124500})

	result, err := svc.Transfer(context.Background(), "neha", "Niyati", 500)
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.Amount)
	assert.Equal(t, "Niyati Patel", result.RecipientName)
	assert.Equal(t, "NGB009876543210", result.RecipientAccount)
	assert.Equal(t, 124500.0, result.NewBalance)
}

func TestTransferInvalidAmount(t *testing.T) {
	svc := NewTransferService(demoRepo(), &stubTxRepo{})

	_, err := svc.Transfer(context.Background(), "neha", "niyati", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Transfer(context.Background(), "neha", "niyati", -10)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestTransferInsufficientFunds(t *testing.T) {
	svc := NewTransferService(demoRepo(), &stubTxRepo{})

	_, err := svc.Transfer(context.Background(), "neha", "niyati", 999999)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestTransferRecipientNotFound(t *testing.T) {
	svc := NewTransferService(demoRepo(), &stubTxRepo{})

	_, err := svc.Transfer(context.Background(), "neha", "ghost", 100)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestTransferUnknownSender(t *testing.T) {
	svc := NewTransferService(demoRepo(), &stubTxRepo{})

	_, err := svc.Transfer(context.Background(), "ghost", "niyati", 100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTransferRepoError(t *testing.T) {
	svc := NewTransferService(demoRepo(), &stubTxRepo{err: errors.New("deadlock")})

	_, err := svc.Transfer(context.Background(), "neha", "niyati", 100)
	assert.EqualError(t, err, "deadlock")
}
