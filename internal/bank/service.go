package bank

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrInvalidAmount      = errors.New("invalid transfer amount")
	ErrInsufficientFunds  = errors.New("insufficient balance")
)

type authService struct {
	users  UserRepo
	secret string
}

func NewAuthService(users UserRepo, secret string) AuthService {
	return &authService{users: users, secret: secret}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*UserProfile, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	realPass, err := s.users.GetPassword(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if realPass == "" || password != realPass {
		return nil, "", ErrInvalidCredentials
	}

	profile, err := s.users.GetByID(ctx, username)
	if err != nil {
		return nil, "", err
	}
	return profile, s.sign(username), nil
}

func (s *authService) sign(msg string) string {
	h := hmac.New(sha256.New, []byte(s.secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}

type transferService struct {
	users        UserRepo
	transactions TransactionRepo
}

func NewTransferService(users UserRepo, transactions TransactionRepo) TransferService {
	return &transferService{users: users, transactions: transactions}
}

func (s *transferService) Transfer(ctx context.Context, senderID, recipient string, amount float64) (*TransferResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}
	if sender.Balance < amount {
		return nil, ErrInsufficientFunds
	}

	to, err := s.users.FindRecipient(ctx, strings.ToLower(strings.TrimSpace(recipient)), senderID)
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, ErrRecipientNotFound
	}

	newBalance, err := s.transactions.Transfer(ctx, sender.UserID, to.UserID, amount,
		fmt.Sprintf("Transfer to %s", to.Name),
		fmt.Sprintf("Transfer from %s", sender.Name),
	)
	if err != nil {
		return nil, err
	}

	return &TransferResult{
		Amount:           amount,
		RecipientName:    to.Name,
		RecipientAccount: to.AccountNumber,
		NewBalance:       newBalance,
	}, nil
}
