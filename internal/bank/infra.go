package bank

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, userID string) (*UserProfile, error) {
	var u UserProfile
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, name, account_number, balance, phone, email,
		       loan_balance, interest_rate, credit_limit
		FROM users
		WHERE user_id = $1
	`, userID).Scan(
		&u.UserID, &u.Name, &u.AccountNumber, &u.Balance, &u.Phone, &u.Email,
		&u.LoanBalance, &u.InterestRate, &u.CreditLimit,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetPassword(ctx context.Context, userID string) (string, error) {
	var password string
	err := r.db.QueryRowContext(ctx, `
		SELECT password FROM users WHERE user_id = $1
	`, userID).Scan(&password)

	if err == sql.ErrNoRows {
		return "", nil
	}
	return password, err
}

func (r *userRepo) FindRecipient(ctx context.Context, query, senderID string) (*UserProfile, error) {
	var u UserProfile
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, name, account_number, balance, phone, email,
		       loan_balance, interest_rate, credit_limit
		FROM users
		WHERE user_id <> $2
		  AND (user_id = $1
		       OR lower(name) = $1
		       OR lower(split_part(name, ' ', 1)) = $1)
		LIMIT 1
	`, query, senderID).Scan(
		&u.UserID, &u.Name, &u.AccountNumber, &u.Balance, &u.Phone, &u.Email,
		&u.LoanBalance, &u.InterestRate, &u.CreditLimit,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type transactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) TransactionRepo {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tx_date, tx_type, amount, description, balance_after
		FROM transactions
		WHERE user_id = $1
		ORDER BY tx_date DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.Date, &t.Type, &t.Amount, &t.Description, &t.Balance); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *transactionRepo) Transfer(ctx context.Context, fromID, toID string, amount float64, fromDesc, toDesc string) (float64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var fromBalance float64
	err = tx.QueryRowContext(ctx, `
		UPDATE users SET balance = balance - $2
		WHERE user_id = $1
		RETURNING balance
	`, fromID, amount).Scan(&fromBalance)
	if err != nil {
		return 0, fmt.Errorf("debit sender: %w", err)
	}

	var toBalance float64
	err = tx.QueryRowContext(ctx, `
		UPDATE users SET balance = balance + $2
		WHERE user_id = $1
		RETURNING balance
	`, toID, amount).Scan(&toBalance)
	if err != nil {
		return 0, fmt.Errorf("credit recipient: %w", err)
	}

	now := time.Now().Format("2006-01-02 15:04:05")

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (user_id, tx_date, tx_type, amount, description, balance_after)
		VALUES ($1, $2, 'debit', $3, $4, $5)
	`, fromID, now, amount, fromDesc, fromBalance)
	if err != nil {
		return 0, fmt.Errorf("record debit: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (user_id, tx_date, tx_type, amount, description, balance_after)
		VALUES ($1, $2, 'credit', $3, $4, $5)
	`, toID, now, amount, toDesc, toBalance)
	if err != nil {
		return 0, fmt.Errorf("record credit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return fromBalance, nil
}
