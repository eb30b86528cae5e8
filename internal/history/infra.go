package history

import (
	"context"
	"database/sql"
	"time"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Append(ctx context.Context, threadID string, userID *string, role, text string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO conversation_records (thread_id, user_id, role, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, threadID, userID, role, text, time.Now()).Scan(&id)
	return id, err
}

func (r *repo) GetByThread(ctx context.Context, threadID string, limit int) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, thread_id, user_id, role, text, created_at
		FROM conversation_records
		WHERE thread_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, threadID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.ThreadID, &rec.UserID, &rec.Role, &rec.Text, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// oldest first for prompt assembly
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (r *repo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM conversation_records WHERE user_id = $1
	`, userID)
	return err
}
