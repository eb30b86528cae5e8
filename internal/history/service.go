package history

import "context"

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) AddTurn(ctx context.Context, threadID string, userID *string, role, text string) error {
	if text == "" {
		return nil
	}
	_, err := s.repo.Append(ctx, threadID, userID, role, text)
	return err
}

func (s *service) Recent(ctx context.Context, threadID string, limit int) ([]Record, error) {
	return s.repo.GetByThread(ctx, threadID, limit)
}

func (s *service) ClearForUser(ctx context.Context, userID string) error {
	return s.repo.DeleteByUser(ctx, userID)
}
