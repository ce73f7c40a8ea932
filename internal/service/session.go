package service

import (
	"context"
	"time"

	"github.com/querylab/groupboard/internal/domain"
)

type SessionRepository interface {
	All(ctx context.Context) []domain.Session
}

type SessionService struct {
	repo SessionRepository
	now  func() time.Time
}

func NewSessionService(repo SessionRepository) *SessionService {
	return &SessionService{
		repo: repo,
		now:  time.Now,
	}
}

// GetSessions returns the curriculum with completion derived from the
// session date, superseding the stored flag.
func (s *SessionService) GetSessions(ctx context.Context) []domain.Session {
	now := s.now()

	sessions := s.repo.All(ctx)
	for i := range sessions {
		sessions[i].Completed = sessions[i].IsCompleted(now)
	}

	return sessions
}
