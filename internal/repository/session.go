package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/repository/dao"
)

const sessionsSlot = "sessions"

// SessionRepository serves the static curriculum. The slot exists so an
// operator can swap the course content without a deploy; the application
// itself never mutates it.
type SessionRepository struct {
	store SlotStore
}

func NewSessionRepository(store SlotStore) *SessionRepository {
	return &SessionRepository{
		store: store,
	}
}

func (r *SessionRepository) All(ctx context.Context) []domain.Session {
	raw, err := r.store.Read(ctx, sessionsSlot)
	if err != nil {
		if !errors.Is(err, dao.ErrSlotNotFound) {
			zap.L().Warn("reading sessions slot failed, using seed data", zap.Error(err))
		}

		return defaultSessions()
	}

	var sessions []domain.Session
	if err = json.Unmarshal(raw, &sessions); err != nil {
		zap.L().Warn("sessions slot holds malformed JSON, using seed data", zap.Error(err))

		return defaultSessions()
	}

	return sessions
}
