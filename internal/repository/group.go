package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/repository/dao"
)

const groupsSlot = "groups"

var ErrGroupNotFound = errors.New("group not found")

// SlotStore is the durable key-value surface the repositories persist
// through. Reads that fail fall back to seed data; writes are best effort.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

type GroupRepository struct {
	store SlotStore
}

func NewGroupRepository(store SlotStore) *GroupRepository {
	return &GroupRepository{
		store: store,
	}
}

// All loads the full group list. An absent or unreadable slot yields the
// seed roster; no storage error escapes to the caller.
func (r *GroupRepository) All(ctx context.Context) []domain.Group {
	raw, err := r.store.Read(ctx, groupsSlot)
	if err != nil {
		if !errors.Is(err, dao.ErrSlotNotFound) {
			zap.L().Warn("reading groups slot failed, using seed data", zap.Error(err))
		}

		return defaultGroups()
	}

	var groups []domain.Group
	if err = json.Unmarshal(raw, &groups); err != nil {
		zap.L().Warn("groups slot holds malformed JSON, using seed data", zap.Error(err))

		return defaultGroups()
	}

	return groups
}

// FindByID returns the group with the given id.
func (r *GroupRepository) FindByID(ctx context.Context, id string) (domain.Group, error) {
	for _, g := range r.All(ctx) {
		if g.ID == id {
			return g, nil
		}
	}

	return domain.Group{}, ErrGroupNotFound
}

// SaveAll writes the full group list back to the slot. Persistence is best
// effort: failures are logged and swallowed, the in-memory state stays
// authoritative for the rest of the session.
func (r *GroupRepository) SaveAll(ctx context.Context, groups []domain.Group) {
	raw, err := json.Marshal(groups)
	if err != nil {
		zap.L().Error("marshalling groups failed", zap.Error(err))

		return
	}

	if err = r.store.Write(ctx, groupsSlot, raw); err != nil {
		zap.L().Error("writing groups slot failed", zap.Error(err))
	}
}

// Replace swaps the stored copy of one group and persists the list.
func (r *GroupRepository) Replace(ctx context.Context, group domain.Group) error {
	groups := r.All(ctx)

	for i, g := range groups {
		if g.ID == group.ID {
			groups[i] = group
			r.SaveAll(ctx, groups)

			return nil
		}
	}

	return fmt.Errorf("replace group %v -> %w", group.ID, ErrGroupNotFound)
}

// Insert appends a new group and persists the list.
func (r *GroupRepository) Insert(ctx context.Context, group domain.Group) error {
	groups := r.All(ctx)

	for _, g := range groups {
		if g.ID == group.ID {
			return fmt.Errorf("insert group %v: id already taken", group.ID)
		}
	}

	r.SaveAll(ctx, append(groups, group))

	return nil
}

// Delete removes a group by id and persists the list.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	groups := r.All(ctx)

	for i, g := range groups {
		if g.ID == id {
			r.SaveAll(ctx, append(groups[:i], groups[i+1:]...))

			return nil
		}
	}

	return fmt.Errorf("delete group %v -> %w", id, ErrGroupNotFound)
}
