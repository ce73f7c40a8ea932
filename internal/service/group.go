package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/repository"
)

var ErrGroupNotFound = repository.ErrGroupNotFound

type GroupRepository interface {
	All(ctx context.Context) []domain.Group
	FindByID(ctx context.Context, id string) (domain.Group, error)
	Replace(ctx context.Context, group domain.Group) error
	Insert(ctx context.Context, group domain.Group) error
	Delete(ctx context.Context, id string) error
}

// GroupService owns every group mutation. A single mutex serializes
// read-modify-write cycles on the shared slot; there is one classroom
// display and one admin, so contention is not a concern.
type GroupService struct {
	mu   sync.Mutex
	repo GroupRepository
	now  func() time.Time
}

func NewGroupService(repo GroupRepository) *GroupService {
	return &GroupService{
		repo: repo,
		now:  time.Now,
	}
}

// GetGroups returns all groups in leaderboard order, highest points first.
func (s *GroupService) GetGroups(ctx context.Context) []domain.Group {
	groups := s.repo.All(ctx)

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Points > groups[j].Points
	})

	return groups
}

func (s *GroupService) GetGroup(ctx context.Context, id string) (domain.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return group, nil
}

// RenameGroup applies the rename rule and persists on change. Renaming a
// group to its current name is a recognized no-op, not an error.
func (s *GroupService) RenameGroup(ctx context.Context, id, name string) (domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.Rename(name) {
		return group, nil
	}

	if err = s.repo.Replace(ctx, group); err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Replace -> %w", err)
	}

	return group, nil
}

// AddMember appends a member unless the trimmed name is empty or already on
// the roster.
func (s *GroupService) AddMember(ctx context.Context, id, name string) (domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.AddMember(name) {
		return group, nil
	}

	if err = s.repo.Replace(ctx, group); err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Replace -> %w", err)
	}

	return group, nil
}

// RemoveMember drops the member at the given position; out-of-range
// positions are a no-op.
func (s *GroupService) RemoveMember(ctx context.Context, id string, position int) (domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.RemoveMember(position) {
		return group, nil
	}

	if err = s.repo.Replace(ctx, group); err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Replace -> %w", err)
	}

	return group, nil
}

// AdjustPoints validates and applies a point change, recording the audit
// transaction at the head of the group's log. A validation failure leaves
// the group untouched.
func (s *GroupService) AdjustPoints(ctx context.Context, id string, points int, reason string, typ domain.TransactionType) (domain.Group, domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, domain.Transaction{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	tx, err := group.AdjustPoints(points, reason, typ, s.now())
	if err != nil {
		return domain.Group{}, domain.Transaction{}, err
	}

	if err = s.repo.Replace(ctx, group); err != nil {
		return domain.Group{}, domain.Transaction{}, fmt.Errorf("s.repo.Replace -> %w", err)
	}

	return group, tx, nil
}

// CreateGroup registers a new team with a zero balance and empty history.
func (s *GroupService) CreateGroup(ctx context.Context, name string, members []string, character domain.Character) (domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := domain.Group{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Character: character,
	}
	for _, m := range members {
		group.AddMember(m)
	}

	if err := s.repo.Insert(ctx, group); err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Insert -> %w", err)
	}

	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
