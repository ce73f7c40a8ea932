package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/repository"
)

// fakeGroupRepo is an in-memory GroupRepository.
type fakeGroupRepo struct {
	groups   []domain.Group
	replaced int
}

func (r *fakeGroupRepo) All(_ context.Context) []domain.Group {
	out := make([]domain.Group, len(r.groups))
	copy(out, r.groups)

	return out
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id string) (domain.Group, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}

	return domain.Group{}, repository.ErrGroupNotFound
}

func (r *fakeGroupRepo) Replace(_ context.Context, group domain.Group) error {
	for i, g := range r.groups {
		if g.ID == group.ID {
			r.groups[i] = group
			r.replaced++

			return nil
		}
	}

	return repository.ErrGroupNotFound
}

func (r *fakeGroupRepo) Insert(_ context.Context, group domain.Group) error {
	r.groups = append(r.groups, group)

	return nil
}

func (r *fakeGroupRepo) Delete(_ context.Context, id string) error {
	for i, g := range r.groups {
		if g.ID == id {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)

			return nil
		}
	}

	return repository.ErrGroupNotFound
}

func newTestGroupService(groups ...domain.Group) (*GroupService, *fakeGroupRepo) {
	repo := &fakeGroupRepo{groups: groups}

	svc := NewGroupService(repo)
	svc.now = func() time.Time {
		return time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	}

	return svc, repo
}

func TestGetGroups(t *testing.T) {
	svc, _ := newTestGroupService(
		domain.Group{ID: "1", Name: "SQL Warriors", Points: 100},
		domain.Group{ID: "2", Name: "Database Legends", Points: 300},
		domain.Group{ID: "3", Name: "Query Masters", Points: 200},
	)

	groups := svc.GetGroups(context.Background())

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"2", "3", "1"}, []string{groups[0].ID, groups[1].ID, groups[2].ID},
		"leaderboard order is points descending")
}

func TestRenameGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a real rename", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Name: "SQL Warriors"})

		group, err := svc.RenameGroup(ctx, "1", "Query Masters")

		require.NoError(t, err)
		assert.Equal(t, "Query Masters", group.Name)
		assert.Equal(t, 1, repo.replaced)
	})

	t.Run("no-op rename succeeds without persisting", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Name: "SQL Warriors"})

		group, err := svc.RenameGroup(ctx, "1", " SQL Warriors ")

		require.NoError(t, err)
		assert.Equal(t, "SQL Warriors", group.Name)
		assert.Zero(t, repo.replaced)
	})

	t.Run("unknown group", func(t *testing.T) {
		svc, _ := newTestGroupService()

		_, err := svc.RenameGroup(ctx, "99", "Anything")

		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Members: []string{"Alice Johnson"}})

		group, err := svc.AddMember(ctx, "1", "Bob Smith")

		require.NoError(t, err)
		assert.Equal(t, []string{"Alice Johnson", "Bob Smith"}, group.Members)
		assert.Equal(t, 1, repo.replaced)
	})

	t.Run("duplicate add succeeds without persisting", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Members: []string{"Alice Johnson"}})

		group, err := svc.AddMember(ctx, "1", "Alice Johnson")

		require.NoError(t, err)
		assert.Equal(t, []string{"Alice Johnson"}, group.Members)
		assert.Zero(t, repo.replaced)
	})

	t.Run("remove", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Members: []string{"Alice Johnson", "Bob Smith"}})

		group, err := svc.RemoveMember(ctx, "1", 1)

		require.NoError(t, err)
		assert.Equal(t, []string{"Alice Johnson"}, group.Members)
		assert.Equal(t, 1, repo.replaced)
	})

	t.Run("remove out of range succeeds without persisting", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Members: []string{"Alice Johnson"}})

		group, err := svc.RemoveMember(ctx, "1", 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"Alice Johnson"}, group.Members)
		assert.Zero(t, repo.replaced)
	})
}

func TestServiceAdjustPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("applies and persists the change", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Points: 100})

		group, tx, err := svc.AdjustPoints(ctx, "1", 50, "Excellent participation", domain.TransactionAdd)

		require.NoError(t, err)
		assert.Equal(t, 150, group.Points)
		assert.Equal(t, domain.TransactionAdd, tx.Type)
		assert.Equal(t, 1, repo.replaced)
		assert.Equal(t, 150, repo.groups[0].Points)
	})

	t.Run("validation error surfaces unwrapped and nothing persists", func(t *testing.T) {
		svc, repo := newTestGroupService(domain.Group{ID: "1", Points: 100})

		_, _, err := svc.AdjustPoints(ctx, "1", 0, "", domain.TransactionAdd)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Zero(t, repo.replaced)
		assert.Equal(t, 100, repo.groups[0].Points)
	})

	t.Run("unknown group", func(t *testing.T) {
		svc, _ := newTestGroupService()

		_, _, err := svc.AdjustPoints(ctx, "99", 50, "reason", domain.TransactionAdd)

		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestCreateAndDeleteGroup(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestGroupService()

	character := domain.Character{Type: domain.CharacterScholar, Expression: domain.ExpressionHappy}

	group, err := svc.CreateGroup(ctx, "  Index Ninjas ", []string{"Alice Johnson", " ", "Alice Johnson"}, character)

	require.NoError(t, err)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "Index Ninjas", group.Name)
	assert.Equal(t, []string{"Alice Johnson"}, group.Members, "blank and duplicate members are dropped")
	assert.Zero(t, group.Points)
	assert.Empty(t, group.Transactions)
	require.Len(t, repo.groups, 1)

	require.NoError(t, svc.DeleteGroup(ctx, group.ID))
	assert.Empty(t, repo.groups)

	assert.ErrorIs(t, svc.DeleteGroup(ctx, group.ID), ErrGroupNotFound)
}
