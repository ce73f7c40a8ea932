package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/repository"
)

type fakeGroupFinder struct {
	ids map[string]bool
}

func (f *fakeGroupFinder) GetGroup(_ context.Context, id string) (domain.Group, error) {
	if f.ids[id] {
		return domain.Group{ID: id}, nil
	}

	return domain.Group{}, repository.ErrGroupNotFound
}

func newTestShell(ids ...string) *ShellService {
	finder := &fakeGroupFinder{ids: map[string]bool{}}
	for _, id := range ids {
		finder.ids[id] = true
	}

	return NewShellService(finder)
}

func TestShellInitialState(t *testing.T) {
	shell := newTestShell()

	state := shell.State()

	assert.Equal(t, ViewLearner, state.View)
	assert.Empty(t, state.SelectedGroupID)
	assert.False(t, state.User.IsAdmin)
}

func TestSelectGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the detail view from the leaderboard", func(t *testing.T) {
		shell := newTestShell("1")

		state, err := shell.SelectGroup(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, ViewGroup, state.View)
		assert.Equal(t, "1", state.SelectedGroupID)
	})

	t.Run("unknown group leaves the view untouched", func(t *testing.T) {
		shell := newTestShell()

		_, err := shell.SelectGroup(ctx, "99")

		assert.ErrorIs(t, err, repository.ErrGroupNotFound)
		assert.Equal(t, ViewLearner, shell.State().View)
	})

	t.Run("rejected outside the leaderboard", func(t *testing.T) {
		shell := newTestShell("1", "2")

		_, err := shell.SelectGroup(ctx, "1")
		require.NoError(t, err)

		_, err = shell.SelectGroup(ctx, "2")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, "1", shell.State().SelectedGroupID)
	})
}

func TestBack(t *testing.T) {
	ctx := context.Background()

	t.Run("returns to the leaderboard", func(t *testing.T) {
		shell := newTestShell("1")

		_, err := shell.SelectGroup(ctx, "1")
		require.NoError(t, err)

		state, err := shell.Back()

		require.NoError(t, err)
		assert.Equal(t, ViewLearner, state.View)
		assert.Empty(t, state.SelectedGroupID)
	})

	t.Run("rejected outside the detail view", func(t *testing.T) {
		shell := newTestShell()

		_, err := shell.Back()

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestSetView(t *testing.T) {
	ctx := context.Background()

	t.Run("switches between leaderboard and content", func(t *testing.T) {
		shell := newTestShell()

		state, err := shell.SetView(ViewContent)
		require.NoError(t, err)
		assert.Equal(t, ViewContent, state.View)

		state, err = shell.SetView(ViewLearner)
		require.NoError(t, err)
		assert.Equal(t, ViewLearner, state.View)
	})

	t.Run("group view is not a sidebar target", func(t *testing.T) {
		shell := newTestShell()

		_, err := shell.SetView(ViewGroup)

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejected while a detail view is open", func(t *testing.T) {
		shell := newTestShell("1")

		_, err := shell.SelectGroup(ctx, "1")
		require.NoError(t, err)

		_, err = shell.SetView(ViewContent)

		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, ViewGroup, shell.State().View)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	shell := newTestShell("1")

	shell.SetUser(domain.User{IsAdmin: true, AdminID: "admin"})
	_, err := shell.SelectGroup(ctx, "1")
	require.NoError(t, err)

	state := shell.Logout()

	assert.False(t, state.User.IsAdmin)
	assert.Equal(t, ViewLearner, state.View, "logout forces the leaderboard")
	assert.Empty(t, state.SelectedGroupID)
}
