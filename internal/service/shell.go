package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/querylab/groupboard/internal/domain"
)

// View is the tagged current-view value of the display state machine.
type View string

const (
	ViewLearner View = "learner"
	ViewContent View = "content"
	ViewGroup   View = "group"
)

var ErrInvalidTransition = errors.New("invalid view transition")

// ShellState is the whole state of the shared classroom display: which
// view is showing, which group is open, and whether an admin is signed in.
type ShellState struct {
	View            View        `json:"view"`
	SelectedGroupID string      `json:"selected_group_id,omitempty"`
	User            domain.User `json:"user"`
}

type GroupFinder interface {
	GetGroup(ctx context.Context, id string) (domain.Group, error)
}

// ShellService is the single owner of the display session. All transitions
// go through it; child views never commit state themselves. The mutex
// stands in for the original's single UI thread.
type ShellService struct {
	mu     sync.RWMutex
	state  ShellState
	groups GroupFinder
}

func NewShellService(groups GroupFinder) *ShellService {
	return &ShellService{
		state:  ShellState{View: ViewLearner},
		groups: groups,
	}
}

func (s *ShellService) State() ShellState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// SelectGroup opens the detail view for an existing group. Only reachable
// from the leaderboard.
func (s *ShellService) SelectGroup(ctx context.Context, id string) (ShellState, error) {
	group, err := s.groups.GetGroup(ctx, id)
	if err != nil {
		return ShellState{}, fmt.Errorf("s.groups.GetGroup -> %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.View != ViewLearner {
		return ShellState{}, fmt.Errorf("select group from %v view -> %w", s.state.View, ErrInvalidTransition)
	}

	s.state.View = ViewGroup
	s.state.SelectedGroupID = group.ID

	return s.state, nil
}

// Back leaves the group detail view for the leaderboard.
func (s *ShellService) Back() (ShellState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.View != ViewGroup {
		return ShellState{}, fmt.Errorf("back from %v view -> %w", s.state.View, ErrInvalidTransition)
	}

	s.state.View = ViewLearner
	s.state.SelectedGroupID = ""

	return s.state, nil
}

// SetView switches between the leaderboard and the course content via the
// sidebar. Not reachable while a group detail is open.
func (s *ShellService) SetView(view View) (ShellState, error) {
	if view != ViewLearner && view != ViewContent {
		return ShellState{}, fmt.Errorf("unknown view %q -> %w", view, ErrInvalidTransition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.View == ViewGroup {
		return ShellState{}, fmt.Errorf("sidebar switch while in group view -> %w", ErrInvalidTransition)
	}

	s.state.View = view

	return s.state, nil
}

// SetUser records the signed-in admin for the display session.
func (s *ShellService) SetUser(user domain.User) ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = user

	return s.state
}

// Logout clears the admin flag and forces the leaderboard, whatever view
// was showing.
func (s *ShellService) Logout() ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = domain.User{}
	s.state.View = ViewLearner
	s.state.SelectedGroupID = ""

	return s.state
}
