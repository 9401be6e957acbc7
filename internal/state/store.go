// Package state holds the application state of the studio: the generation
// history and the theme. It changes only through Store.Dispatch.
package state

import (
	"context"
	"slices"
	"sync"

	"github.com/thinkscotty/contentspark/internal/models"
)

type State struct {
	History models.History       `json:"history"`
	Theme   models.ThemeSettings `json:"theme"`
}

// Initial returns the state of a fresh install.
func Initial() State {
	return State{History: models.History{}, Theme: models.DefaultTheme()}
}

// Action is a requested state transition.
type Action interface {
	isAction()
}

// AddItem prepends a generated item to the history.
type AddItem struct {
	Item models.GeneratedItem
}

// ClearHistory replaces the history with an empty one.
type ClearHistory struct{}

type SetTheme struct {
	Theme models.ThemeSettings
}

type SetThemeMode struct {
	Mode models.ThemeMode
}

type SetAccent struct {
	Accent models.AccentColor
}

// ToggleThemeMode flips between light and dark.
type ToggleThemeMode struct{}

// PatchTheme changes mode and accent in one transition. Empty fields keep
// their current value; any invalid field rejects the whole patch.
type PatchTheme struct {
	Mode   models.ThemeMode
	Accent models.AccentColor
}

func (AddItem) isAction()         {}
func (ClearHistory) isAction()    {}
func (SetTheme) isAction()        {}
func (SetThemeMode) isAction()    {}
func (SetAccent) isAction()       {}
func (ToggleThemeMode) isAction() {}
func (PatchTheme) isAction()      {}

// Reduce applies a to s and returns the new state. It never mutates s.
// Invalid theme values and nil items leave the state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddItem:
		if a.Item == nil {
			return s
		}
		next := make(models.History, 0, len(s.History)+1)
		next = append(next, a.Item)
		s.History = append(next, s.History...)
	case ClearHistory:
		s.History = models.History{}
	case SetTheme:
		if a.Theme.Valid() {
			s.Theme = a.Theme
		}
	case SetThemeMode:
		if a.Mode.Valid() {
			s.Theme.Mode = a.Mode
		}
	case SetAccent:
		if a.Accent.Valid() {
			s.Theme.Accent = a.Accent
		}
	case PatchTheme:
		next := s.Theme
		if a.Mode != "" {
			next.Mode = a.Mode
		}
		if a.Accent != "" {
			next.Accent = a.Accent
		}
		if next.Valid() {
			s.Theme = next
		}
	case ToggleThemeMode:
		if s.Theme.Mode == models.ModeDark {
			s.Theme.Mode = models.ModeLight
		} else {
			s.Theme.Mode = models.ModeDark
		}
	}
	return s
}

// Transition describes one dispatched action.
type Transition struct {
	Action Action
	Prev   State
	Next   State
}

// HistoryChanged reports whether the action touched the history slot.
func (t Transition) HistoryChanged() bool {
	switch a := t.Action.(type) {
	case AddItem:
		return a.Item != nil
	case ClearHistory:
		return true
	}
	return false
}

// ThemeChanged reports whether the theme slot differs after the action.
func (t Transition) ThemeChanged() bool {
	return t.Prev.Theme != t.Next.Theme
}

// Observer is notified after every transition, in dispatch order.
type Observer interface {
	Observe(ctx context.Context, t Transition)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, t Transition)

func (f ObserverFunc) Observe(ctx context.Context, t Transition) { f(ctx, t) }

// Store owns the current state. Dispatches are serialized, and observers run
// under the same lock so that persisted snapshots are written in order.
type Store struct {
	mu        sync.Mutex
	state     State
	observers []Observer
}

func NewStore(initial State, observers ...Observer) *Store {
	if initial.History == nil {
		initial.History = models.History{}
	}
	return &Store{state: initial, observers: observers}
}

// Subscribe adds an observer for subsequent transitions.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Dispatch applies a and notifies observers. It returns a snapshot of the new state.
func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Transition{Action: a, Prev: s.state, Next: Reduce(s.state, a)}
	s.state = t.Next
	for _, o := range s.observers {
		o.Observe(ctx, t)
	}
	return snapshot(s.state)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.state)
}

func (s *Store) History() models.History { return s.Snapshot().History }

func (s *Store) Theme() models.ThemeSettings { return s.Snapshot().Theme }

func snapshot(st State) State {
	st.History = slices.Clone(st.History)
	if st.History == nil {
		st.History = models.History{}
	}
	return st
}
