// Package store owns the application state and is its single source of truth.
// All mutations serialize through Submit/Undo/Redo: an intent is translated
// into a self-contained action, its inverse is recorded, and the reducer
// produces the next state. Every failure is a typed result; nothing here
// panics on bad input.
package store

import (
	"sync"

	"tempo/internal/model"
	"tempo/internal/schedule"
)

type Store struct {
	mu    sync.Mutex
	clock Clock
	rules schedule.Rules
	state model.AppState
	hist  history

	// onChange, when set, observes every successfully applied state. Used by
	// the server to persist snapshots.
	onChange func(model.AppState)
}

func New(initial model.AppState, rules schedule.Rules, clock Clock) *Store {
	if clock == nil {
		clock = RealClock{}
	}
	return &Store{
		clock: clock,
		rules: rules,
		state: initial.Clone(),
	}
}

// OnChange registers a callback invoked with the new state after each
// successful mutation. Must be set before the store is shared.
func (s *Store) OnChange(fn func(model.AppState)) {
	s.onChange = fn
}

// State returns a snapshot copy of the current state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Submit runs translate, record and apply for one intent. On any failure the
// error is returned, state is untouched and nothing reaches the undo stack.
func (s *Store) Submit(in Intent) (model.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.translate(in)
	if err != nil {
		return s.state.Clone(), err
	}
	next, err := apply(s.state, a)
	if err != nil {
		return s.state.Clone(), err
	}
	s.hist.record(a)
	s.commit(next)
	return next.Clone(), nil
}

// Undo applies the top of the undo stack and moves its inverse to the redo
// stack.
func (s *Store) Undo() (model.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, redo, ok := s.hist.popUndo()
	if !ok {
		return s.state.Clone(), ErrNothingToUndo
	}
	next, err := apply(s.state, a)
	if err != nil {
		// Keep the stack coherent: a failed apply puts the entry back.
		s.hist.pushUndo(a)
		return s.state.Clone(), err
	}
	s.hist.pushRedo(redo)
	s.commit(next)
	return next.Clone(), nil
}

func (s *Store) Redo() (model.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, undo, ok := s.hist.popRedo()
	if !ok {
		return s.state.Clone(), ErrNothingToRedo
	}
	next, err := apply(s.state, a)
	if err != nil {
		s.hist.pushRedo(a)
		return s.state.Clone(), err
	}
	s.hist.pushUndo(undo)
	s.commit(next)
	return next.Clone(), nil
}

func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.canUndo()
}

func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.canRedo()
}

func (s *Store) commit(next model.AppState) {
	s.state = next
	if s.onChange != nil {
		s.onChange(next.Clone())
	}
}
