package store

import (
	"errors"
	"fmt"
	"sync"
)

// Reducer computes the next state for an action. It must be pure: no
// dispatching, no subscribing, no I/O. Returning an error aborts the dispatch
// and leaves state unchanged.
type Reducer[S any] func(state S, action Action) (S, error)

// Dispatcher is the dispatch capability threaded through the middleware
// chain. By convention it returns the dispatched action, but any middleware
// may substitute its own result.
type Dispatcher func(action Action) (Action, error)

// API is the capability surface handed to middlewares and tasks: full-chain
// dispatch plus a state read. It deliberately omits Subscribe.
type API[S any] interface {
	Dispatch(action Action) (Action, error)
	State() S
}

// Store owns one current state value, the reducer fixed at construction, and
// the subscriber list. All mutation goes through Dispatch.
type Store[S any] struct {
	mu       sync.RWMutex
	reducer  Reducer[S]
	state    S
	subs     []subscription
	lastID   int
	dispatch Dispatcher
}

type subscription struct {
	id int
	fn func()
}

// New builds a store around reducer and initial, wraps dispatch with the
// given middlewares (first listed outermost), and runs the reserved init
// action through the core dispatch so the reducer has produced a valid state
// before any caller can observe it. The init dispatch bypasses the middleware
// chain: a deferring middleware must not be able to delay construction.
func New[S any](reducer Reducer[S], initial S, mws ...Middleware[S]) (*Store[S], error) {
	if reducer == nil {
		return nil, errors.New("store: nil reducer")
	}
	s := &Store[S]{reducer: reducer, state: initial}
	s.dispatch = chain[S](s, s.dispatchCore, mws)
	if _, err := s.dispatchCore(initAction{}); err != nil {
		return nil, fmt.Errorf("store: init dispatch: %w", err)
	}
	return s, nil
}

// Dispatch validates the action and sends it through the middleware chain.
// The result is whatever the outermost middleware returns.
func (s *Store[S]) Dispatch(a Action) (Action, error) {
	if err := validateAction(a); err != nil {
		return nil, err
	}
	return s.dispatch(a)
}

// dispatchCore is the terminal dispatcher: validate, reduce, swap the state
// reference, notify. It re-validates because middlewares may hand it actions
// that never went through Dispatch.
func (s *Store[S]) dispatchCore(a Action) (Action, error) {
	if err := validateAction(a); err != nil {
		return nil, err
	}
	s.mu.Lock()
	next, err := s.reducer(s.state, a)
	if err != nil {
		s.mu.Unlock()
		return nil, &ReducerError{Action: a, Err: err}
	}
	s.state = next
	// Snapshot under the lock so a subscriber that subscribes, unsubscribes,
	// or dispatches reentrantly cannot corrupt this notification pass.
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
	return a, nil
}

// State returns the current snapshot. Safe from middlewares and subscribers,
// including mid-dispatch.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every successful state transition, in
// registration order. The returned func removes the registration; calling it
// more than once is a no-op after the first.
func (s *Store[S]) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.lastID++
	id := s.lastID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
