package store

import "fmt"

// InvalidActionError aborts a dispatch before any middleware or the reducer
// runs. It is fatal to that dispatch only; the store and its state are
// untouched.
type InvalidActionError struct {
	Reason string
}

func (e *InvalidActionError) Error() string {
	return "invalid action: " + e.Reason
}

// ReducerError wraps a failure returned by the reducer. State keeps its
// pre-dispatch value because the state reference is only reassigned on
// success.
type ReducerError struct {
	Action Action
	Err    error
}

func (e *ReducerError) Error() string {
	return fmt.Sprintf("reducer failed on %s: %v", e.Action.Kind(), e.Err)
}

func (e *ReducerError) Unwrap() error { return e.Err }
