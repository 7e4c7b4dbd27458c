// Package store is a minimal unidirectional-data-flow state container:
// a reducer owns all state transitions, dispatch is the only way in, and
// subscribers are told after every transition.
//
// Allowed here:
// - the generic Store, action contract, middleware composition
// - the stock middlewares (logging, delay, tasks)
//
// Not allowed here:
// - domain state or domain actions (internal/note)
// - anything that renders (internal/tui, bind)
package store
