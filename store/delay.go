package store

import "time"

// Delay defers forwarding every action to the rest of the chain by d, turning
// dispatch asynchronous: the caller gets the action back immediately with a
// nil error. Errors from the deferred continuation go to onErr (may be nil),
// since the original caller has long returned. A scheduled forward cannot be
// revoked.
func Delay[S any](d time.Duration, onErr func(error)) Middleware[S] {
	return func(api API[S]) func(next Dispatcher) Dispatcher {
		return func(next Dispatcher) Dispatcher {
			return func(a Action) (Action, error) {
				time.AfterFunc(d, func() {
					if _, err := next(a); err != nil && onErr != nil {
						onErr(err)
					}
				})
				return a, nil
			}
		}
	}
}
