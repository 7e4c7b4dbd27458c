package store

import "github.com/rs/zerolog"

// Logging records state before the action, forwards it, then records state
// after. It passes the result of next through unchanged.
func Logging[S any](log zerolog.Logger) Middleware[S] {
	return func(api API[S]) func(next Dispatcher) Dispatcher {
		return func(next Dispatcher) Dispatcher {
			return func(a Action) (Action, error) {
				log.Debug().
					Str("action", a.Kind()).
					Interface("state", api.State()).
					Msg("dispatch")
				res, err := next(a)
				if err != nil {
					log.Error().
						Str("action", a.Kind()).
						Err(err).
						Msg("dispatch failed")
					return res, err
				}
				log.Debug().
					Str("action", a.Kind()).
					Interface("state", api.State()).
					Msg("dispatched")
				return res, nil
			}
		}
	}
}
