package store

// Middleware wraps dispatch. Given the store API it returns a constructor
// that receives the next dispatcher in the chain and produces its own. A
// middleware continues the chain by calling next, or short-circuits by not
// calling it.
type Middleware[S any] func(api API[S]) func(next Dispatcher) Dispatcher

// chain right-folds the middlewares over the terminal dispatcher so that the
// first listed middleware is outermost: it sees the action first on the way
// in and last on the way out. No middlewares returns terminal unchanged.
func chain[S any](api API[S], terminal Dispatcher, mws []Middleware[S]) Dispatcher {
	d := terminal
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](api)(d)
	}
	return d
}
