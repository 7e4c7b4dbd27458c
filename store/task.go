package store

// KindTask is the kind reported by every Task, whatever it does.
const KindTask = "store/task"

// Task is the effectful variant of the action union. Instead of describing a
// state change it runs against the store API, typically dispatching plain
// actions as it goes, and returns whatever result it wants the dispatch
// caller to see. Without the Tasks middleware installed a Task still passes
// validation and reaches the reducer, where it falls through as an unknown
// variant.
type Task[S any] func(api API[S]) (Action, error)

func (Task[S]) Kind() string { return KindTask }

// Tasks executes Task actions against the store API instead of forwarding
// them; every other action continues down the chain untouched.
func Tasks[S any]() Middleware[S] {
	return func(api API[S]) func(next Dispatcher) Dispatcher {
		return func(next Dispatcher) Dispatcher {
			return func(a Action) (Action, error) {
				if t, ok := a.(Task[S]); ok {
					return t(api)
				}
				return next(a)
			}
		}
	}
}
