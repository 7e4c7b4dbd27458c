// Package bind derives view props from store state and dispatch, and keeps
// them current for as long as a view is mounted. It is the only sanctioned
// way for a view to touch the store: the store itself is handed in
// explicitly, never discovered through ambient globals.
package bind

import (
	"sync"

	"github.com/jotdeck/jotdeck/store"
)

// Source is the slice of store capability the binding layer needs. A
// *store.Store[S] satisfies it.
type Source[S any] interface {
	State() S
	Dispatch(store.Action) (store.Action, error)
	Subscribe(func()) func()
}

// Props is the merged prop set handed to a view: one state-derived half, one
// dispatch-derived half. Keeping the halves as separate fields makes the
// key-collision case of an untyped merge unrepresentable.
type Props[SP, DP any] struct {
	State    SP
	Dispatch DP
}

// StateMapper derives the state half of the props from the current state and
// the view's own props.
type StateMapper[S, O, SP any] func(state S, own O) SP

// DispatchMapper derives the dispatch half: typically a struct of callbacks
// closed over the dispatcher.
type DispatchMapper[O, DP any] func(dispatch store.Dispatcher, own O) DP

// Binding connects one view to a Source. It owns the derived props snapshot
// and its subscription; it does not own the store.
type Binding[S, O, SP, DP any] struct {
	src         Source[S]
	mapState    StateMapper[S, O, SP]
	mapDispatch DispatchMapper[O, DP]

	mu      sync.Mutex
	own     O
	props   Props[SP, DP]
	render  func(Props[SP, DP])
	unsub   func()
	mounted bool
}

// Connect builds a binding for src. Either mapper may be nil, in which case
// that half of the props stays at its zero value.
func Connect[S, O, SP, DP any](src Source[S], mapState StateMapper[S, O, SP], mapDispatch DispatchMapper[O, DP]) *Binding[S, O, SP, DP] {
	return &Binding[S, O, SP, DP]{src: src, mapState: mapState, mapDispatch: mapDispatch}
}

// Mount computes the initial props from the current state and own, subscribes
// to future state changes, and renders once. Mounting an already-mounted
// binding is a no-op.
func (b *Binding[S, O, SP, DP]) Mount(own O, render func(Props[SP, DP])) {
	b.mu.Lock()
	if b.mounted {
		b.mu.Unlock()
		return
	}
	b.mounted = true
	b.own = own
	b.render = render
	b.mu.Unlock()

	unsub := b.src.Subscribe(b.refresh)
	b.mu.Lock()
	if !b.mounted {
		// Torn down while subscribing; don't leak the registration.
		b.mu.Unlock()
		unsub()
		return
	}
	b.unsub = unsub
	b.mu.Unlock()
	b.refresh()
}

// refresh recomputes props from the latest state and the last-known own
// props, then triggers a re-render. Runs on every store notification.
func (b *Binding[S, O, SP, DP]) refresh() {
	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	own := b.own
	props := b.derive(own)
	b.props = props
	render := b.render
	b.mu.Unlock()

	if render != nil {
		render(props)
	}
}

func (b *Binding[S, O, SP, DP]) derive(own O) Props[SP, DP] {
	var p Props[SP, DP]
	if b.mapState != nil {
		p.State = b.mapState(b.src.State(), own)
	}
	if b.mapDispatch != nil {
		p.Dispatch = b.mapDispatch(b.src.Dispatch, own)
	}
	return p
}

// SetOwn recomputes props for new own props without waiting for a store
// notification.
func (b *Binding[S, O, SP, DP]) SetOwn(own O) {
	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	b.own = own
	b.mu.Unlock()
	b.refresh()
}

// Props returns the last derived snapshot.
func (b *Binding[S, O, SP, DP]) Props() Props[SP, DP] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.props
}

// Unmount releases the subscription. The first call wins; later calls are
// no-ops, and no recomputation happens after it.
func (b *Binding[S, O, SP, DP]) Unmount() {
	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	b.mounted = false
	unsub := b.unsub
	b.unsub = nil
	b.render = nil
	b.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}
