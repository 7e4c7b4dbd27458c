package store

import (
	"fmt"
	"reflect"
)

// Action describes an intended state change. Concrete variants form a tagged
// union; reducers type-switch on them and must treat unknown variants as
// identity. Kind is a stable name used for logging and diagnostics, never for
// reducer dispatch.
type Action interface {
	Kind() string
}

// KindInit is the reserved kind dispatched exactly once while a store is
// constructed. Application code must never dispatch it.
const KindInit = "store/init"

type initAction struct{}

func (initAction) Kind() string { return KindInit }

// validateAction rejects the action shapes the type system cannot: a nil
// interface and a non-nil interface wrapping a nil concrete value.
func validateAction(a Action) error {
	if a == nil {
		return &InvalidActionError{Reason: "nil action"}
	}
	switch v := reflect.ValueOf(a); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return &InvalidActionError{Reason: fmt.Sprintf("nil %s action value", v.Kind())}
		}
	}
	return nil
}
