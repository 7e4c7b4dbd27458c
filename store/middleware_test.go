package store

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func tagMiddleware(tag string, trace *[]string) Middleware[counterState] {
	return func(api API[counterState]) func(next Dispatcher) Dispatcher {
		return func(next Dispatcher) Dispatcher {
			return func(a Action) (Action, error) {
				*trace = append(*trace, tag+"-in")
				res, err := next(a)
				*trace = append(*trace, tag+"-out")
				return res, err
			}
		}
	}
}

func TestMiddlewareOrderingFirstListedOutermost(t *testing.T) {
	var trace []string
	s := newCounter(t, tagMiddleware("a", &trace), tagMiddleware("b", &trace))

	s.Dispatch(incr{By: 1})
	want := []string{"a-in", "b-in", "b-out", "a-out"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
	if s.State().N != 1 {
		t.Fatalf("N = %d, want 1 (reducer ran inside the chain)", s.State().N)
	}
}

func TestOuterMiddlewareSeesReducerEffectOnWayOut(t *testing.T) {
	var observed int
	witness := func(api API[counterState]) func(next Dispatcher) Dispatcher {
		return func(next Dispatcher) Dispatcher {
			return func(a Action) (Action, error) {
				res, err := next(a)
				observed = api.State().N
				return res, err
			}
		}
	}
	s := newCounter(t, Middleware[counterState](witness))
	s.Dispatch(incr{By: 4})
	if observed != 4 {
		t.Fatalf("outer middleware observed N=%d after next, want 4", observed)
	}
}

func TestShortCircuitMiddlewareSkipsReducer(t *testing.T) {
	swallow := func(api API[counterState]) func(next Dispatcher) Dispatcher {
		return func(next Dispatcher) Dispatcher {
			return func(a Action) (Action, error) {
				return mystery{}, nil // never calls next
			}
		}
	}
	s := newCounter(t, Middleware[counterState](swallow))

	res, err := s.Dispatch(incr{By: 9})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if _, ok := res.(mystery); !ok {
		t.Fatalf("result = %#v, want the middleware override", res)
	}
	if s.State().N != 0 {
		t.Fatalf("N = %d, want 0 (reducer must not run)", s.State().N)
	}
}

func TestMiddlewareErrorPropagatesToCaller(t *testing.T) {
	failure := errors.New("chain broke")
	failing := func(api API[counterState]) func(next Dispatcher) Dispatcher {
		return func(next Dispatcher) Dispatcher {
			return func(a Action) (Action, error) {
				return nil, failure
			}
		}
	}
	s := newCounter(t, Middleware[counterState](failing))
	if _, err := s.Dispatch(incr{By: 1}); !errors.Is(err, failure) {
		t.Fatalf("err = %v, want %v", err, failure)
	}
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

func TestTaskRunsAgainstStoreAPI(t *testing.T) {
	s := newCounter(t, Tasks[counterState]())

	task := Task[counterState](func(api API[counterState]) (Action, error) {
		if api.State().N != 0 {
			t.Fatalf("task saw N=%d, want 0", api.State().N)
		}
		return api.Dispatch(incr{By: 6})
	})

	res, err := s.Dispatch(task)
	if err != nil {
		t.Fatalf("Dispatch(task): %v", err)
	}
	if got, ok := res.(incr); !ok || got.By != 6 {
		t.Fatalf("result = %#v, want the inner action", res)
	}
	if s.State().N != 6 {
		t.Fatalf("N = %d, want 6", s.State().N)
	}
	for _, kind := range s.State().Seen {
		if kind == KindTask {
			t.Fatal("task reached the reducer; the middleware should have consumed it")
		}
	}
}

func TestTaskWithoutMiddlewareFallsThroughAsUnknown(t *testing.T) {
	s := newCounter(t)
	task := Task[counterState](func(api API[counterState]) (Action, error) {
		t.Fatal("task body must not run without the Tasks middleware")
		return nil, nil
	})
	if _, err := s.Dispatch(task); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if s.State().N != 0 {
		t.Fatalf("N = %d, want 0", s.State().N)
	}
}

// ---------------------------------------------------------------------------
// Delay
// ---------------------------------------------------------------------------

func TestDelayDefersForwardingWithoutBlockingCaller(t *testing.T) {
	s := newCounter(t, Delay[counterState](10*time.Millisecond, nil))
	done := make(chan struct{}, 1)
	s.Subscribe(func() {
		select {
		case done <- struct{}{}:
		default:
		}
	})

	res, err := s.Dispatch(incr{By: 1})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if _, ok := res.(incr); !ok {
		t.Fatalf("result = %#v, want the action returned immediately", res)
	}
	if s.State().N != 0 {
		t.Fatalf("N = %d immediately after Dispatch, want 0 (forward deferred)", s.State().N)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("deferred dispatch never arrived")
	}
	if s.State().N != 1 {
		t.Fatalf("N = %d after delay, want 1", s.State().N)
	}
}

func TestDelayReportsContinuationErrorsToHook(t *testing.T) {
	errs := make(chan error, 1)
	s := newCounter(t, Delay[counterState](5*time.Millisecond, func(err error) { errs <- err }))

	if _, err := s.Dispatch(boom{}); err != nil {
		t.Fatalf("Dispatch returned %v, want nil (error belongs to the continuation)", err)
	}
	select {
	case err := <-errs:
		var re *ReducerError
		if !errors.As(err, &re) {
			t.Fatalf("hook got %v, want ReducerError", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("continuation error never reached the hook")
	}
}

// ---------------------------------------------------------------------------
// Logging
// ---------------------------------------------------------------------------

func TestLoggingMiddlewarePassesResultThrough(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := newCounter(t, Logging[counterState](log))

	res, err := s.Dispatch(incr{By: 2})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got, ok := res.(incr); !ok || got.By != 2 {
		t.Fatalf("result = %#v, want the dispatched action", res)
	}

	out := buf.String()
	if !strings.Contains(out, `"action":"test/incr"`) {
		t.Fatalf("log output missing action kind: %s", out)
	}
	if !strings.Contains(out, "dispatch") || !strings.Contains(out, "dispatched") {
		t.Fatalf("log output missing before/after records: %s", out)
	}
}

func TestLoggingMiddlewareRecordsFailures(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := newCounter(t, Logging[counterState](log))

	if _, err := s.Dispatch(boom{}); err == nil {
		t.Fatal("Dispatch(boom) succeeded")
	}
	if !strings.Contains(buf.String(), "dispatch failed") {
		t.Fatalf("log output missing failure record: %s", buf.String())
	}
}
