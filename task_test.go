package stealpool

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHandleResult(t *testing.T) {
	run, h := newTask(func() (int, error) { return 7, nil })

	go func() { _ = run() }()

	v, err := h.Get()
	if err != nil {
		t.Fatalf("Get err = %v; want nil", err)
	}
	if v != 7 {
		t.Fatalf("Get = %d; want 7", v)
	}
	// A second Get observes the same captured result.
	if v, _ := h.Get(); v != 7 {
		t.Fatalf("second Get = %d; want 7", v)
	}
}

func TestHandleError(t *testing.T) {
	boom := errors.New("boom")
	run, h := newTask(func() (int, error) { return 0, boom })

	if err := run(); !errors.Is(err, boom) {
		t.Fatalf("run err = %v; want boom", err)
	}
	if _, err := h.Get(); !errors.Is(err, boom) {
		t.Fatalf("Get err = %v; want boom", err)
	}
}

func TestHandlePanicCapture(t *testing.T) {
	run, h := newTask(func() (int, error) { panic("kaboom") })

	// The unit returns the captured panic as an error instead of
	// unwinding its caller.
	err := run()
	if err == nil {
		t.Fatal("run returned nil after panic")
	}

	_, err = h.Get()
	var pe *TaskPanicError
	if !errors.As(err, &pe) {
		t.Fatalf("Get err = %T; want *TaskPanicError", err)
	}
	if pe.Value != "kaboom" {
		t.Fatalf("panic value = %v; want kaboom", pe.Value)
	}
	if pe.Stack == "" {
		t.Fatal("panic stack not captured")
	}
}

func TestHandleGetContext(t *testing.T) {
	_, h := newTask(func() (int, error) { return 1, nil })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// The unit never runs; the waiting caller must be released by ctx.
	if _, err := h.GetContext(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("GetContext err = %v; want deadline exceeded", err)
	}
}

func TestDoubleInvocationPanics(t *testing.T) {
	run, _ := newTask(func() (int, error) { return 1, nil })

	if err := run(); err != nil {
		t.Fatalf("first run err = %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("second invocation did not panic")
		}
		if !strings.Contains(r.(string), "invoked twice") {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	_ = run()
}
