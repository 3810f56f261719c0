package runner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type fakeDrainer struct {
	drained atomic.Bool
	delay   time.Duration
}

func (d *fakeDrainer) Drain() error {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	d.drained.Store(true)
	return nil
}

func TestRunDrainsOnCancel(t *testing.T) {
	d := &fakeDrainer{}
	var started, stopped atomic.Bool
	r := NewLifecycleRunner(d, Hooks{
		OnStart: func() { started.Store(true) },
		OnStop:  func() { stopped.Store(true) },
	}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()

	deadline := time.Now().Add(time.Second)
	for r.State() != StateRunning {
		if time.Now().After(deadline) {
			t.Fatalf("runner never reached running state")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	if err := <-errCh; err != nil {
		t.Fatalf("run: %v", err)
	}
	if !started.Load() || !stopped.Load() || !d.drained.Load() {
		t.Fatalf("lifecycle hooks incomplete: start=%v stop=%v drained=%v",
			started.Load(), stopped.Load(), d.drained.Load())
	}
	if r.State() != StateStopped {
		t.Fatalf("expected stopped state, got %d", r.State())
	}
}

func TestDrainTimeout(t *testing.T) {
	d := &fakeDrainer{delay: 200 * time.Millisecond}
	r := NewLifecycleRunner(d, Hooks{}, 10*time.Millisecond)

	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(context.Background()) }()

	deadline := time.Now().Add(time.Second)
	for r.State() != StateRunning {
		if time.Now().After(deadline) {
			t.Fatalf("runner never reached running state")
		}
		time.Sleep(time.Millisecond)
	}
	if err := r.Stop(); err == nil || err.Error() != "drain timeout" {
		t.Fatalf("expected drain timeout, got %v", err)
	}
	<-errCh
}

func TestRunTwiceFails(t *testing.T) {
	r := NewLifecycleRunner(nil, Hooks{}, time.Second)
	go func() { _ = r.Run(context.Background()) }()

	deadline := time.Now().Add(time.Second)
	for r.State() != StateRunning {
		if time.Now().After(deadline) {
			t.Fatalf("runner never reached running state")
		}
		time.Sleep(time.Millisecond)
	}
	if err := r.Run(context.Background()); err == nil {
		t.Fatalf("second run must fail")
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	// Stop is idempotent.
	if err := r.Stop(); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}
