package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entities"
)

// stubEngine is a minimal thread-safe Engine for driving the worker in
// tests. Evaluations are reported on a channel so tests wait instead of
// sleeping.
type stubEngine struct {
	mu      sync.Mutex
	pending []entities.Order
	window  time.Duration

	evaluated chan string
}

func newStubEngine(window time.Duration, pending ...entities.Order) *stubEngine {
	return &stubEngine{
		pending:   pending,
		window:    window,
		evaluated: make(chan string, 16),
	}
}

func (s *stubEngine) PendingOrders(context.Context) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Order, len(s.pending))
	copy(out, s.pending)
	return out, nil
}

func (s *stubEngine) EvaluateExpiry(_ context.Context, orderID string, _ time.Time) (entities.Order, bool, error) {
	s.evaluated <- orderID
	return entities.Order{ID: orderID, Status: entities.OrderStatusCanceled}, true, nil
}

func (s *stubEngine) RemainingTime(order entities.Order, now time.Time) time.Duration {
	return order.RemainingTime(s.window, now)
}

func waitForEvaluation(t *testing.T, engine *stubEngine, want string) {
	t.Helper()
	select {
	case got := <-engine.evaluated:
		if got != want {
			t.Fatalf("evaluated %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for evaluation of %q", want)
	}
}

func TestExpiryWorker_SweepEvaluatesExpired(t *testing.T) {
	engine := newStubEngine(40*time.Second, entities.Order{
		ID:        "order-expired",
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	})
	w := NewExpiryWorker(engine, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitForEvaluation(t, engine, "order-expired")
}

func TestExpiryWorker_SweepSchedulesOneShot(t *testing.T) {
	// A short window makes the one-shot timer fire between sweeps.
	engine := newStubEngine(50*time.Millisecond, entities.Order{
		ID:        "order-fresh",
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	})
	w := NewExpiryWorker(engine, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitForEvaluation(t, engine, "order-fresh")

	w.mu.Lock()
	_, still := w.timers["order-fresh"]
	w.mu.Unlock()
	if still {
		t.Fatalf("expected fired timer to be removed")
	}
}

func TestExpiryWorker_CancelStopsTimer(t *testing.T) {
	engine := newStubEngine(80*time.Millisecond, entities.Order{
		ID:        "order-manual",
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	})
	w := NewExpiryWorker(engine, nil, time.Hour)

	// Arm the timer directly, then cancel it the way the engine does when an
	// order leaves pending by hand.
	w.sweep(context.Background())
	w.Cancel("order-manual")

	select {
	case id := <-engine.evaluated:
		t.Fatalf("cancelled timer still evaluated %q", id)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestExpiryWorker_CancelUnknownOrderIsSafe(t *testing.T) {
	w := NewExpiryWorker(newStubEngine(time.Second), nil, time.Hour)
	w.Cancel("never-scheduled")
}

func TestExpiryWorker_RunStopsOnContextCancel(t *testing.T) {
	engine := newStubEngine(time.Hour, entities.Order{
		ID:        "order-wait",
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	})
	w := NewExpiryWorker(engine, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not stop after context cancel")
	}

	w.mu.Lock()
	n := len(w.timers)
	w.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected all timers cancelled on shutdown, found %d", n)
	}
}
