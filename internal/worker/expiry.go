package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase"

	"go.uber.org/zap"
)

// Engine is the slice of the order lifecycle engine the worker drives.
type Engine interface {
	PendingOrders(ctx context.Context) ([]entities.Order, error)
	EvaluateExpiry(ctx context.Context, orderID string, now time.Time) (entities.Order, bool, error)
	RemainingTime(order entities.Order, now time.Time) time.Duration
}

const evaluateTimeout = 10 * time.Second

// ExpiryWorker owns every expiry timer in the process.
//
// Two triggers feed EvaluateExpiry: a periodic sweep over pending orders,
// and a one-shot timer per order armed at its exact expiry instant so
// resolution is prompt between sweeps. Timers are cancelled when the order
// leaves pending manually (via Cancel, called by the engine) and when the
// worker shuts down. EvaluateExpiry is idempotent, so an overlap between
// sweep and timer is harmless.
type ExpiryWorker struct {
	engine   Engine
	logger   *zap.Logger
	interval time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewExpiryWorker(engine Engine, logger *zap.Logger, interval time.Duration) *ExpiryWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpiryWorker{
		engine:   engine,
		logger:   logger,
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// Run sweeps until ctx is cancelled, then stops every outstanding timer.
func (w *ExpiryWorker) Run(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("expiry worker stopping")
			w.cancelAll()
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// Cancel stops the one-shot timer for an order that left pending. Safe to
// call for orders without a timer.
func (w *ExpiryWorker) Cancel(orderID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[orderID]; ok {
		t.Stop()
		delete(w.timers, orderID)
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	orders, err := w.engine.PendingOrders(ctx)
	if err != nil {
		w.logger.Error("pending sweep failed", zap.Error(err))
		return
	}

	now := time.Now().UTC()
	for _, order := range orders {
		if remaining := w.engine.RemainingTime(order, now); remaining > 0 {
			w.schedule(order.ID, remaining)
			continue
		}
		w.evaluate(order.ID)
	}
}

func (w *ExpiryWorker) schedule(orderID string, after time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.timers[orderID]; ok {
		return
	}
	w.timers[orderID] = time.AfterFunc(after, func() {
		w.Cancel(orderID)
		w.evaluate(orderID)
	})
}

func (w *ExpiryWorker) evaluate(orderID string) {
	ctx, cancel := context.WithTimeout(context.Background(), evaluateTimeout)
	defer cancel()

	_, changed, err := w.engine.EvaluateExpiry(ctx, orderID, time.Now().UTC())
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		// Deleted or never visible to us anymore; nothing to guard.
	case err != nil:
		w.logger.Error("expiry evaluation failed", zap.String("order_id", orderID), zap.Error(err))
	case changed:
		w.logger.Info("expired order resolved", zap.String("order_id", orderID))
	}
}

func (w *ExpiryWorker) cancelAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, t := range w.timers {
		t.Stop()
		delete(w.timers, id)
	}
}
