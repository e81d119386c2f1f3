package interfaces

// IExpiryScheduler is the engine-facing slice of the expiry worker: when an
// order leaves pending through a manual transition, its one-shot expiry
// timer must be cancelled so it never fires against a state it no longer
// guards.

type IExpiryScheduler interface {
	Cancel(orderID string)
}
