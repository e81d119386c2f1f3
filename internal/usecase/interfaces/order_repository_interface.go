package interfaces

import (
	"context"
	"time"

	"storefront/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Reads return a zero-value Order when nothing matched; the usecase maps an
// empty ID to not-found. Patch operations are partial updates guarded by
// condition expressions and return a zero-value Order when the guard failed,
// so a lost race is visible to the caller instead of silently re-applied.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByShop(ctx context.Context, shopID string, statuses []entities.OrderStatus) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)

	// PatchStatus sets status from -> to and stamps stampAttr at the given
	// instant. The update is conditional on the stored status still being
	// `from` and stampAttr never having been set.
	PatchStatus(ctx context.Context, id string, from, to entities.OrderStatus, stampAttr string, at time.Time) (entities.Order, error)

	// PatchPayment marks the order paid and stamps paid_at (and
	// cash_received_at for cash orders), conditional on payment_status still
	// being unpaid.
	PatchPayment(ctx context.Context, id string, method entities.PaymentMethod, at time.Time) (entities.Order, error)
}
