package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidShopID      = errors.New("invalid shop id")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("transition not allowed from current status")
	ErrTerminalState      = errors.New("order is in a terminal state")
	ErrStatusConflict     = errors.New("order changed underneath the update")
	ErrTotalMismatch      = errors.New("stored total does not match item subtotal")
	ErrPaymentNotApproved = errors.New("online payment not approved by provider")
	ErrGatewayRequired    = errors.New("payment gateway not configured")
)

// ExpiryAction is the configurable resolution applied to a pending order
// that outlived the expiry window. Both resolutions are ordinary edges of
// the lifecycle graph and go through RequestTransition, so validation and
// timestamp stamping are never bypassed.
type ExpiryAction string

const (
	// ExpiryActionCancel auto-cancels the order (default).
	ExpiryActionCancel ExpiryAction = "cancel"
	// ExpiryActionEscalate moves the order to processing for manual review.
	ExpiryActionEscalate ExpiryAction = "escalate"
)

func (a ExpiryAction) target() entities.OrderStatus {
	if a == ExpiryActionEscalate {
		return entities.OrderStatusProcessing
	}
	return entities.OrderStatusCanceled
}

// OrderView is the read model handed to the UI: the order plus derived
// display state. Formatting beyond these fields is the UI's problem.
type OrderView struct {
	entities.Order
	StatusLabel      string `json:"status_label"`
	Expired          bool   `json:"expired"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// IOrderUseCase is the order lifecycle engine.
//
// Transition and payment operations report whether they changed anything:
// re-requesting the status an order already has, or confirming an already
// confirmed payment, is a no-op with changed=false, never a fresh stamp.
type IOrderUseCase interface {
	GetOrder(ctx context.Context, shopID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, shopID string, statuses []entities.OrderStatus) ([]OrderView, error)
	RequestTransition(ctx context.Context, shopID, orderID string, target entities.OrderStatus) (entities.Order, bool, error)
	ConfirmPayment(ctx context.Context, shopID, orderID string) (entities.Order, bool, error)
	EvaluateExpiry(ctx context.Context, orderID string, now time.Time) (entities.Order, bool, error)
	RemainingTime(order entities.Order, now time.Time) time.Duration
	PendingOrders(ctx context.Context) ([]entities.Order, error)
	ExpiryWindow() time.Duration
}

// OrderUseCase serializes all writes for a shop session through one
// instance. Idempotency guards (status re-check plus conditional patches)
// substitute for locking; this is adequate for a single shopkeeper acting on
// their own orders and is a documented limitation, not a general
// multi-writer design.
type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	scheduler interfaces.IExpiryScheduler
	logger    *zap.Logger

	window time.Duration
	action ExpiryAction
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, logger *zap.Logger, window time.Duration, action ExpiryAction) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if action != ExpiryActionEscalate {
		action = ExpiryActionCancel
	}
	return &OrderUseCase{
		repo:    repo,
		gateway: gateway,
		logger:  logger,
		window:  window,
		action:  action,
	}
}

// SetExpiryScheduler attaches the worker that owns per-order one-shot
// timers. Set once during wiring; the worker needs the usecase and the
// usecase needs the worker, so this breaks the construction cycle.
func (u *OrderUseCase) SetExpiryScheduler(s interfaces.IExpiryScheduler) {
	u.scheduler = s
}

func (u *OrderUseCase) ExpiryWindow() time.Duration {
	return u.window
}

func (u *OrderUseCase) GetOrder(ctx context.Context, shopID, orderID string) (entities.Order, error) {
	shopID, orderID, err := cleanOrderIDs(shopID, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.load(ctx, shopID, orderID)
}

func (u *OrderUseCase) ListOrders(ctx context.Context, shopID string, statuses []entities.OrderStatus) ([]OrderView, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidShopID
	}
	for _, s := range statuses {
		if !s.Known() {
			return nil, ErrUnknownStatus
		}
	}

	orders, err := u.repo.ListByShop(ctx, shopID, expandSynonyms(statuses))
	if err != nil {
		return nil, err
	}

	// Newest first, matching the dashboard's order list.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	now := time.Now().UTC()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, u.annotate(o, now))
	}
	return views, nil
}

// RequestTransition moves the order one edge along the lifecycle graph. The
// entry timestamp for the target status is set exactly when the transition
// applies and never again. The returned order reflects the store's state
// after the patch; on store failure nothing local is assumed updated.
func (u *OrderUseCase) RequestTransition(ctx context.Context, shopID, orderID string, target entities.OrderStatus) (entities.Order, bool, error) {
	shopID, orderID, err := cleanOrderIDs(shopID, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if !target.Known() {
		return entities.Order{}, false, ErrUnknownStatus
	}

	order, err := u.load(ctx, shopID, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}

	// Re-requesting the current status reports the existing state; it must
	// not re-stamp the entry timestamp.
	if order.Status.Canonical() == target.Canonical() {
		return order, false, nil
	}
	if order.Status.Terminal() {
		return entities.Order{}, false, ErrTerminalState
	}
	if !entities.CanTransition(order.Status, target) {
		return entities.Order{}, false, ErrInvalidTransition
	}

	updated, err := u.repo.PatchStatus(ctx, order.ID, order.Status, target, entities.EntryTimestampAttr(target), time.Now().UTC())
	if err != nil {
		return entities.Order{}, false, err
	}
	if updated.ID == "" {
		// Condition failed: someone else moved the order first.
		return entities.Order{}, false, ErrStatusConflict
	}

	if order.Status.Canonical() == entities.OrderStatusPending && u.scheduler != nil {
		u.scheduler.Cancel(order.ID)
	}

	u.logger.Info("order transitioned",
		zap.String("order_id", order.ID),
		zap.String("shop_id", shopID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(target)))
	return updated, true, nil
}

// ConfirmPayment marks the order paid exactly once. It is independent of the
// status machine. A repeated call reports changed=false so the UI does not
// show a duplicate confirmation notice.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, shopID, orderID string) (entities.Order, bool, error) {
	shopID, orderID, err := cleanOrderIDs(shopID, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}

	order, err := u.load(ctx, shopID, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if order.PaymentStatus == entities.PaymentStatusPaid {
		return order, false, nil
	}
	if !order.TotalMatches() {
		u.logger.Warn("order total disagrees with item subtotal",
			zap.String("order_id", order.ID),
			zap.Float64("total", order.TotalAmount),
			zap.Float64("subtotal", order.Subtotal()))
		return entities.Order{}, false, ErrTotalMismatch
	}

	if order.PaymentMethod == entities.PaymentMethodOnline {
		if u.gateway == nil {
			return entities.Order{}, false, ErrGatewayRequired
		}
		status, err := u.gateway.VerifyPayment(ctx, order.ProviderPaymentID)
		if err != nil {
			return entities.Order{}, false, err
		}
		if status != "approved" {
			return entities.Order{}, false, ErrPaymentNotApproved
		}
	}

	updated, err := u.repo.PatchPayment(ctx, order.ID, order.PaymentMethod, time.Now().UTC())
	if err != nil {
		return entities.Order{}, false, err
	}
	if updated.ID == "" {
		// Condition failed: re-read and treat an already-paid order as the
		// no-op it is.
		latest, err := u.load(ctx, shopID, orderID)
		if err != nil {
			return entities.Order{}, false, err
		}
		if latest.PaymentStatus == entities.PaymentStatusPaid {
			return latest, false, nil
		}
		return entities.Order{}, false, ErrStatusConflict
	}

	u.logger.Info("payment confirmed",
		zap.String("order_id", order.ID),
		zap.String("shop_id", shopID),
		zap.String("method", string(order.PaymentMethod)))
	return updated, true, nil
}

// EvaluateExpiry resolves a pending order that outlived the expiry window.
// It re-reads the order first, so calling it redundantly (poll sweep plus
// one-shot timer plus retries) never double-transitions or double-stamps.
func (u *OrderUseCase) EvaluateExpiry(ctx context.Context, orderID string, now time.Time) (entities.Order, bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, false, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if order.ID == "" {
		return entities.Order{}, false, ErrOrderNotFound
	}
	if !order.Expired(u.window, now) {
		return order, false, nil
	}

	target := u.action.target()
	updated, changed, err := u.RequestTransition(ctx, order.ShopID, order.ID, target)
	if errors.Is(err, ErrStatusConflict) {
		// Someone resolved it between our read and the patch; the outcome is
		// the same as if our call had been the redundant one.
		latest, lerr := u.repo.GetByID(ctx, orderID)
		if lerr != nil {
			return entities.Order{}, false, lerr
		}
		return latest, false, nil
	}
	if err != nil {
		return entities.Order{}, false, err
	}
	if changed {
		u.logger.Info("pending order expired",
			zap.String("order_id", order.ID),
			zap.String("shop_id", order.ShopID),
			zap.String("resolution", string(target)))
	}
	return updated, changed, nil
}

// RemainingTime is pure and never negative.
func (u *OrderUseCase) RemainingTime(order entities.Order, now time.Time) time.Duration {
	return order.RemainingTime(u.window, now)
}

// PendingOrders returns every pending order across shops for the expiry
// sweep.
func (u *OrderUseCase) PendingOrders(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListByStatus(ctx, entities.OrderStatusPending)
}

func (u *OrderUseCase) load(ctx context.Context, shopID, orderID string) (entities.Order, error) {
	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	// An order owned by another shop reads as not found; the engine never
	// trusts an ambient identity, only the one passed in.
	if order.ID == "" || order.ShopID != shopID {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) annotate(o entities.Order, now time.Time) OrderView {
	v := OrderView{Order: o, StatusLabel: statusLabel(o.Status)}
	if o.Status.Canonical() == entities.OrderStatusPending {
		v.Expired = o.Expired(u.window, now)
		v.RemainingSeconds = int(o.RemainingTime(u.window, now) / time.Second)
	}
	return v
}

func cleanOrderIDs(shopID, orderID string) (string, string, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return "", "", ErrInvalidShopID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", "", ErrInvalidOrderID
	}
	return shopID, orderID, nil
}

// expandSynonyms widens a status filter so that delivered matches completed
// and canceled matches cancelled, the way the old history view queried
// `status in ["completed","cancelled"]`.
func expandSynonyms(statuses []entities.OrderStatus) []entities.OrderStatus {
	if len(statuses) == 0 {
		return nil
	}
	out := make([]entities.OrderStatus, 0, len(statuses)+2)
	seen := map[entities.OrderStatus]bool{}
	add := func(s entities.OrderStatus) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range statuses {
		add(s)
		switch s.Canonical() {
		case entities.OrderStatusDelivered:
			add(entities.OrderStatusDelivered)
			add(entities.OrderStatusCompleted)
		case entities.OrderStatusCanceled:
			add(entities.OrderStatusCanceled)
			add(entities.OrderStatusCancelledAlt)
		}
	}
	return out
}

func statusLabel(s entities.OrderStatus) string {
	str := string(s)
	if str == "" {
		return ""
	}
	return strings.ToUpper(str[:1]) + str[1:]
}
