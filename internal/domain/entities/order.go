package entities

import (
	"math"
	"time"
)

// OrderStatus represents the lifecycle of a customer order.
//
// Domain notes:
//   - Transitions are monotonic along the forward path; cancel is the only
//     backward-facing edge and is allowed until the order is delivered.
//   - "completed" and "cancelled" appear in historical records written by an
//     older client. They are stored verbatim and folded into the delivered /
//     canceled terminal classes when filtering or validating.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"

	// Legacy spellings kept for records written by the old dashboard.
	OrderStatusCompleted    OrderStatus = "completed"
	OrderStatusCancelledAlt OrderStatus = "cancelled"
)

// PaymentStatus is an independent sub-state: confirming payment never moves
// the order along the status graph and vice versa.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

// allowedTransitions is the single source of truth for edge legality. Views
// and handlers never re-derive it.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusProcessing: true, OrderStatusCanceled: true},
	OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCanceled: true},
	OrderStatusShipped:    {OrderStatusDelivered: true, OrderStatusCanceled: true},
	OrderStatusDelivered:  {},
	OrderStatusCanceled:   {},
}

// Canonical maps legacy spellings onto their terminal class.
func (s OrderStatus) Canonical() OrderStatus {
	switch s {
	case OrderStatusCompleted:
		return OrderStatusDelivered
	case OrderStatusCancelledAlt:
		return OrderStatusCanceled
	}
	return s
}

func (s OrderStatus) Known() bool {
	_, ok := allowedTransitions[s.Canonical()]
	return ok
}

func (s OrderStatus) Terminal() bool {
	c := s.Canonical()
	return c == OrderStatusDelivered || c == OrderStatusCanceled
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to OrderStatus) bool {
	next := allowedTransitions[from.Canonical()]
	return next != nil && next[to.Canonical()]
}

// EntryTimestampAttr returns the storage attribute stamped exactly once when
// an order enters the given status, or "" for statuses without one.
func EntryTimestampAttr(s OrderStatus) string {
	switch s.Canonical() {
	case OrderStatusProcessing:
		return "processing_at"
	case OrderStatusShipped:
		return "shipped_at"
	case OrderStatusDelivered:
		return "delivered_at"
	case OrderStatusCanceled:
		return "canceled_at"
	}
	return ""
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Phone  string `json:"phone,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is the order document persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (shop_id-index): shop_id
//   - GSI2 (status-index): status
//
// Orders are created by the customer-facing placement flow and only ever
// mutated through the lifecycle engine. Terminal orders are retained for
// history, never deleted.
type Order struct {
	ID     string      `json:"id"`
	ShopID string      `json:"shop_id"`
	Status OrderStatus `json:"status"`

	PaymentStatus     PaymentStatus `json:"payment_status"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`

	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone,omitempty"`
	CustomerEmail   string  `json:"customer_email,omitempty"`
	DeliveryAddress Address `json:"delivery_address"`

	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`

	CreatedAt      time.Time  `json:"created_at"`
	ProcessingAt   *time.Time `json:"processing_at,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CanceledAt     *time.Time `json:"canceled_at,omitempty"`
	CashReceivedAt *time.Time `json:"cash_received_at,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// Subtotal sums item price*quantity.
func (o Order) Subtotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalMatches reports whether the stored total agrees with the item
// subtotal to the cent.
func (o Order) TotalMatches() bool {
	return math.Abs(o.Subtotal()-o.TotalAmount) < 0.005
}

// RemainingTime is the time left before a pending order expires, clamped at
// zero. It is meaningful only for pending orders but safe on any.
func (o Order) RemainingTime(window time.Duration, now time.Time) time.Duration {
	remaining := window - now.Sub(o.CreatedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether a pending order has outlived the expiry window.
func (o Order) Expired(window time.Duration, now time.Time) bool {
	return o.Status.Canonical() == OrderStatusPending && now.Sub(o.CreatedAt) >= window
}
