package response

import (
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	OrderID       string `json:"order_id"`
	ID            string `json:"id"`
	ShopID        string `json:"shop_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	PaymentMethod string `json:"payment_method"`

	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone,omitempty"`
	CustomerEmail   string           `json:"customer_email,omitempty"`
	DeliveryAddress entities.Address `json:"delivery_address"`

	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`

	CreatedAt      time.Time  `json:"created_at"`
	ProcessingAt   *time.Time `json:"processing_at,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CanceledAt     *time.Time `json:"canceled_at,omitempty"`
	CashReceivedAt *time.Time `json:"cash_received_at,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// OrderMutationResponse is returned by transition and payment endpoints.
// Changed=false means the request was a recognized no-op (already in the
// requested status, already paid) so the UI can skip the success toast.
type OrderMutationResponse struct {
	OrderResponse
	Changed bool `json:"changed"`
}

// OrderViewResponse carries the derived display state alongside the order.
type OrderViewResponse struct {
	OrderResponse
	StatusLabel      string `json:"status_label"`
	Expired          bool   `json:"expired"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return OrderResponse{
		OrderID:         o.ID,
		ID:              o.ID,
		ShopID:          o.ShopID,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentMethod:   string(o.PaymentMethod),
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		DeliveryAddress: o.DeliveryAddress,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		CreatedAt:       o.CreatedAt,
		ProcessingAt:    o.ProcessingAt,
		ShippedAt:       o.ShippedAt,
		DeliveredAt:     o.DeliveredAt,
		CanceledAt:      o.CanceledAt,
		CashReceivedAt:  o.CashReceivedAt,
		PaidAt:          o.PaidAt,
	}
}

func FromOrderMutation(o entities.Order, changed bool) OrderMutationResponse {
	return OrderMutationResponse{OrderResponse: FromOrder(o), Changed: changed}
}

func FromOrderView(v usecase.OrderView) OrderViewResponse {
	return OrderViewResponse{
		OrderResponse:    FromOrder(v.Order),
		StatusLabel:      v.StatusLabel,
		Expired:          v.Expired,
		RemainingSeconds: v.RemainingSeconds,
	}
}

func FromOrderViews(views []usecase.OrderView) []OrderViewResponse {
	out := make([]OrderViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}
