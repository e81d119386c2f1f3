package response

import (
	"testing"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	shipped := now.Add(2 * time.Minute)
	o := entities.Order{
		ID:            "order-1",
		ShopID:        "shop-1",
		Status:        entities.OrderStatusShipped,
		PaymentStatus: entities.PaymentStatusPaid,
		PaymentMethod: entities.PaymentMethodCash,
		CustomerName:  "Ana",
		Items: []entities.OrderItem{
			{ProductID: "prod-1", Name: "mug", Price: 9.5, Quantity: 2},
		},
		TotalAmount: 19,
		CreatedAt:   now,
		ShippedAt:   &shipped,
	}

	res := FromOrder(o)
	if res.ID != "order-1" || res.OrderID != "order-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "shipped" || res.PaymentStatus != "paid" || res.PaymentMethod != "cash" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Name != "mug" || res.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if !res.CreatedAt.Equal(now) || res.ShippedAt == nil || !res.ShippedAt.Equal(shipped) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.DeliveredAt != nil || res.CanceledAt != nil {
		t.Fatalf("expected unset stamps to stay nil: %+v", res)
	}
}

func TestFromOrderMutation(t *testing.T) {
	res := FromOrderMutation(entities.Order{ID: "order-1"}, false)
	if res.Changed {
		t.Fatalf("expected changed=false")
	}
	if res.ID != "order-1" {
		t.Fatalf("unexpected order: %+v", res)
	}
}

func TestFromOrderViews(t *testing.T) {
	views := []usecase.OrderView{
		{
			Order:            entities.Order{ID: "order-1", Status: entities.OrderStatusPending},
			StatusLabel:      "Pending",
			Expired:          false,
			RemainingSeconds: 12,
		},
	}

	res := FromOrderViews(views)
	if len(res) != 1 {
		t.Fatalf("expected one view, got %d", len(res))
	}
	if res[0].StatusLabel != "Pending" || res[0].RemainingSeconds != 12 {
		t.Fatalf("unexpected view: %+v", res[0])
	}

	if out := FromOrderViews(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}
