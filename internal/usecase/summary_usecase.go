package usecase

import (
	"context"
	"strings"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

// ShopSummary is the dashboard home card: catalog size, open work and
// history totals for one shop. It composes the list operations; there is no
// extra storage behind it.
type ShopSummary struct {
	ShopID         string  `json:"shop_id"`
	ProductCount   int     `json:"product_count"`
	PendingCount   int     `json:"pending_count"`
	ActiveCount    int     `json:"active_count"`
	DeliveredCount int     `json:"delivered_count"`
	CanceledCount  int     `json:"canceled_count"`
	PaidRevenue    float64 `json:"paid_revenue"`
}

type ISummaryUseCase interface {
	GetSummary(ctx context.Context, shopID string) (ShopSummary, error)
}

type SummaryUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
}

var _ ISummaryUseCase = (*SummaryUseCase)(nil)

func NewSummaryUseCase(orders interfaces.IOrderRepository, products interfaces.IProductRepository) *SummaryUseCase {
	return &SummaryUseCase{orders: orders, products: products}
}

func (u *SummaryUseCase) GetSummary(ctx context.Context, shopID string) (ShopSummary, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return ShopSummary{}, ErrInvalidShopID
	}

	products, err := u.products.ListByShop(ctx, shopID)
	if err != nil {
		return ShopSummary{}, err
	}
	orders, err := u.orders.ListByShop(ctx, shopID, nil)
	if err != nil {
		return ShopSummary{}, err
	}

	summary := ShopSummary{ShopID: shopID, ProductCount: len(products)}
	for _, o := range orders {
		switch o.Status.Canonical() {
		case entities.OrderStatusPending:
			summary.PendingCount++
		case entities.OrderStatusProcessing, entities.OrderStatusShipped:
			summary.ActiveCount++
		case entities.OrderStatusDelivered:
			summary.DeliveredCount++
		case entities.OrderStatusCanceled:
			summary.CanceledCount++
		}
		if o.PaymentStatus == entities.PaymentStatusPaid {
			summary.PaidRevenue += o.TotalAmount
		}
	}
	return summary, nil
}
