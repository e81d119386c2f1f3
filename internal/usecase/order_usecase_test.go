package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/entities"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testWindow = 40 * time.Second

func newTestOrderUseCase(repo *mock_interfaces.MockIOrderRepository, gateway *mock_interfaces.MockIPaymentGateway) *OrderUseCase {
	if gateway == nil {
		return NewOrderUseCase(repo, nil, nil, testWindow, ExpiryActionCancel)
	}
	return NewOrderUseCase(repo, gateway, nil, testWindow, ExpiryActionCancel)
}

func pendingOrder(created time.Time) entities.Order {
	return entities.Order{
		ID:            "order-1",
		ShopID:        "shop-1",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
		PaymentMethod: entities.PaymentMethodCash,
		Items: []entities.OrderItem{
			{Name: "candle", Price: 10, Quantity: 2},
		},
		TotalAmount: 20,
		CreatedAt:   created,
	}
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("invalid shop id", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil)
		_, err := uc.GetOrder(context.Background(), "  ", "order-1")
		if !errors.Is(err, ErrInvalidShopID) {
			t.Fatalf("expected ErrInvalidShopID, got %v", err)
		}
	})

	t.Run("invalid order id", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil)
		_, err := uc.GetOrder(context.Background(), "shop-1", "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.GetOrder(context.Background(), "shop-1", "order-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order owned by another shop reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1", ShopID: "shop-2"}, nil)

		_, err := uc.GetOrder(context.Background(), "shop-1", "order-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)
		want := pendingOrder(time.Now().UTC())
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(want, nil)

		got, err := uc.GetOrder(context.Background(), " shop-1 ", " order-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "order-1" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	t.Run("unknown status filter", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil)
		_, err := uc.ListOrders(context.Background(), "shop-1", []entities.OrderStatus{"refunded"})
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("delivered filter widens to legacy completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		repo.EXPECT().ListByShop(gomock.Any(), "shop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, statuses []entities.OrderStatus) ([]entities.Order, error) {
				seen := map[entities.OrderStatus]bool{}
				for _, s := range statuses {
					seen[s] = true
				}
				if !seen[entities.OrderStatusDelivered] || !seen[entities.OrderStatusCompleted] {
					t.Fatalf("expected delivered+completed filter, got %v", statuses)
				}
				return nil, nil
			},
		)

		if _, err := uc.ListOrders(context.Background(), "shop-1", []entities.OrderStatus{entities.OrderStatusDelivered}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("newest first with expiry annotations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		now := time.Now().UTC()
		old := pendingOrder(now.Add(-2 * time.Minute))
		old.ID = "order-old"
		fresh := pendingOrder(now.Add(-5 * time.Second))
		fresh.ID = "order-new"
		shipped := entities.Order{ID: "order-shipped", ShopID: "shop-1", Status: entities.OrderStatusShipped, CreatedAt: now.Add(-time.Minute)}

		repo.EXPECT().ListByShop(gomock.Any(), "shop-1", gomock.Nil()).Return([]entities.Order{old, shipped, fresh}, nil)

		views, err := uc.ListOrders(context.Background(), "shop-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("expected 3 views, got %d", len(views))
		}
		if views[0].ID != "order-new" || views[2].ID != "order-old" {
			t.Fatalf("expected newest first, got %s .. %s", views[0].ID, views[2].ID)
		}
		if views[0].Expired || views[0].RemainingSeconds <= 0 {
			t.Fatalf("expected fresh pending order to have time left: %+v", views[0])
		}
		if !views[2].Expired || views[2].RemainingSeconds != 0 {
			t.Fatalf("expected old pending order to be expired with zero remaining: %+v", views[2])
		}
		// Non-pending orders carry no countdown.
		if views[1].Expired || views[1].RemainingSeconds != 0 {
			t.Fatalf("expected shipped order without countdown: %+v", views[1])
		}
		if views[1].StatusLabel != "Shipped" {
			t.Fatalf("expected capitalized label, got %q", views[1].StatusLabel)
		}
	})
}

func TestOrderUseCase_RequestTransition(t *testing.T) {
	t.Run("unknown target", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil)
		_, _, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", "refunded")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("re-requesting current status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		order.Status = entities.OrderStatusProcessing
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		// No PatchStatus expectation: a repeated request must not re-stamp.

		got, changed, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Fatalf("expected no-op for repeated status request")
		}
		if got.Status != entities.OrderStatusProcessing {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("legacy completed equals delivered for the no-op check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		order.Status = entities.OrderStatusCompleted
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)

		_, changed, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", entities.OrderStatusDelivered)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Fatalf("expected no-op for legacy spelling of same status")
		}
	})

	t.Run("terminal order rejects any move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		order.Status = entities.OrderStatusCanceled
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)

		_, _, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", entities.OrderStatusProcessing)
		if !errors.Is(err, ErrTerminalState) {
			t.Fatalf("expected ErrTerminalState, got %v", err)
		}
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(pendingOrder(time.Now().UTC()), nil)

		_, _, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", entities.OrderStatusShipped)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("conditional patch failure surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(pendingOrder(time.Now().UTC()), nil)
		repo.EXPECT().PatchStatus(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusProcessing, "processing_at", gomock.Any()).
			Return(entities.Order{}, nil)

		_, _, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", entities.OrderStatusProcessing)
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("leaving pending cancels the expiry timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		scheduler := mock_interfaces.NewMockIExpiryScheduler(ctrl)
		uc := newTestOrderUseCase(repo, nil)
		uc.SetExpiryScheduler(scheduler)

		order := pendingOrder(time.Now().UTC())
		moved := order
		moved.Status = entities.OrderStatusProcessing
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		repo.EXPECT().PatchStatus(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusProcessing, "processing_at", gomock.Any()).
			Return(moved, nil)
		scheduler.EXPECT().Cancel("order-1")

		got, changed, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed {
			t.Fatalf("expected changed=true")
		}
		if got.Status != entities.OrderStatusProcessing {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})

	t.Run("shipped order can still be canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		order.Status = entities.OrderStatusShipped
		canceled := order
		canceled.Status = entities.OrderStatusCanceled
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		repo.EXPECT().PatchStatus(gomock.Any(), "order-1", entities.OrderStatusShipped, entities.OrderStatusCanceled, "canceled_at", gomock.Any()).
			Return(canceled, nil)

		got, changed, err := uc.RequestTransition(context.Background(), "shop-1", "order-1", entities.OrderStatusCanceled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed || got.Status != entities.OrderStatusCanceled {
			t.Fatalf("unexpected result: changed=%v order=%+v", changed, got)
		}
	})
}

func TestOrderUseCase_ConfirmPayment(t *testing.T) {
	t.Run("already paid is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		order.PaymentStatus = entities.PaymentStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		// No PatchPayment expectation: the stamp must not move.

		got, changed, err := uc.ConfirmPayment(context.Background(), "shop-1", "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Fatalf("expected no-op for already paid order")
		}
		if got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("total mismatch rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		order.TotalAmount = 99.99
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)

		_, _, err := uc.ConfirmPayment(context.Background(), "shop-1", "order-1")
		if !errors.Is(err, ErrTotalMismatch) {
			t.Fatalf("expected ErrTotalMismatch, got %v", err)
		}
	})

	t.Run("cash success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		paid := order
		paid.PaymentStatus = entities.PaymentStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		repo.EXPECT().PatchPayment(gomock.Any(), "order-1", entities.PaymentMethodCash, gomock.Any()).Return(paid, nil)

		got, changed, err := uc.ConfirmPayment(context.Background(), "shop-1", "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed || got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected result: changed=%v order=%+v", changed, got)
		}
	})

	t.Run("online without gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		order.PaymentMethod = entities.PaymentMethodOnline
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)

		_, _, err := uc.ConfirmPayment(context.Background(), "shop-1", "order-1")
		if !errors.Is(err, ErrGatewayRequired) {
			t.Fatalf("expected ErrGatewayRequired, got %v", err)
		}
	})

	t.Run("online not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestOrderUseCase(repo, gateway)

		order := pendingOrder(time.Now().UTC())
		order.PaymentMethod = entities.PaymentMethodOnline
		order.ProviderPaymentID = "12345"
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		gateway.EXPECT().VerifyPayment(gomock.Any(), "12345").Return("rejected", nil)

		_, _, err := uc.ConfirmPayment(context.Background(), "shop-1", "order-1")
		if !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	t.Run("online approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestOrderUseCase(repo, gateway)

		order := pendingOrder(time.Now().UTC())
		order.PaymentMethod = entities.PaymentMethodOnline
		order.ProviderPaymentID = "12345"
		paid := order
		paid.PaymentStatus = entities.PaymentStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		gateway.EXPECT().VerifyPayment(gomock.Any(), "12345").Return("approved", nil)
		repo.EXPECT().PatchPayment(gomock.Any(), "order-1", entities.PaymentMethodOnline, gomock.Any()).Return(paid, nil)

		_, changed, err := uc.ConfirmPayment(context.Background(), "shop-1", "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed {
			t.Fatalf("expected changed=true")
		}
	})

	t.Run("racing confirmation folds into a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(time.Now().UTC())
		paid := order
		paid.PaymentStatus = entities.PaymentStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		repo.EXPECT().PatchPayment(gomock.Any(), "order-1", entities.PaymentMethodCash, gomock.Any()).Return(entities.Order{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(paid, nil)

		got, changed, err := uc.ConfirmPayment(context.Background(), "shop-1", "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Fatalf("expected no-op after losing the race to another confirmation")
		}
		if got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestOrderUseCase_EvaluateExpiry(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inside the window is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(pendingOrder(created), nil)

		_, changed, err := uc.EvaluateExpiry(context.Background(), "order-1", created.Add(30*time.Second))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Fatalf("expected no-op inside the window")
		}
	})

	t.Run("expired pending order is auto-canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(created)
		canceled := order
		canceled.Status = entities.OrderStatusCanceled

		// One read by EvaluateExpiry, one by the inner transition.
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		repo.EXPECT().PatchStatus(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusCanceled, "canceled_at", gomock.Any()).
			Return(canceled, nil)

		got, changed, err := uc.EvaluateExpiry(context.Background(), "order-1", created.Add(41*time.Second))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed {
			t.Fatalf("expected the expired order to be resolved")
		}
		if got.Status != entities.OrderStatusCanceled {
			t.Fatalf("expected canceled, got %s", got.Status)
		}
	})

	t.Run("escalate resolution moves to processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, testWindow, ExpiryActionEscalate)

		order := pendingOrder(created)
		escalated := order
		escalated.Status = entities.OrderStatusProcessing

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		repo.EXPECT().PatchStatus(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusProcessing, "processing_at", gomock.Any()).
			Return(escalated, nil)

		got, changed, err := uc.EvaluateExpiry(context.Background(), "order-1", created.Add(50*time.Second))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed || got.Status != entities.OrderStatusProcessing {
			t.Fatalf("unexpected result: changed=%v order=%+v", changed, got)
		}
	})

	t.Run("second evaluation after resolution is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		canceled := pendingOrder(created)
		canceled.Status = entities.OrderStatusCanceled
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(canceled, nil)
		// No PatchStatus expectation: a canceled order is no longer pending, so
		// it never reads as expired.

		_, changed, err := uc.EvaluateExpiry(context.Background(), "order-1", created.Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Fatalf("expected redundant evaluation to change nothing")
		}
	})

	t.Run("losing the patch race is benign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		order := pendingOrder(created)
		resolved := order
		resolved.Status = entities.OrderStatusProcessing

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil).Times(2)
		repo.EXPECT().PatchStatus(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusCanceled, "canceled_at", gomock.Any()).
			Return(entities.Order{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(resolved, nil)

		got, changed, err := uc.EvaluateExpiry(context.Background(), "order-1", created.Add(time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Fatalf("expected changed=false after losing the race")
		}
		if got.Status != entities.OrderStatusProcessing {
			t.Fatalf("expected the winner's state, got %s", got.Status)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, _, err := uc.EvaluateExpiry(context.Background(), "order-1", time.Now().UTC())
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_RemainingTime(t *testing.T) {
	uc := newTestOrderUseCase(nil, nil)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := pendingOrder(created)

	if got := uc.RemainingTime(order, created.Add(10*time.Second)); got != 30*time.Second {
		t.Fatalf("RemainingTime = %v, want 30s", got)
	}
	if got := uc.RemainingTime(order, created.Add(5*time.Minute)); got != 0 {
		t.Fatalf("RemainingTime past the window = %v, want 0", got)
	}
	if uc.ExpiryWindow() != testWindow {
		t.Fatalf("ExpiryWindow = %v, want %v", uc.ExpiryWindow(), testWindow)
	}
}
