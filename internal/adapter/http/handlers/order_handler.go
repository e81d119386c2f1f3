package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/adapter/http/dto/request"
	"storefront/internal/adapter/http/dto/response"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order lifecycle engine over HTTP. Transition
// legality is never re-derived here; the handler only translates requests
// and maps engine errors onto distinct codes.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders returns the shop's orders, optionally filtered by
// ?status=pending or ?status=delivered,canceled.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	shopID := c.Param("shop_id")
	statuses := request.ParseStatusFilter(c.Query("status"))

	views, err := h.usecase.ListOrders(c.Request.Context(), shopID, statuses)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderViews(views))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("shop_id"), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// TransitionOrder moves the order to the status in the request body.
func (h *OrderHandler) TransitionOrder(c *gin.Context) {
	var req request.OrderTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, changed, err := h.usecase.RequestTransition(c.Request.Context(), c.Param("shop_id"), c.Param("order_id"), req.TargetStatus())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderMutation(order, changed))
}

// ConfirmPayment marks the order paid. A repeated confirmation responds with
// changed=false rather than an error so the UI can skip the duplicate toast.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	order, changed, err := h.usecase.ConfirmPayment(c.Request.Context(), c.Param("shop_id"), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderMutation(order, changed))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShopID), errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Requested status is not reachable from the current one", http.StatusConflict)
	case errors.Is(err, usecase.ErrTerminalState):
		return pkg.NewDomainErrorSimple("ORDER_TERMINAL", "Order is already delivered or canceled", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Order changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrTotalMismatch):
		return pkg.NewDomainErrorSimple("TOTAL_MISMATCH", "Stored total disagrees with item subtotal", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Online payment is not approved by the provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
