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

// ShopHandler serves the profile view and the dashboard summary card.

type ShopHandler struct {
	shops   usecase.IShopUseCase
	summary usecase.ISummaryUseCase
}

func NewShopHandler(shops usecase.IShopUseCase, summary usecase.ISummaryUseCase) *ShopHandler {
	return &ShopHandler{shops: shops, summary: summary}
}

func (h *ShopHandler) GetProfile(c *gin.Context) {
	shop, err := h.shops.GetShop(c.Request.Context(), c.Param("shop_id"))
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShop(shop))
}

func (h *ShopHandler) UpdateProfile(c *gin.Context) {
	var req request.ShopProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.shops.UpdateProfile(c.Request.Context(), req.ToEntity(c.Param("shop_id")))
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShop(updated))
}

func (h *ShopHandler) GetSummary(c *gin.Context) {
	summary, err := h.summary.GetSummary(c.Request.Context(), c.Param("shop_id"))
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func mapShopError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShopID), errors.Is(err, usecase.ErrInvalidShopProfile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShopNotFound):
		return pkg.NewDomainErrorSimple("SHOP_NOT_FOUND", "Shop not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
