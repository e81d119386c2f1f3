package routes

import (
	"net/http"

	"storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathShops = "/shops"

func addStorefrontRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, productHandler *handlers.ProductHandler, shopHandler *handlers.ShopHandler) {
	shops := rg.Group(PathShops + "/:shop_id")
	{
		shops.GET("/summary", shopHandler.GetSummary)
		shops.GET("/profile", shopHandler.GetProfile)
		shops.PUT("/profile", shopHandler.UpdateProfile)

		orders := shops.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:order_id", orderHandler.GetOrder)
			orders.PATCH("/:order_id/status", orderHandler.TransitionOrder)
			orders.POST("/:order_id/payment", orderHandler.ConfirmPayment)
		}

		products := shops.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.ListProducts)
			products.GET("/:product_id", productHandler.GetProduct)
			products.PUT("/:product_id", productHandler.UpdateProduct)
			products.DELETE("/:product_id", productHandler.DeleteProduct)
		}
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
