package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/adapter/http/handlers"
	"storefront/internal/adapter/persistence/repository"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/payments"
	"storefront/internal/usecase"
	"storefront/internal/usecase/interfaces"
	"storefront/internal/worker"
	"storefront/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the service together and blocks until shutdown.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return err
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable)
	productRepo := repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
	shopRepo := repository.NewShopDynamoRepository(ddb, cfg.ShopsTable)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger, paymentMockEnabled())
	if err != nil {
		// Cash-only deployments run without a provider; online confirmations
		// will be rejected with a distinct error.
		logger.Warn("payment gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	orderUC := usecase.NewOrderUseCase(orderRepo, gateway, logger, cfg.ExpiryWindow, usecase.ExpiryAction(cfg.ExpiryAction))
	productUC := usecase.NewProductUseCase(productRepo)
	shopUC := usecase.NewShopUseCase(shopRepo)
	summaryUC := usecase.NewSummaryUseCase(orderRepo, productRepo)

	expiryWorker := worker.NewExpiryWorker(orderUC, logger, cfg.PollInterval)
	orderUC.SetExpiryScheduler(expiryWorker)
	go expiryWorker.Run(ctx)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1,
		handlers.NewOrderHandler(orderUC),
		handlers.NewProductHandler(productUC),
		handlers.NewShopHandler(shopUC, summaryUC),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("storefront service started", zap.String("port", cfg.Port))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func paymentMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch os.Getenv(key) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
