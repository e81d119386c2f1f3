package payments

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"storefront/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrInvalidProviderPaymentID      = errors.New("invalid provider payment id")
)

// MercadoPagoGateway verifies online payments against Mercado Pago.
//
// The placement flow records the provider payment id on the order; before
// the shopkeeper marks an online order paid, the dashboard re-reads the
// payment from the provider and requires it to be approved. Mock mode
// (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) short-circuits to "approved"
// for local runs without provider credentials.
type MercadoPagoGateway struct {
	client   payment.Client
	logger   *zap.Logger
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger *zap.Logger, mockMode bool) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mockMode {
		logger.Info("payment gateway in mock mode")
		return &MercadoPagoGateway{logger: logger, mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger}, nil
}

func (g *MercadoPagoGateway) VerifyPayment(ctx context.Context, providerPaymentID string) (string, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return "", ErrInvalidProviderPaymentID
	}

	if g.mockMode {
		g.logger.Debug("mock payment verification", zap.String("provider_payment_id", providerPaymentID))
		return "approved", nil
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return "", ErrInvalidProviderPaymentID
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		return "", err
	}

	g.logger.Debug("payment verified",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", resp.Status))
	return resp.Status, nil
}
