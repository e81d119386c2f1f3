package interfaces

import "context"

// IPaymentGateway abstracts the external payment provider (e.g. Mercado Pago).
//
// The dashboard never creates payments; it only verifies that an online
// payment reported by the placement flow is actually approved before the
// order is marked paid. Cash orders never reach it.
type IPaymentGateway interface {
	// VerifyPayment returns the provider-side status for the given provider
	// payment id (e.g. "approved", "pending", "rejected").
	VerifyPayment(ctx context.Context, providerPaymentID string) (string, error)
}
