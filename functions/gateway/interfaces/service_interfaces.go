package interfaces

import (
	"context"

	"github.com/meetnearme/stripe-checkout/functions/gateway/types"
)

type CheckoutServiceInterface interface {
	CreateCheckoutSession(ctx context.Context, input types.CheckoutSessionInput) (*types.CheckoutSessionResponse, error)
}
