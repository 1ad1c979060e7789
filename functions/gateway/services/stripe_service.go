package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/helpers"
	"github.com/meetnearme/stripe-checkout/functions/gateway/types"
	"github.com/stripe/stripe-go/v83"
)

var ErrMissingSecretKey = errors.New(helpers.STRIPE_SECRET_KEY_ENV + " is not set")

// ProviderError keeps Stripe's human readable message, which is what a
// caller sees as "details" when session creation fails.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }

// StripeCheckoutService implements the CheckoutServiceInterface
type StripeCheckoutService struct {
	client *stripe.Client
}

// InitStripe builds the checkout service once at cold start. A missing secret
// key is logged and returned rather than treated as fatal, so each request
// can report it. The options are passed through to stripe.NewClient (tests
// use stripe.WithBackends to point it at a local server).
func InitStripe(cfg *config.Config, opts ...stripe.ClientOption) (*StripeCheckoutService, error) {
	if cfg.StripeSecretKey == "" {
		log.Printf("ERR: Missing %s in the function environment", helpers.STRIPE_SECRET_KEY_ENV)
		return nil, ErrMissingSecretKey
	}
	return NewStripeCheckoutService(stripe.NewClient(cfg.StripeSecretKey, opts...)), nil
}

func NewStripeCheckoutService(client *stripe.Client) *StripeCheckoutService {
	return &StripeCheckoutService{client: client}
}

// NewCheckoutSessionParams maps a validated request onto Stripe's create
// params: card only, one-off payment, promotion codes on.
func NewCheckoutSessionParams(input types.CheckoutSessionInput) *stripe.CheckoutSessionCreateParams {
	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes:  stripe.StringSlice([]string{"card"}),
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:          stripe.String(input.SuccessURL),
		CancelURL:           stripe.String(input.CancelURL),
		AllowPromotionCodes: stripe.Bool(true),
	}
	if input.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(input.CustomerEmail)
	}
	if len(input.Metadata) > 0 {
		params.Metadata = input.Metadata
	}
	for i, item := range input.LineItems {
		EncodeFormValue(fmt.Sprintf("line_items[%d]", i), item, params.AddExtra)
	}
	return params
}

func (s *StripeCheckoutService) CreateCheckoutSession(ctx context.Context, input types.CheckoutSessionInput) (*types.CheckoutSessionResponse, error) {
	session, err := s.client.V1CheckoutSessions.Create(ctx, NewCheckoutSessionParams(input))
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return nil, &ProviderError{Message: stripeErr.Msg, Err: err}
		}
		return nil, err
	}

	return &types.CheckoutSessionResponse{
		ID:       session.ID,
		Livemode: session.Livemode,
	}, nil
}
