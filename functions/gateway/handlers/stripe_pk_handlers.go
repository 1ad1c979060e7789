package handlers

import (
	"context"
	"net/http"

	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/transport"
	"github.com/meetnearme/stripe-checkout/functions/gateway/types"
)

const ERR_PK_NOT_CONFIGURED = "Publishable key not configured on server"

// PublishableKeyHandler hands the browser the key it needs for Stripe.js.
// It answers every method the same way.
type PublishableKeyHandler struct {
	cfg *config.Config
}

func NewPublishableKeyHandler(cfg *config.Config) *PublishableKeyHandler {
	return &PublishableKeyHandler{cfg: cfg}
}

func (h *PublishableKeyHandler) Handle(ctx context.Context, req transport.Request) (transport.Response, error) {
	origin := h.cfg.PublishableKeyOrigin()
	if h.cfg.StripePublishableKey == "" {
		return transport.SendError(transport.NewConfigurationError(ERR_PK_NOT_CONFIGURED), origin), nil
	}
	return transport.JSONResponse(http.StatusOK, types.PublishableKeyResponse{
		PublishableKey: h.cfg.StripePublishableKey,
	}, origin), nil
}
