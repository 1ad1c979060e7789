package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/helpers"
	"github.com/meetnearme/stripe-checkout/functions/gateway/interfaces"
	"github.com/meetnearme/stripe-checkout/functions/gateway/transport"
	"github.com/meetnearme/stripe-checkout/functions/gateway/types"
)

const (
	ERR_LINE_ITEMS           = "lineItems must be a non-empty array"
	ERR_INVALID_JSON         = "Invalid JSON"
	ERR_INVALID_CHECKOUT     = "Invalid checkout request"
	ERR_STRIPE_NOT_INIT      = "Stripe not initialized. Add " + helpers.STRIPE_SECRET_KEY_ENV + " to the function environment"
	ERR_CHECKOUT_NOT_CREATED = "Failed to create checkout session"
)

var validate *validator.Validate = validator.New()

type CheckoutHandler struct {
	cfg             *config.Config
	checkoutService interfaces.CheckoutServiceInterface
	initErr         error
}

// NewCheckoutHandler takes the outcome of services.InitStripe as-is. When
// initErr is set every POST answers 500 instead of reaching Stripe.
func NewCheckoutHandler(cfg *config.Config, checkoutService interfaces.CheckoutServiceInterface, initErr error) *CheckoutHandler {
	return &CheckoutHandler{
		cfg:             cfg,
		checkoutService: checkoutService,
		initErr:         initErr,
	}
}

func (h *CheckoutHandler) Handle(ctx context.Context, req transport.Request) (transport.Response, error) {
	switch req.RequestContext.HTTP.Method {
	case http.MethodOptions:
		return transport.PreflightResponse(h.cfg.PreflightOrigin()), nil
	case http.MethodPost:
	default:
		return transport.SendError(transport.NewMethodError(), ""), nil
	}

	if h.initErr != nil || h.checkoutService == nil {
		return transport.SendError(transport.NewConfigurationError(ERR_STRIPE_NOT_INIT), ""), nil
	}

	body, err := transport.RequestBody(req)
	if err != nil {
		return transport.SendError(transport.NewValidationError(ERR_INVALID_JSON, err), ""), nil
	}

	checkoutReq, err := parseCheckoutRequest(body)
	if err != nil {
		return transport.SendError(err, ""), nil
	}

	siteURL := h.cfg.CheckoutSiteURL(helpers.HeaderValue(req.Headers, helpers.ORIGIN_HEADER))

	session, err := h.checkoutService.CreateCheckoutSession(ctx, types.CheckoutSessionInput{
		LineItems:     checkoutReq.LineItems,
		CustomerEmail: checkoutReq.CustomerEmail,
		Metadata:      checkoutReq.Metadata,
		SuccessURL:    siteURL + helpers.CHECKOUT_SUCCESS_QUERY,
		CancelURL:     siteURL + helpers.CHECKOUT_CANCEL_QUERY,
	})
	if err != nil {
		return transport.SendError(transport.NewDependencyError(ERR_CHECKOUT_NOT_CREATED, err), ""), nil
	}

	log.Printf("Created checkout session: %s", session.ID)
	return transport.JSONResponse(http.StatusOK, session, siteURL), nil
}

type checkoutEnvelope struct {
	LineItems     json.RawMessage   `json:"lineItems"`
	CustomerEmail string            `json:"customerEmail"`
	Metadata      map[string]string `json:"metadata"`
}

// parseCheckoutRequest separates malformed JSON from a well-formed body with
// the wrong shape; both come back as validation errors. Line items are decoded
// with UseNumber so amounts reach Stripe exactly as the caller wrote them.
func parseCheckoutRequest(body []byte) (*types.CheckoutRequest, error) {
	var envelope checkoutEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, transport.NewValidationError(ERR_INVALID_JSON, err)
		}
		// a JSON array or scalar has no lineItems at all
		if typeErr.Field == "" {
			return nil, transport.NewValidationError(ERR_LINE_ITEMS, nil)
		}
		return nil, transport.NewValidationError(ERR_INVALID_CHECKOUT, err)
	}

	checkoutReq := &types.CheckoutRequest{
		CustomerEmail: envelope.CustomerEmail,
		Metadata:      envelope.Metadata,
	}
	if len(envelope.LineItems) > 0 {
		dec := json.NewDecoder(bytes.NewReader(envelope.LineItems))
		dec.UseNumber()
		if err := dec.Decode(&checkoutReq.LineItems); err != nil {
			return nil, transport.NewValidationError(ERR_LINE_ITEMS, nil)
		}
	}

	if err := validate.Struct(checkoutReq); err != nil {
		return nil, transport.NewValidationError(ERR_LINE_ITEMS, nil)
	}
	return checkoutReq, nil
}
