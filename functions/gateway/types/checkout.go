package types

// CheckoutRequest is the body accepted by the create-checkout-session
// function. Line items are opaque: each object is forwarded to Stripe as-is.
type CheckoutRequest struct {
	LineItems     []map[string]interface{} `json:"lineItems" validate:"required,min=1,dive,required"`
	CustomerEmail string                   `json:"customerEmail,omitempty"`
	Metadata      map[string]string        `json:"metadata,omitempty"`
}

type CheckoutSessionInput struct {
	LineItems     []map[string]interface{}
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

type CheckoutSessionResponse struct {
	ID       string `json:"id"`
	Livemode bool   `json:"livemode"`
}

type PublishableKeyResponse struct {
	PublishableKey string `json:"publishableKey"`
}
