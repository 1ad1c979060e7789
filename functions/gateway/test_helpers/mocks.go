package test_helpers

import (
	"context"
	"sync"

	"github.com/meetnearme/stripe-checkout/functions/gateway/types"
)

// MockCheckoutService satisfies interfaces.CheckoutServiceInterface and
// records every input it was called with.
type MockCheckoutService struct {
	CreateCheckoutSessionFunc func(ctx context.Context, input types.CheckoutSessionInput) (*types.CheckoutSessionResponse, error)

	mu    sync.Mutex
	calls []types.CheckoutSessionInput
}

func (m *MockCheckoutService) CreateCheckoutSession(ctx context.Context, input types.CheckoutSessionInput) (*types.CheckoutSessionResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, input)
	}
	return &types.CheckoutSessionResponse{ID: "cs_test_mock", Livemode: false}, nil
}

func (m *MockCheckoutService) Calls() []types.CheckoutSessionInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.CheckoutSessionInput(nil), m.calls...)
}
