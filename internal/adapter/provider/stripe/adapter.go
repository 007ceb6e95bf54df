// Package stripe adapts the pluggable ProviderAdapter port onto the
// Stripe PaymentIntents API. With no secret key configured it falls back
// to a deterministic mock mode for local development and tests.
package stripe

import (
	"context"
	"fmt"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Adapter implements ports.ProviderAdapter via Stripe PaymentIntents.
// Provider-side idempotency is keyed by tx.ReferenceID.
type Adapter struct {
	mockMode bool
}

// NewAdapter configures the Stripe SDK's package-level API key. An empty
// secretKey runs the adapter in mock mode: no network call is made and
// charges always succeed, for local development and tests.
func NewAdapter(secretKey string) *Adapter {
	if secretKey == "" {
		return &Adapter{mockMode: true}
	}
	stripe.Key = secretKey
	return &Adapter{mockMode: false}
}

// Charge creates (or mocks) a Stripe PaymentIntent for tx and reports a
// ChargeResult. It never returns a transport error for a card decline;
// declines surface as ChargeResult{OK:false}, while only unreachable
// infrastructure returns a Go error.
func (a *Adapter) Charge(ctx context.Context, tx *domain.Transaction) (*ports.ChargeResult, error) {
	if a.mockMode {
		return &ports.ChargeResult{
			OK:           true,
			ProviderRef:  "pi_mock_" + tx.ReferenceID,
			ClientSecret: "pi_mock_" + tx.ReferenceID + "_secret",
		}, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(tx.Amount)),
		Currency: stripe.String(tx.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Confirm: stripe.Bool(true),
	}
	params.SetIdempotencyKey(tx.ReferenceID)
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return &ports.ChargeResult{
				OK:      false,
				Code:    string(stripeErr.Code),
				Message: stripeErr.Msg,
			}, nil
		}
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return &ports.ChargeResult{
			OK:      false,
			Code:    "DECLINED",
			Message: fmt.Sprintf("payment intent status %s", pi.Status),
		}, nil
	}

	return &ports.ChargeResult{
		OK:           true,
		ProviderRef:  pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// toMinorUnits converts a decimal major-unit amount to the smallest
// currency unit Stripe expects (cents for USD-like currencies).
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
