package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"github.com/skn143/lifelessons/internal/domain/contract"
)

// StripeCheckout implements contract.ICheckoutProvider on top of Stripe
// hosted checkout. The platform never touches payment-intent lifecycle
// directly; it creates sessions and reads back their terminal state.
type StripeCheckout struct {
	currency   string
	siteDomain string
}

// NewStripeCheckout sets the API key for the default Stripe client and
// returns the adapter. Currency and redirect domain are fixed per deploy.
func NewStripeCheckout(secretKey, currency, siteDomain string) *StripeCheckout {
	stripe.Key = secretKey
	return &StripeCheckout{
		currency:   currency,
		siteDomain: siteDomain,
	}
}

// CreateSession opens a hosted checkout session for a single
// "Premium Membership" line item, embedding the purchasing user's id and
// name as metadata for later correlation.
func (p *StripeCheckout) CreateSession(ctx context.Context, in contract.CreateCheckoutParams) (*contract.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.currency),
					UnitAmount: stripe.Int64(in.Cost),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Premium Membership"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(in.Email),
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(p.siteDomain + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(p.siteDomain + "/payment-cancelled"),
	}
	params.AddMetadata("userId", in.UserID)
	params.AddMetadata("userName", in.UserName)

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return toCheckoutSession(s), nil
}

// RetrieveSession fetches a session by id.
func (p *StripeCheckout) RetrieveSession(ctx context.Context, sessionID string) (*contract.CheckoutSession, error) {
	s, err := session.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session %s: %w", sessionID, err)
	}
	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripe.CheckoutSession) *contract.CheckoutSession {
	out := &contract.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.TransactionID = s.PaymentIntent.ID
	}
	return out
}
