package contract

import "context"

// PaymentStatusPaid is the provider's terminal status for a settled
// checkout session.
const PaymentStatusPaid = "paid"

// CheckoutSession is the slice of the provider's session object the
// payment flow needs.
type CheckoutSession struct {
	ID            string
	URL           string
	TransactionID string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// CreateCheckoutParams carries the purchase request into the provider.
type CreateCheckoutParams struct {
	Cost     int64
	Email    string
	UserID   string
	UserName string
}

// ICheckoutProvider owns the hosted checkout lifecycle. The platform only
// creates sessions and reads back their terminal state.
type ICheckoutProvider interface {
	CreateSession(ctx context.Context, params CreateCheckoutParams) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
