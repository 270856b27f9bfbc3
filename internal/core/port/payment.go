package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CheckoutRequest is the narrow contract with the payment provider: a
// single line item plus the redirect targets and customer identity.
type CheckoutRequest struct {
	CustomerEmail     string
	ClientReferenceID string
	SuccessURL        string
	CancelURL         string
	ItemName          string
	ItemDescription   string
	UnitAmount        int64 // minor currency units
	Currency          string
	Quantity          int64
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PaymentPort interface {
	CreateCheckoutSession(ctx context.Context, request CheckoutRequest) (*CheckoutSession, error)
}
