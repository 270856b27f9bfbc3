package stripe

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/dmaia/sweetshop/internal/adapters/config"
	"github.com/dmaia/sweetshop/internal/core/port"
	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

// Adapter implements the payment boundary against Stripe Checkout.
type Adapter struct {
	api     *client.API
	timeout time.Duration
}

func NewAdapter(cfg config.StripeConfig) port.PaymentPort {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &Adapter{api: api, timeout: cfg.Timeout}
}

func (a *Adapter) CreateCheckoutSession(ctx context.Context, request port.CheckoutRequest) (*port.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Params:            stripe.Params{Context: ctx},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(request.SuccessURL),
		CancelURL:         stripe.String(request.CancelURL),
		CustomerEmail:     stripe.String(request.CustomerEmail),
		ClientReferenceID: stripe.String(request.ClientReferenceID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(request.Quantity),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(request.Currency),
					UnitAmount: stripe.Int64(request.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(request.ItemName),
						Description: stripe.String(request.ItemDescription),
					},
				},
			},
		},
	}

	session, err := a.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, serviceerrors.NewUpstreamError("payment provider rejected the checkout session: " + err.Error())
	}

	return &port.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
