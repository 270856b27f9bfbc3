package service

import (
	"context"
	"fmt"
	"math"

	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/logger"
	"github.com/dmaia/sweetshop/internal/core/port"
)

type CheckoutService struct {
	products  port.ProductPort
	payments  port.PaymentPort
	currency  string
	publicURL string
}

func NewCheckoutService(products port.ProductPort, payments port.PaymentPort, currency, publicURL string) *CheckoutService {
	return &CheckoutService{
		products:  products,
		payments:  payments,
		currency:  currency,
		publicURL: publicURL,
	}
}

// CreateSession builds a single-line-item checkout for the product and
// hands it to the payment provider. The provider's session handle is
// returned verbatim.
func (s *CheckoutService) CreateSession(ctx context.Context, productID domain.ID, customerEmail string) (*port.CheckoutSession, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	request := port.CheckoutRequest{
		CustomerEmail:     customerEmail,
		ClientReferenceID: string(productID),
		SuccessURL:        s.publicURL + "/",
		CancelURL:         fmt.Sprintf("%s/product/%s", s.publicURL, product.Slug),
		ItemName:          product.Name + " Product",
		ItemDescription:   product.Description,
		UnitAmount:        int64(math.Round(product.Price * 100)),
		Currency:          s.currency,
		Quantity:          1,
	}

	session, err := s.payments.CreateCheckoutSession(ctx, request)
	if err != nil {
		logger.Error(ctx, "checkout: session creation failed", err, map[string]any{
			"product_id": productID,
		})
		return nil, err
	}

	logger.Info(ctx, "Checkout session created", map[string]any{
		"product_id": productID,
		"session_id": session.ID,
	})
	return session, nil
}
