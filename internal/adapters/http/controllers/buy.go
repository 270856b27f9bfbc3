package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmaia/sweetshop/internal/adapters/http/handlers"
	"github.com/dmaia/sweetshop/internal/adapters/http/middleware"
	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/service"
	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

type BuyController struct {
	checkoutService *service.CheckoutService
}

func NewBuyController(checkoutService *service.CheckoutService) *BuyController {
	return &BuyController{checkoutService: checkoutService}
}

type CheckoutSessionResponse struct {
	Status  string `json:"status"`
	Session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"session"`
}

// CheckoutSession godoc
// @Summary     Start a checkout session
// @Description Creates a payment session for a single unit of the product and returns the provider redirect URL
// @Tags        buy
// @Produce     json
// @Param       productId path     string true "Product ID"
// @Success     200       {object} CheckoutSessionResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     401       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Failure     502       {object} handlers.ErrorResponse
// @Router      /api/v1/buy/checkout-session/{productId} [get]
func (bc *BuyController) CheckoutSession(c *gin.Context) {
	id := c.Param("productId")
	if !domain.ValidateID(id) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}

	identity, _ := middleware.IdentityFrom(c)
	session, err := bc.checkoutService.CreateSession(c.Request.Context(), domain.ID(id), identity.Email)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := CheckoutSessionResponse{Status: "success"}
	response.Session.ID = session.ID
	response.Session.URL = session.URL
	c.JSON(http.StatusOK, response)
}
