package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
	"github.com/gigfolio/console-api/stripe/domain"
	"github.com/gigfolio/console-api/stripe/service"
	"github.com/gigfolio/console-api/stripe/service/iface"
)

type Billing struct {
	loggerProvider logger.Provider
	service        iface.BillingService
}

func NewBilling(log logger.Provider) *Billing {
	return &Billing{
		loggerProvider: log,
		service:        service.NewBillingService(log),
	}
}

type CheckoutSessionRequest struct {
	Plan  string `json:"plan"`
	Email string `json:"email"`
}

func (h *Billing) CreateCheckoutSession(ctx *gin.Context) error {
	var body CheckoutSessionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	session, err := h.service.CreateCheckoutSession(ctx, body.Plan, body.Email)
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

type PortalSessionRequest struct {
	CustomerID string `json:"customerId"`
	Email      string `json:"email"`
}

func (h *Billing) CreatePortalSession(ctx *gin.Context) error {
	var body PortalSessionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	url, err := h.service.CreatePortalSession(ctx, body.CustomerID, body.Email)
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, map[string]string{"url": url}, http.StatusOK)
}

type SubscriptionRequest struct {
	Email string `json:"email"`
}

func (h *Billing) GetSubscription(ctx *gin.Context) error {
	var body SubscriptionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	subscription, err := h.service.GetSubscription(ctx, body.Email)
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, subscription, http.StatusOK)
}

// Webhook receives Stripe event notifications. The raw body is read
// unparsed, signature verification covers the exact bytes Stripe sent.
func (h *Billing) Webhook(ctx *gin.Context) error {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	signature := ctx.GetHeader("Stripe-Signature")

	if err := h.service.HandleWebhookEvent(ctx, payload, signature); err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, map[string]bool{"received": true}, http.StatusOK)
}

func translateBillingError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingPlan),
		errors.Is(err, domain.ErrInvalidPlan),
		errors.Is(err, domain.ErrMissingEmail),
		errors.Is(err, domain.ErrMissingCustomer),
		errors.Is(err, domain.ErrMissingSignature),
		errors.Is(err, domain.ErrInvalidSignature):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
