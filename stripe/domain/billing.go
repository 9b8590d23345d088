package domain

import (
	"github.com/gigfolio/console-api/common"
)

// Plan slugs as the web app knows them.
const (
	PlanSolo   = "solo"
	PlanStudio = "studio"
	PlanAgency = "agency"
)

const (
	priceSoloEnv   = "STRIPE_PRICE_SOLO"
	priceStudioEnv = "STRIPE_PRICE_STUDIO"
	priceAgencyEnv = "STRIPE_PRICE_AGENCY"
)

// PlanPrices maps plan slugs to the Stripe price ids configured for this
// deployment. Plans without a configured price are absent.
func PlanPrices() map[string]string {
	prices := make(map[string]string)

	for plan, env := range map[string]string{
		PlanSolo:   priceSoloEnv,
		PlanStudio: priceStudioEnv,
		PlanAgency: priceAgencyEnv,
	} {
		if priceID := common.GetEnv(env, ""); priceID != "" {
			prices[plan] = priceID
		}
	}

	return prices
}

// PlanForPrice resolves a Stripe price id back to a plan slug. Prices
// created outside the configured table resolve to nil, the caller
// reports those subscriptions without a plan.
func PlanForPrice(prices map[string]string, priceID string) *string {
	for plan, id := range prices {
		if id == priceID {
			return &plan
		}
	}

	return nil
}

// Subscription is the billing state reported to the web app.
type Subscription struct {
	Exists         bool    `json:"exists"`
	Plan           *string `json:"plan"`
	Status         string  `json:"status,omitempty"`
	CustomerID     string  `json:"customerId,omitempty"`
	SubscriptionID string  `json:"subscriptionId,omitempty"`
	PriceID        string  `json:"priceId,omitempty"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
