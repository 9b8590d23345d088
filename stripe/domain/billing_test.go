package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanPrices(t *testing.T) {
	t.Setenv("STRIPE_PRICE_SOLO", "price_solo")
	t.Setenv("STRIPE_PRICE_STUDIO", "price_studio")
	t.Setenv("STRIPE_PRICE_AGENCY", "")

	prices := PlanPrices()

	assert.Equal(t, map[string]string{
		PlanSolo:   "price_solo",
		PlanStudio: "price_studio",
	}, prices)
}

func TestPlanForPrice(t *testing.T) {
	prices := map[string]string{
		PlanSolo:   "price_solo",
		PlanStudio: "price_studio",
	}

	plan := PlanForPrice(prices, "price_studio")
	if assert.NotNil(t, plan) {
		assert.Equal(t, PlanStudio, *plan)
	}

	assert.Nil(t, PlanForPrice(prices, "price_legacy"))
}
