package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/gigfolio/console-api/logger"
	"github.com/gigfolio/console-api/stripe/domain"
)

const testWebhookSecret = "whsec_test"

func signPayload(payload []byte) string {
	now := time.Now()
	signature := webhook.ComputeSignature(now, payload, testWebhookSecret)

	return fmt.Sprintf("t=%d,v1=%x", now.Unix(), signature)
}

func eventPayload(eventType string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","object":"event","api_version":%q,"type":%q,"data":{"object":{"id":"obj_1"}}}`,
		stripe.APIVersion, eventType,
	))
}

func TestBillingService_HandleWebhookEvent(t *testing.T) {
	ctx := context.Background()

	s := &BillingService{
		loggerProvider: logger.FromContext,
	}

	t.Run("missing signature header", func(t *testing.T) {
		t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

		err := s.HandleWebhookEvent(ctx, eventPayload("invoice.paid"), "")
		assert.ErrorIs(t, err, domain.ErrMissingSignature)
	})

	t.Run("unconfigured signing secret", func(t *testing.T) {
		t.Setenv("STRIPE_WEBHOOK_SECRET", "")

		payload := eventPayload("invoice.paid")

		err := s.HandleWebhookEvent(ctx, payload, signPayload(payload))
		assert.ErrorIs(t, err, domain.ErrMissingSignature)
	})

	t.Run("bad signature", func(t *testing.T) {
		t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

		err := s.HandleWebhookEvent(ctx, eventPayload("invoice.paid"), "t=1,v1=deadbeef")
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("verified events are acknowledged", func(t *testing.T) {
		t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

		for _, eventType := range []string{
			"checkout.session.completed",
			"customer.subscription.updated",
			"customer.subscription.deleted",
			"invoice.paid",
			"invoice.payment_failed",
			"charge.refunded",
		} {
			payload := eventPayload(eventType)

			err := s.HandleWebhookEvent(ctx, payload, signPayload(payload))
			assert.NoError(t, err, eventType)
		}
	})
}
