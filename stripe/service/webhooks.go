package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/stripe/domain"
)

const webhookSecretEnv = "STRIPE_WEBHOOK_SECRET"

// HandleWebhookEvent verifies the payload against the configured signing
// secret and dispatches the event by type. Billing state lives in Stripe,
// so the per-type handlers only acknowledge the events for now.
func (s *BillingService) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	l := s.loggerProvider(ctx)

	secret := common.GetEnv(webhookSecretEnv, "")
	if signature == "" || secret == "" {
		return domain.ErrMissingSignature
	}

	event, err := webhook.ConstructEvent(payload, signature, secret)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSignature, err)
	}

	l.SetLabel("eventType", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		l.Infof("checkout session %s completed for customer %s", session.ID, customerID(session.Customer))

		return nil
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return err
		}

		l.Infof("subscription %s is now %s", subscription.ID, subscription.Status)

		return nil
	case "invoice.paid", "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		l.Infof("invoice %s: %s", invoice.ID, event.Type)

		return nil
	default:
		l.Infof("unhandled event type: %s", event.Type)

		return nil
	}
}

func customerID(customer *stripe.Customer) string {
	if customer == nil {
		return ""
	}

	return customer.ID
}
