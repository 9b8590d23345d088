package iface

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/gigfolio/console-api/stripe/domain"
)

// PaymentsAPI is the slice of the Stripe API the billing service uses.
//
//go:generate mockery --name PaymentsAPI --output ../mocks
type PaymentsAPI interface {
	FirstCustomerByEmail(ctx context.Context, email string) (*stripe.Customer, error)
	SubscriptionsByCustomer(ctx context.Context, customerID string) ([]*stripe.Subscription, error)
	NewCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	NewPortalSession(ctx context.Context, params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error)
}

//go:generate mockery --name BillingService --output ../mocks
type BillingService interface {
	GetSubscription(ctx context.Context, email string) (*domain.Subscription, error)
	CreateCheckoutSession(ctx context.Context, plan, email string) (*domain.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, email string) (string, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
}
