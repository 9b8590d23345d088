package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/stripe/domain"
)

const secretKeyEnv = "STRIPE_SECRET_KEY"

// Client adapts the Stripe SDK to the PaymentsAPI surface.
type Client struct {
	api *client.API
}

func NewClient() (*Client, error) {
	secretKey := common.GetEnv(secretKeyEnv, "")
	if secretKey == "" {
		return nil, domain.ErrNotConfigured
	}

	var api client.API

	api.Init(secretKey, nil)

	return &Client{
		api: &api,
	}, nil
}

// FirstCustomerByEmail returns the first customer matching the exact
// email, or nil when none exists.
func (c *Client) FirstCustomerByEmail(ctx context.Context, email string) (*stripe.Customer, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := c.api.Customers.List(params)
	for iter.Next() {
		return iter.Customer(), nil
	}

	return nil, iter.Err()
}

// SubscriptionsByCustomer returns all of the customer's subscriptions
// regardless of status.
func (c *Client) SubscriptionsByCustomer(ctx context.Context, customerID string) ([]*stripe.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Context = ctx

	subscriptions := make([]*stripe.Subscription, 0)

	iter := c.api.Subscriptions.List(params)
	for iter.Next() {
		subscriptions = append(subscriptions, iter.Subscription())
	}

	return subscriptions, iter.Err()
}

func (c *Client) NewCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx

	return c.api.CheckoutSessions.New(params)
}

func (c *Client) NewPortalSession(ctx context.Context, params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error) {
	params.Context = ctx

	return c.api.BillingPortalSessions.New(params)
}
