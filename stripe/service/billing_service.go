package service

import (
	"context"
	"sort"
	"sync"

	"github.com/stripe/stripe-go/v74"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/logger"
	"github.com/gigfolio/console-api/stripe/domain"
	"github.com/gigfolio/console-api/stripe/service/iface"
)

const appBaseURLEnv = "APP_BASE_URL"

const trialPeriodDays = 30

type BillingService struct {
	loggerProvider logger.Provider
	api            iface.PaymentsAPI

	apiOnce sync.Once
	apiErr  error
}

func NewBillingService(log logger.Provider) *BillingService {
	return &BillingService{
		loggerProvider: log,
	}
}

// getAPI resolves the Stripe client lazily so that a deployment without
// billing only fails when a billing endpoint is hit.
func (s *BillingService) getAPI() (iface.PaymentsAPI, error) {
	s.apiOnce.Do(func() {
		if s.api != nil {
			return
		}

		client, err := NewClient()
		if err != nil {
			s.apiErr = err
			return
		}

		s.api = client
	})

	return s.api, s.apiErr
}

// GetSubscription reports the billing state for the given email. The
// first customer matching the email exactly is used; among their
// subscriptions an active or trialing one wins regardless of age,
// otherwise the most recent one is reported.
func (s *BillingService) GetSubscription(ctx context.Context, email string) (*domain.Subscription, error) {
	if email == "" {
		return nil, domain.ErrMissingEmail
	}

	api, err := s.getAPI()
	if err != nil {
		return nil, err
	}

	customer, err := api.FirstCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return &domain.Subscription{Exists: false}, nil
	}

	subscriptions, err := api.SubscriptionsByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	if len(subscriptions) == 0 {
		return &domain.Subscription{Exists: false, CustomerID: customer.ID}, nil
	}

	subscription := pickSubscription(subscriptions)

	var priceID string
	if subscription.Items != nil && len(subscription.Items.Data) > 0 && subscription.Items.Data[0].Price != nil {
		priceID = subscription.Items.Data[0].Price.ID
	}

	return &domain.Subscription{
		Exists:         true,
		Plan:           domain.PlanForPrice(domain.PlanPrices(), priceID),
		Status:         string(subscription.Status),
		CustomerID:     customer.ID,
		SubscriptionID: subscription.ID,
		PriceID:        priceID,
	}, nil
}

func pickSubscription(subscriptions []*stripe.Subscription) *stripe.Subscription {
	sorted := make([]*stripe.Subscription, len(subscriptions))
	copy(sorted, subscriptions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Created > sorted[j].Created
	})

	for _, subscription := range sorted {
		if subscription.Status == stripe.SubscriptionStatusActive ||
			subscription.Status == stripe.SubscriptionStatusTrialing {
			return subscription
		}
	}

	return sorted[0]
}

// CreateCheckoutSession starts a subscription checkout for the given
// plan. The plan slug is validated against the configured price table
// before any Stripe call is made.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, plan, email string) (*domain.CheckoutSession, error) {
	if plan == "" {
		return nil, domain.ErrMissingPlan
	}

	priceID, ok := domain.PlanPrices()[plan]
	if !ok {
		return nil, domain.ErrInvalidPlan
	}

	api, err := s.getAPI()
	if err != nil {
		return nil, err
	}

	appBaseURL := common.GetEnv(appBaseURLEnv, "")

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(trialPeriodDays),
		},
		SuccessURL: stripe.String(appBaseURL + "/billing/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(appBaseURL + "/pricing"),
	}

	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	session, err := api.NewCheckoutSession(ctx, params)
	if err != nil {
		return nil, err
	}

	return &domain.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// CreatePortalSession opens a billing portal session, resolving the
// customer from the email when no customer id is given.
func (s *BillingService) CreatePortalSession(ctx context.Context, customerID, email string) (string, error) {
	if customerID == "" && email == "" {
		return "", domain.ErrMissingCustomer
	}

	api, err := s.getAPI()
	if err != nil {
		return "", err
	}

	if customerID == "" {
		customer, err := api.FirstCustomerByEmail(ctx, email)
		if err != nil {
			return "", err
		}

		if customer == nil {
			return "", domain.ErrMissingCustomer
		}

		customerID = customer.ID
	}

	session, err := api.NewPortalSession(ctx, &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(common.GetEnv(appBaseURLEnv, "") + "/account"),
	})
	if err != nil {
		return "", err
	}

	return session.URL, nil
}
