package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	"github.com/gigfolio/console-api/logger"
	"github.com/gigfolio/console-api/stripe/domain"
	"github.com/gigfolio/console-api/stripe/service/mocks"
)

func setPlanPriceEnv(t *testing.T) {
	t.Helper()

	t.Setenv("STRIPE_PRICE_SOLO", "price_solo")
	t.Setenv("STRIPE_PRICE_STUDIO", "price_studio")
	t.Setenv("STRIPE_PRICE_AGENCY", "price_agency")
}

func subscriptionWithPrice(id, priceID string, status stripe.SubscriptionStatus, created int64) *stripe.Subscription {
	return &stripe.Subscription{
		ID:      id,
		Status:  status,
		Created: created,
		Items: &stripe.SubscriptionItemList{
			Data: []*stripe.SubscriptionItem{
				{Price: &stripe.Price{ID: priceID}},
			},
		},
	}
}

func TestBillingService_GetSubscription(t *testing.T) {
	ctx := context.Background()

	type fields struct {
		api *mocks.PaymentsAPI
	}

	email := "owner@example.test"
	customer := &stripe.Customer{ID: "cus_1", Email: email}

	tests := []struct {
		name        string
		email       string
		on          func(*fields)
		want        *domain.Subscription
		wantErr     error
		assertExtra func(*testing.T, *domain.Subscription)
	}{
		{
			name:    "missing email",
			email:   "",
			wantErr: domain.ErrMissingEmail,
		},
		{
			name:  "no customer for email",
			email: email,
			on: func(f *fields) {
				f.api.On("FirstCustomerByEmail", ctx, email).Return(nil, nil)
			},
			want: &domain.Subscription{Exists: false},
		},
		{
			name:  "customer without subscriptions",
			email: email,
			on: func(f *fields) {
				f.api.On("FirstCustomerByEmail", ctx, email).Return(customer, nil)
				f.api.On("SubscriptionsByCustomer", ctx, "cus_1").
					Return([]*stripe.Subscription{}, nil)
			},
			want: &domain.Subscription{Exists: false, CustomerID: "cus_1"},
		},
		{
			name:  "active subscription wins over a newer canceled one",
			email: email,
			on: func(f *fields) {
				f.api.On("FirstCustomerByEmail", ctx, email).Return(customer, nil)
				f.api.On("SubscriptionsByCustomer", ctx, "cus_1").
					Return([]*stripe.Subscription{
						subscriptionWithPrice("sub_new", "price_solo", stripe.SubscriptionStatusCanceled, 200),
						subscriptionWithPrice("sub_old", "price_studio", stripe.SubscriptionStatusActive, 100),
					}, nil)
			},
			assertExtra: func(t *testing.T, got *domain.Subscription) {
				assert.True(t, got.Exists)
				assert.Equal(t, "sub_old", got.SubscriptionID)
				assert.Equal(t, "price_studio", got.PriceID)
				if assert.NotNil(t, got.Plan) {
					assert.Equal(t, domain.PlanStudio, *got.Plan)
				}
			},
		},
		{
			name:  "most recent subscription when none is active",
			email: email,
			on: func(f *fields) {
				f.api.On("FirstCustomerByEmail", ctx, email).Return(customer, nil)
				f.api.On("SubscriptionsByCustomer", ctx, "cus_1").
					Return([]*stripe.Subscription{
						subscriptionWithPrice("sub_old", "price_solo", stripe.SubscriptionStatusCanceled, 100),
						subscriptionWithPrice("sub_new", "price_agency", stripe.SubscriptionStatusIncompleteExpired, 200),
					}, nil)
			},
			assertExtra: func(t *testing.T, got *domain.Subscription) {
				assert.Equal(t, "sub_new", got.SubscriptionID)
			},
		},
		{
			name:  "unknown price reports no plan",
			email: email,
			on: func(f *fields) {
				f.api.On("FirstCustomerByEmail", ctx, email).Return(customer, nil)
				f.api.On("SubscriptionsByCustomer", ctx, "cus_1").
					Return([]*stripe.Subscription{
						subscriptionWithPrice("sub_1", "price_legacy", stripe.SubscriptionStatusActive, 100),
					}, nil)
			},
			assertExtra: func(t *testing.T, got *domain.Subscription) {
				assert.True(t, got.Exists)
				assert.Nil(t, got.Plan)
				assert.Equal(t, "price_legacy", got.PriceID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setPlanPriceEnv(t)

			f := fields{
				api: &mocks.PaymentsAPI{},
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := &BillingService{
				loggerProvider: logger.FromContext,
				api:            f.api,
			}

			got, err := s.GetSubscription(ctx, tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)

			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}

			if tt.assertExtra != nil {
				tt.assertExtra(t, got)
			}
		})
	}
}

func TestBillingService_CreateCheckoutSession(t *testing.T) {
	ctx := context.Background()

	t.Run("missing plan", func(t *testing.T) {
		s := &BillingService{
			loggerProvider: logger.FromContext,
			api:            &mocks.PaymentsAPI{},
		}

		_, err := s.CreateCheckoutSession(ctx, "", "owner@example.test")
		assert.ErrorIs(t, err, domain.ErrMissingPlan)
	})

	t.Run("unknown plan slug fails before any API call", func(t *testing.T) {
		setPlanPriceEnv(t)

		api := mocks.NewPaymentsAPI(t)

		s := &BillingService{
			loggerProvider: logger.FromContext,
			api:            api,
		}

		_, err := s.CreateCheckoutSession(ctx, "enterprise", "owner@example.test")
		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	})

	t.Run("subscription checkout with trial", func(t *testing.T) {
		setPlanPriceEnv(t)
		t.Setenv("APP_BASE_URL", "https://app.example.test")

		api := &mocks.PaymentsAPI{}
		api.On("NewCheckoutSession", ctx, mock.MatchedBy(func(params *stripe.CheckoutSessionParams) bool {
			return *params.Mode == string(stripe.CheckoutSessionModeSubscription) &&
				len(params.LineItems) == 1 &&
				*params.LineItems[0].Price == "price_studio" &&
				*params.SubscriptionData.TrialPeriodDays == int64(30) &&
				*params.SuccessURL == "https://app.example.test/billing/success?session_id={CHECKOUT_SESSION_ID}" &&
				*params.CustomerEmail == "owner@example.test"
		})).Return(&stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1"}, nil)

		s := &BillingService{
			loggerProvider: logger.FromContext,
			api:            api,
		}

		session, err := s.CreateCheckoutSession(ctx, domain.PlanStudio, "owner@example.test")
		assert.NoError(t, err)
		assert.Equal(t, &domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1"}, session)
	})

	t.Run("stripe error is passed through", func(t *testing.T) {
		setPlanPriceEnv(t)

		stripeErr := errors.New("stripe unavailable")

		api := &mocks.PaymentsAPI{}
		api.On("NewCheckoutSession", ctx, mock.Anything).Return(nil, stripeErr)

		s := &BillingService{
			loggerProvider: logger.FromContext,
			api:            api,
		}

		_, err := s.CreateCheckoutSession(ctx, domain.PlanSolo, "")
		assert.ErrorIs(t, err, stripeErr)
	})
}

func TestBillingService_CreatePortalSession(t *testing.T) {
	ctx := context.Background()

	t.Run("neither customer id nor email", func(t *testing.T) {
		s := &BillingService{
			loggerProvider: logger.FromContext,
			api:            &mocks.PaymentsAPI{},
		}

		_, err := s.CreatePortalSession(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrMissingCustomer)
	})

	t.Run("email resolves to no customer", func(t *testing.T) {
		api := &mocks.PaymentsAPI{}
		api.On("FirstCustomerByEmail", ctx, "ghost@example.test").Return(nil, nil)

		s := &BillingService{
			loggerProvider: logger.FromContext,
			api:            api,
		}

		_, err := s.CreatePortalSession(ctx, "", "ghost@example.test")
		assert.ErrorIs(t, err, domain.ErrMissingCustomer)
	})

	t.Run("portal session for explicit customer id", func(t *testing.T) {
		api := &mocks.PaymentsAPI{}
		api.On("NewPortalSession", ctx, mock.MatchedBy(func(params *stripe.BillingPortalSessionParams) bool {
			return *params.Customer == "cus_1"
		})).Return(&stripe.BillingPortalSession{URL: "https://billing.stripe.com/p/session"}, nil)

		s := &BillingService{
			loggerProvider: logger.FromContext,
			api:            api,
		}

		url, err := s.CreatePortalSession(ctx, "cus_1", "")
		assert.NoError(t, err)
		assert.Equal(t, "https://billing.stripe.com/p/session", url)
	})
}
