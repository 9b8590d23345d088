package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
	"github.com/gigfolio/console-api/stripe/domain"
	"github.com/gigfolio/console-api/stripe/service/mocks"
)

type billingFields struct {
	loggerProvider logger.Provider
	service        *mocks.BillingService
}

func GetBillingContext() *gin.Context {
	request := httptest.NewRequest(http.MethodPost, "http://example.com/foo", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func TestBilling_CreateCheckoutSession(t *testing.T) {
	ctx := GetBillingContext()

	type args struct {
		ctx *gin.Context
	}

	validRequest, err := json.Marshal(map[string]interface{}{
		"plan":  "studio",
		"email": "owner@example.test",
	})
	if err != nil {
		t.Fatal(err)
	}

	unknownPlanRequest, err := json.Marshal(map[string]interface{}{
		"plan": "enterprise",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         args
		fields       billingFields
		on           func(*billingFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		requestBody  io.ReadCloser
	}{
		{
			name: "Success - checkout session created",
			args: args{
				ctx: ctx,
			},
			requestBody: io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:     false,
			on: func(f *billingFields) {
				f.service.On("CreateCheckoutSession", ctx, "studio", "owner@example.test").
					Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1"}, nil)
			},
		},
		{
			name: "Error - unknown plan",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(unknownPlanRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidPlan,
			expectedCode: 400,
			on: func(f *billingFields) {
				f.service.On("CreateCheckoutSession", ctx, "enterprise", "").
					Return(nil, domain.ErrInvalidPlan)
			},
		},
		{
			name: "Error - stripe failure",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:      true,
			expectedErr:  errors.New("stripe unavailable"),
			expectedCode: 500,
			on: func(f *billingFields) {
				f.service.On("CreateCheckoutSession", ctx, "studio", "owner@example.test").
					Return(nil, errors.New("stripe unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = billingFields{
				logger.FromContext,
				&mocks.BillingService{},
			}
			h := &Billing{
				loggerProvider: tt.fields.loggerProvider,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody

			respond := h.CreateCheckoutSession(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("CreateCheckoutSession() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestBilling_GetSubscription(t *testing.T) {
	ctx := GetBillingContext()

	validRequest, err := json.Marshal(map[string]interface{}{
		"email": "owner@example.test",
	})
	if err != nil {
		t.Fatal(err)
	}

	emptyRequest, err := json.Marshal(map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Success - subscription reported", func(t *testing.T) {
		service := &mocks.BillingService{}
		service.On("GetSubscription", ctx, "owner@example.test").
			Return(&domain.Subscription{Exists: true, Status: "active"}, nil)

		h := &Billing{loggerProvider: logger.FromContext, service: service}

		ctx.Request.Body = io.NopCloser(bytes.NewReader(validRequest))

		assert.NoError(t, h.GetSubscription(ctx))
	})

	t.Run("Error - missing email", func(t *testing.T) {
		service := &mocks.BillingService{}
		service.On("GetSubscription", ctx, "").Return(nil, domain.ErrMissingEmail)

		h := &Billing{loggerProvider: logger.FromContext, service: service}

		ctx.Request.Body = io.NopCloser(bytes.NewReader(emptyRequest))

		respond := h.GetSubscription(ctx)
		assert.Equal(t, web.NewRequestError(domain.ErrMissingEmail, 400), respond)
	})
}

func TestBilling_CreatePortalSession(t *testing.T) {
	ctx := GetBillingContext()

	noCustomerRequest, err := json.Marshal(map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Error - neither customer id nor email", func(t *testing.T) {
		service := &mocks.BillingService{}
		service.On("CreatePortalSession", ctx, "", "").Return("", domain.ErrMissingCustomer)

		h := &Billing{loggerProvider: logger.FromContext, service: service}

		ctx.Request.Body = io.NopCloser(bytes.NewReader(noCustomerRequest))

		respond := h.CreatePortalSession(ctx)
		assert.Equal(t, web.NewRequestError(domain.ErrMissingCustomer, 400), respond)
	})
}

func TestBilling_Webhook(t *testing.T) {
	ctx := GetBillingContext()

	payload := []byte(`{"id":"evt_1","type":"invoice.paid"}`)

	t.Run("Success - event acknowledged", func(t *testing.T) {
		service := &mocks.BillingService{}
		service.On("HandleWebhookEvent", ctx, payload, "t=1,v1=abc").Return(nil)

		h := &Billing{loggerProvider: logger.FromContext, service: service}

		ctx.Request.Body = io.NopCloser(bytes.NewReader(payload))
		ctx.Request.Header.Set("Stripe-Signature", "t=1,v1=abc")

		assert.NoError(t, h.Webhook(ctx))
	})

	t.Run("Error - rejected signature", func(t *testing.T) {
		service := &mocks.BillingService{}
		service.On("HandleWebhookEvent", ctx, payload, "").Return(domain.ErrMissingSignature)

		h := &Billing{loggerProvider: logger.FromContext, service: service}

		ctx.Request.Body = io.NopCloser(bytes.NewReader(payload))
		ctx.Request.Header.Del("Stripe-Signature")

		respond := h.Webhook(ctx)
		assert.Equal(t, web.NewRequestError(domain.ErrMissingSignature, 400), respond)
	})
}
