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

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/customer/dal/mocks"
	"github.com/gigfolio/console-api/customer/domain"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
)

type customersFields struct {
	loggerProvider logger.Provider
	dal            *mocks.Customers
}

func GetCustomersContext() *gin.Context {
	request := httptest.NewRequest(http.MethodPost, "http://example.com/foo", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func TestCustomers_CreateCustomer(t *testing.T) {
	ctx := GetCustomersContext()

	type args struct {
		ctx *gin.Context
	}

	var (
		businessID = "business-id"
		name       = "Acme Audio"
	)

	validRequest, err := json.Marshal(map[string]interface{}{
		"name": name,
	})
	if err != nil {
		t.Fatal(err)
	}

	missingNameRequest, err := json.Marshal(map[string]interface{}{
		"email": "booking@acme.test",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         args
		fields       customersFields
		on           func(*customersFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		requestBody  io.ReadCloser
		ctxKeys      map[string]interface{}
	}{
		{
			name: "Request with valid body",
			args: args{
				ctx: ctx,
			},
			requestBody: io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:     false,
			on: func(f *customersFields) {
				f.dal.On("Create", ctx, businessID, map[string]interface{}{
					"name": name,
				}).Return(&domain.Customer{Name: name, BusinessID: businessID}, nil)
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Request with missing name",
			args: args{
				ctx: ctx,
			},
			requestBody: io.NopCloser(bytes.NewReader(missingNameRequest)),
			wantErr:     true,
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Error creating customer - internal server error",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:      true,
			expectedErr:  errors.New("internal server error"),
			expectedCode: 500,
			on: func(f *customersFields) {
				f.dal.On("Create", ctx, businessID, map[string]interface{}{
					"name": name,
				}).Return(nil, errors.New("internal server error"))
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = customersFields{
				logger.FromContext,
				&mocks.Customers{},
			}
			h := &Customers{
				loggerProvider: tt.fields.loggerProvider,
				dal:            tt.fields.dal,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody
			ctx.Keys = tt.ctxKeys

			respond := h.CreateCustomer(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("CreateCustomer() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestCustomers_GetCustomer(t *testing.T) {
	ctx := GetCustomersContext()

	type args struct {
		ctx *gin.Context
	}

	var (
		businessID = "business-id"
		customerID = "customer-id"
	)

	tests := []struct {
		name         string
		args         args
		fields       customersFields
		on           func(*customersFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		ctxParams    []gin.Param
		ctxKeys      map[string]interface{}
	}{
		{
			name: "Success - customer found",
			args: args{
				ctx: ctx,
			},
			wantErr: false,
			on: func(f *customersFields) {
				f.dal.On("Get", ctx, businessID, customerID).
					Return(&domain.Customer{ID: customerID, BusinessID: businessID}, nil)
			},
			ctxParams: []gin.Param{
				{Key: "id", Value: customerID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Error - customer not found",
			args: args{
				ctx: ctx,
			},
			wantErr:      true,
			expectedErr:  domain.ErrCustomerNotFound,
			expectedCode: 404,
			on: func(f *customersFields) {
				f.dal.On("Get", ctx, businessID, customerID).
					Return(nil, domain.ErrCustomerNotFound)
			},
			ctxParams: []gin.Param{
				{Key: "id", Value: customerID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Error - customer of another business reported as missing",
			args: args{
				ctx: ctx,
			},
			wantErr:      true,
			expectedErr:  domain.ErrCustomerNotFound,
			expectedCode: 404,
			on: func(f *customersFields) {
				f.dal.On("Get", ctx, "other-business", customerID).
					Return(nil, domain.ErrCustomerNotFound)
			},
			ctxParams: []gin.Param{
				{Key: "id", Value: customerID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: "other-business",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = customersFields{
				logger.FromContext,
				&mocks.Customers{},
			}
			h := &Customers{
				loggerProvider: tt.fields.loggerProvider,
				dal:            tt.fields.dal,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Keys = tt.ctxKeys
			ctx.Params = tt.ctxParams

			respond := h.GetCustomer(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("GetCustomer() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestCustomers_UpdateCustomer(t *testing.T) {
	ctx := GetCustomersContext()

	type args struct {
		ctx *gin.Context
	}

	var (
		businessID = "business-id"
		customerID = "customer-id"
	)

	validRequest, err := json.Marshal(map[string]interface{}{
		"name": "Renamed",
	})
	if err != nil {
		t.Fatal(err)
	}

	protectedOnlyRequest, err := json.Marshal(map[string]interface{}{
		"businessId": "hijacked-business",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         args
		fields       customersFields
		on           func(*customersFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		requestBody  io.ReadCloser
		ctxParams    []gin.Param
		ctxKeys      map[string]interface{}
	}{
		{
			name: "Success - valid partial update",
			args: args{
				ctx: ctx,
			},
			requestBody: io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:     false,
			on: func(f *customersFields) {
				f.dal.On("Update", ctx, businessID, customerID, map[string]interface{}{
					"name": "Renamed",
				}).Return(&domain.Customer{ID: customerID, Name: "Renamed"}, nil)
			},
			ctxParams: []gin.Param{
				{Key: "id", Value: customerID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Error - body containing only server-managed fields",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(protectedOnlyRequest)),
			wantErr:      true,
			expectedErr:  common.ErrNoFieldsToUpdate,
			expectedCode: 400,
			ctxParams: []gin.Param{
				{Key: "id", Value: customerID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = customersFields{
				logger.FromContext,
				&mocks.Customers{},
			}
			h := &Customers{
				loggerProvider: tt.fields.loggerProvider,
				dal:            tt.fields.dal,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody
			ctx.Keys = tt.ctxKeys
			ctx.Params = tt.ctxParams

			respond := h.UpdateCustomer(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("UpdateCustomer() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestCustomers_DeleteCustomer(t *testing.T) {
	ctx := GetCustomersContext()

	type args struct {
		ctx *gin.Context
	}

	var (
		businessID = "business-id"
		customerID = "customer-id"
		testError  = errors.New("test error")
	)

	tests := []struct {
		name         string
		args         args
		fields       customersFields
		on           func(*customersFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		ctxParams    []gin.Param
		ctxKeys      map[string]interface{}
	}{
		{
			name: "Success - valid request",
			args: args{
				ctx: ctx,
			},
			wantErr: false,
			on: func(f *customersFields) {
				f.dal.On("Delete", ctx, businessID, customerID).Return(nil)
			},
			ctxParams: []gin.Param{
				{Key: "id", Value: customerID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Error deleting customer - internal server error",
			args: args{
				ctx: ctx,
			},
			wantErr:      true,
			expectedErr:  testError,
			expectedCode: 500,
			on: func(f *customersFields) {
				f.dal.On("Delete", ctx, businessID, customerID).Return(testError)
			},
			ctxParams: []gin.Param{
				{Key: "id", Value: customerID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = customersFields{
				logger.FromContext,
				&mocks.Customers{},
			}
			h := &Customers{
				loggerProvider: tt.fields.loggerProvider,
				dal:            tt.fields.dal,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Keys = tt.ctxKeys
			ctx.Params = tt.ctxParams

			respond := h.DeleteCustomer(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("DeleteCustomer() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}
