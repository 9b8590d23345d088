package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/event/dal/mocks"
	"github.com/gigfolio/console-api/event/domain"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
)

type eventsFields struct {
	loggerProvider logger.Provider
	dal            *mocks.Events
}

func GetEventsContext() *gin.Context {
	request := httptest.NewRequest(http.MethodPost, "http://example.com/foo", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func TestEvents_CreateEvent(t *testing.T) {
	ctx := GetEventsContext()

	type args struct {
		ctx *gin.Context
	}

	var (
		businessID = "business-id"
		title      = "Wedding reception"
		start      = "2026-06-20T18:00:00Z"
	)

	validRequest, err := json.Marshal(map[string]interface{}{
		"title": title,
		"start": start,
	})
	if err != nil {
		t.Fatal(err)
	}

	badTimeRequest, err := json.Marshal(map[string]interface{}{
		"title": title,
		"start": "next saturday",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         args
		fields       eventsFields
		on           func(*eventsFields)
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
			on: func(f *eventsFields) {
				f.dal.On("Create", ctx, businessID, map[string]interface{}{
					"title": title,
					"start": start,
				}).Return(&domain.Event{Title: title, Start: start}, nil)
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Request with non RFC3339 start",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(badTimeRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidEventTime,
			expectedCode: 400,
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = eventsFields{
				logger.FromContext,
				&mocks.Events{},
			}
			h := &Events{
				loggerProvider: tt.fields.loggerProvider,
				dal:            tt.fields.dal,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody
			ctx.Keys = tt.ctxKeys

			respond := h.CreateEvent(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("CreateEvent() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestEvents_UpdateEvent(t *testing.T) {
	ctx := GetEventsContext()

	type args struct {
		ctx *gin.Context
	}

	var (
		businessID = "business-id"
		eventID    = "event-id"
	)

	validRequest, err := json.Marshal(map[string]interface{}{
		"notes": "load in at 16:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	badTimeRequest, err := json.Marshal(map[string]interface{}{
		"end": "late",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         args
		fields       eventsFields
		on           func(*eventsFields)
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
			on: func(f *eventsFields) {
				f.dal.On("Update", ctx, businessID, eventID, map[string]interface{}{
					"notes": "load in at 16:00",
				}).Return(&domain.Event{ID: eventID}, nil)
			},
			ctxParams: []gin.Param{
				{Key: "id", Value: eventID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
		{
			name: "Error - non RFC3339 end",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(badTimeRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidEventTime,
			expectedCode: 400,
			ctxParams: []gin.Param{
				{Key: "id", Value: eventID},
			},
			ctxKeys: map[string]interface{}{
				common.CtxKeys.BusinessID: businessID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = eventsFields{
				logger.FromContext,
				&mocks.Events{},
			}
			h := &Events{
				loggerProvider: tt.fields.loggerProvider,
				dal:            tt.fields.dal,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody
			ctx.Keys = tt.ctxKeys
			ctx.Params = tt.ctxParams

			respond := h.UpdateEvent(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("UpdateEvent() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}
