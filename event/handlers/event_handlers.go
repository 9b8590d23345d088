package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/event/dal"
	"github.com/gigfolio/console-api/event/dal/iface"
	"github.com/gigfolio/console-api/event/domain"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
)

type Events struct {
	loggerProvider logger.Provider
	dal            iface.Events
}

func NewEvents(log logger.Provider, conn *connection.Connection) *Events {
	return &Events{
		log,
		dal.NewEventsFirestoreWithClient(conn.Firestore),
	}
}

type CreateEventRequest struct {
	Title      string  `json:"title" binding:"required"`
	Start      string  `json:"start" binding:"required"`
	End        *string `json:"end"`
	Notes      *string `json:"notes"`
	CustomerID *string `json:"customerId"`
	VenueID    *string `json:"venueId"`
}

func (r CreateEventRequest) validate() error {
	if _, err := time.Parse(time.RFC3339, r.Start); err != nil {
		return domain.ErrInvalidEventTime
	}

	if r.End != nil {
		if _, err := time.Parse(time.RFC3339, *r.End); err != nil {
			return domain.ErrInvalidEventTime
		}
	}

	return nil
}

func (r CreateEventRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{
		"title": r.Title,
		"start": r.Start,
	}

	common.SetOptionalField(fields, "end", r.End)
	common.SetOptionalField(fields, "notes", r.Notes)
	common.SetOptionalField(fields, "customerId", r.CustomerID)
	common.SetOptionalField(fields, "venueId", r.VenueID)

	return fields
}

func (h *Events) CreateEvent(ctx *gin.Context) error {
	var body CreateEventRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := body.validate(); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	event, err := h.dal.Create(ctx, businessID, body.fields())
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, event, http.StatusCreated)
}

func (h *Events) GetEvent(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	event, err := h.dal.Get(ctx, businessID, ctx.Param("id"))
	if err != nil {
		return translateEventError(err)
	}

	return web.Respond(ctx, event, http.StatusOK)
}

func (h *Events) ListEvents(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	events, err := h.dal.List(ctx, businessID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, events, http.StatusOK)
}

func (h *Events) UpdateEvent(ctx *gin.Context) error {
	fields, err := common.BindUpdateFields(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validateUpdateTimes(fields); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	event, err := h.dal.Update(ctx, businessID, ctx.Param("id"), fields)
	if err != nil {
		return translateEventError(err)
	}

	return web.Respond(ctx, event, http.StatusOK)
}

func (h *Events) DeleteEvent(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	if err := h.dal.Delete(ctx, businessID, ctx.Param("id")); err != nil {
		return translateEventError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func validateUpdateTimes(fields map[string]interface{}) error {
	for _, key := range []string{"start", "end"} {
		value, ok := fields[key]
		if !ok {
			continue
		}

		s, ok := value.(string)
		if !ok {
			return domain.ErrInvalidEventTime
		}

		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return domain.ErrInvalidEventTime
		}
	}

	return nil
}

func translateEventError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidEventID):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
