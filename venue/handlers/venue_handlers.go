package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
	"github.com/gigfolio/console-api/venue/dal"
	"github.com/gigfolio/console-api/venue/dal/iface"
	"github.com/gigfolio/console-api/venue/domain"
)

type Venues struct {
	loggerProvider logger.Provider
	dal            iface.Venues
}

func NewVenues(log logger.Provider, conn *connection.Connection) *Venues {
	return &Venues{
		log,
		dal.NewVenuesFirestoreWithClient(conn.Firestore),
	}
}

type CreateVenueRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Website *string `json:"website"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

func (r CreateVenueRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{
		"name": r.Name,
	}

	common.SetOptionalField(fields, "phone", r.Phone)
	common.SetOptionalField(fields, "website", r.Website)
	common.SetOptionalField(fields, "address", r.Address)
	common.SetOptionalField(fields, "notes", r.Notes)

	return fields
}

func (h *Venues) CreateVenue(ctx *gin.Context) error {
	var body CreateVenueRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	venue, err := h.dal.Create(ctx, businessID, body.fields())
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, venue, http.StatusCreated)
}

func (h *Venues) GetVenue(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	venue, err := h.dal.Get(ctx, businessID, ctx.Param("id"))
	if err != nil {
		return translateVenueError(err)
	}

	return web.Respond(ctx, venue, http.StatusOK)
}

func (h *Venues) ListVenues(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	venues, err := h.dal.List(ctx, businessID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, venues, http.StatusOK)
}

func (h *Venues) UpdateVenue(ctx *gin.Context) error {
	fields, err := common.BindUpdateFields(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	venue, err := h.dal.Update(ctx, businessID, ctx.Param("id"), fields)
	if err != nil {
		return translateVenueError(err)
	}

	return web.Respond(ctx, venue, http.StatusOK)
}

func (h *Venues) DeleteVenue(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	if err := h.dal.Delete(ctx, businessID, ctx.Param("id")); err != nil {
		return translateVenueError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func translateVenueError(err error) error {
	switch {
	case errors.Is(err, domain.ErrVenueNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidVenueID):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
