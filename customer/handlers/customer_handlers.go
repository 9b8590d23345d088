package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/customer/dal"
	"github.com/gigfolio/console-api/customer/dal/iface"
	"github.com/gigfolio/console-api/customer/domain"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
)

type Customers struct {
	loggerProvider logger.Provider
	dal            iface.Customers
}

func NewCustomers(log logger.Provider, conn *connection.Connection) *Customers {
	return &Customers{
		log,
		dal.NewCustomersFirestoreWithClient(conn.Firestore),
	}
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

func (r CreateCustomerRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{
		"name": r.Name,
	}

	common.SetOptionalField(fields, "email", r.Email)
	common.SetOptionalField(fields, "phone", r.Phone)
	common.SetOptionalField(fields, "company", r.Company)
	common.SetOptionalField(fields, "notes", r.Notes)

	return fields
}

func (h *Customers) CreateCustomer(ctx *gin.Context) error {
	var body CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	customer, err := h.dal.Create(ctx, businessID, body.fields())
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customer, http.StatusCreated)
}

func (h *Customers) GetCustomer(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	customer, err := h.dal.Get(ctx, businessID, ctx.Param("id"))
	if err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

func (h *Customers) ListCustomers(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	customers, err := h.dal.List(ctx, businessID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customers, http.StatusOK)
}

func (h *Customers) UpdateCustomer(ctx *gin.Context) error {
	fields, err := common.BindUpdateFields(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	customer, err := h.dal.Update(ctx, businessID, ctx.Param("id"), fields)
	if err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

func (h *Customers) DeleteCustomer(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	if err := h.dal.Delete(ctx, businessID, ctx.Param("id")); err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func translateCustomerError(err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidCustomerID):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
