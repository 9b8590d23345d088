package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/contract/domain"
	"github.com/gigfolio/console-api/contract/service"
	"github.com/gigfolio/console-api/contract/service/iface"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
)

type Contracts struct {
	loggerProvider logger.Provider
	service        iface.ContractsService
}

func NewContracts(log logger.Provider, conn *connection.Connection) *Contracts {
	return &Contracts{
		log,
		service.NewContractService(log, conn),
	}
}

type BackfillOwnerRequest struct {
	OwnerID string `json:"ownerId"`
}

func (h *Contracts) BackfillOwner(ctx *gin.Context) error {
	var body BackfillOwnerRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(domain.ErrMissingOwnerID, http.StatusBadRequest)
	}

	updated, err := h.service.BackfillOwner(ctx, body.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingOwnerID) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]interface{}{"updated": updated}, http.StatusOK)
}

func (h *Contracts) ListByOwner(ctx *gin.Context) error {
	docs, err := h.service.ListByOwner(ctx, ctx.Query("ownerId"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingOwnerID) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]interface{}{"docs": docs}, http.StatusOK)
}

type SendContractRequest struct {
	ID string `json:"id"`
}

func (h *Contracts) Send(ctx *gin.Context) error {
	var body SendContractRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(domain.ErrMissingContractID, http.StatusBadRequest)
	}

	if err := h.service.Send(ctx, body.ID); err != nil {
		var sendErr *domain.SendError
		if errors.As(err, &sendErr) {
			return web.NewRequestErrorWithDetails(domain.ErrFirmaSendFailed, http.StatusBadGateway, map[string]interface{}{
				"signingRequest": sendErr.SigningRequest,
			})
		}

		switch {
		case errors.Is(err, domain.ErrMissingContractID):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, domain.ErrContractNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, map[string]interface{}{"ok": true}, http.StatusOK)
}
