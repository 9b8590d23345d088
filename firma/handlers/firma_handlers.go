package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/firma/service"
	"github.com/gigfolio/console-api/firma/service/iface"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
)

type Firma struct {
	loggerProvider logger.Provider
	service        iface.FirmaService
}

func NewFirma(log logger.Provider) *Firma {
	return &Firma{
		log,
		service.NewFirmaService(log),
	}
}

// ListTemplates proxies the provider template list to the client.
func (h *Firma) ListTemplates(ctx *gin.Context) error {
	templates, err := h.service.ListTemplates(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, templates, http.StatusOK)
}
