package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/invoice/dal"
	dalIface "github.com/gigfolio/console-api/invoice/dal/iface"
	"github.com/gigfolio/console-api/invoice/domain"
	"github.com/gigfolio/console-api/invoice/service"
	"github.com/gigfolio/console-api/invoice/service/iface"
	"github.com/gigfolio/console-api/logger"
)

type Invoices struct {
	loggerProvider  logger.Provider
	dal             dalIface.Invoices
	pdfRenderer     iface.InvoiceRenderer
	receiptRenderer iface.ReceiptRenderer
	accessPolicy    service.AccessPolicy
}

func NewInvoices(log logger.Provider, conn *connection.Connection) *Invoices {
	return &Invoices{
		loggerProvider:  log,
		dal:             dal.NewInvoicesFirestoreWithClient(conn.Firestore),
		pdfRenderer:     service.NewPDFService(log),
		receiptRenderer: service.NewReceiptService(log),
		// Invoices created before auth rollout carry no ownerUid and
		// stay downloadable by any authenticated user.
		accessPolicy: service.AccessPolicy{AllowUnownedDocuments: true},
	}
}

type CreateInvoiceRequest struct {
	Number      string            `json:"number" binding:"required"`
	IssueDate   *string           `json:"issueDate"`
	DueDate     *string           `json:"dueDate"`
	Business    domain.Party      `json:"business"`
	Customer    domain.Party      `json:"customer"`
	Items       []domain.LineItem `json:"items"`
	Payments    []domain.Payment  `json:"payments"`
	Notes       *string           `json:"notes"`
	PaymentLink *string           `json:"paymentLink"`
	EventID     *string           `json:"eventId"`
	Status      *string           `json:"status"`
}

func (r CreateInvoiceRequest) fields() map[string]interface{} {
	items := r.Items
	if items == nil {
		items = []domain.LineItem{}
	}

	fields := map[string]interface{}{
		"number":   r.Number,
		"business": r.Business,
		"customer": r.Customer,
		"items":    items,
		"status":   domain.StatusDraft,
	}

	if r.Payments != nil {
		fields["payments"] = r.Payments
	}

	if r.Status != nil && *r.Status != "" {
		fields["status"] = *r.Status
	}

	common.SetOptionalField(fields, "issueDate", r.IssueDate)
	common.SetOptionalField(fields, "dueDate", r.DueDate)
	common.SetOptionalField(fields, "notes", r.Notes)
	common.SetOptionalField(fields, "paymentLink", r.PaymentLink)
	common.SetOptionalField(fields, "eventId", r.EventID)

	return fields
}

func (h *Invoices) CreateInvoice(ctx *gin.Context) error {
	var body CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	fields := body.fields()
	fields["ownerUid"] = ctx.GetString(common.CtxKeys.UID)

	invoice, err := h.dal.Create(ctx, businessID, fields)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, invoice, http.StatusCreated)
}

func (h *Invoices) GetInvoice(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	invoice, err := h.dal.Get(ctx, businessID, ctx.Param("id"))
	if err != nil {
		return translateInvoiceError(err)
	}

	return web.Respond(ctx, invoice, http.StatusOK)
}

func (h *Invoices) ListInvoices(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	invoices, err := h.dal.List(ctx, businessID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, invoices, http.StatusOK)
}

func (h *Invoices) UpdateInvoice(ctx *gin.Context) error {
	fields, err := common.BindUpdateFields(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	invoice, err := h.dal.Update(ctx, businessID, ctx.Param("id"), fields)
	if err != nil {
		return translateInvoiceError(err)
	}

	return web.Respond(ctx, invoice, http.StatusOK)
}

func (h *Invoices) DeleteInvoice(ctx *gin.Context) error {
	businessID := ctx.GetString(common.CtxKeys.BusinessID)

	if err := h.dal.Delete(ctx, businessID, ctx.Param("id")); err != nil {
		return translateInvoiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

// GetInvoicePDF serves the invoice as an inline PDF. Lookup skips the
// business scope, ownership is decided by the access policy on the
// loaded record instead.
func (h *Invoices) GetInvoicePDF(ctx *gin.Context) error {
	uid := ctx.GetString(common.CtxKeys.UID)
	if uid == "" {
		return web.NewRequestError(web.ErrUnauthorized, http.StatusUnauthorized)
	}

	invoice, err := h.dal.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		return translateInvoiceError(err)
	}

	if err := h.accessPolicy.Authorize(invoice, uid); err != nil {
		return web.NewRequestError(err, http.StatusForbidden)
	}

	pdf, err := h.pdfRenderer.RenderInvoice(ctx, invoice)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.RespondPDF(ctx, pdf)
}

// GetInvoiceReceipt serves a payment receipt as a PDF attachment. The
// endpoint is public, receipts are linked from payment confirmation
// emails without a session.
func (h *Invoices) GetInvoiceReceipt(ctx *gin.Context) error {
	invoiceID := ctx.Param("id")
	if invoiceID == "" {
		return web.NewRequestError(domain.ErrMissingDocumentID, http.StatusBadRequest)
	}

	invoice, err := h.dal.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return web.NewRequestError(domain.ErrDocumentNotFound, http.StatusNotFound)
		}

		if errors.Is(err, domain.ErrInvalidInvoiceID) {
			return web.NewRequestError(domain.ErrMissingDocumentID, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	pdf, err := h.receiptRenderer.RenderReceipt(ctx, invoice)
	if err != nil {
		return web.NewRequestError(domain.ErrRenderFailed, http.StatusInternalServerError)
	}

	return web.RespondPDFAttachment(ctx, pdf, "receipt-"+invoice.Number+".pdf")
}

func translateInvoiceError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidInvoiceID):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
