package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	contractHandlers "github.com/gigfolio/console-api/contract/handlers"
	customerHandlers "github.com/gigfolio/console-api/customer/handlers"
	eventHandlers "github.com/gigfolio/console-api/event/handlers"
	firmaHandlers "github.com/gigfolio/console-api/firma/handlers"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/framework/mid"
	"github.com/gigfolio/console-api/framework/web"
	invoiceHandlers "github.com/gigfolio/console-api/invoice/handlers"
	"github.com/gigfolio/console-api/logger"
	stripeHandlers "github.com/gigfolio/console-api/stripe/handlers"
	venueHandlers "github.com/gigfolio/console-api/venue/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	customers := customerHandlers.NewCustomers(loggerProvider, a.conn)
	venues := venueHandlers.NewVenues(loggerProvider, a.conn)
	events := eventHandlers.NewEvents(loggerProvider, a.conn)
	invoices := invoiceHandlers.NewInvoices(loggerProvider, a.conn)
	contracts := contractHandlers.NewContracts(loggerProvider, a.conn)
	firma := firmaHandlers.NewFirma(loggerProvider)
	billing := stripeHandlers.NewBilling(loggerProvider)

	app.Get("/health", healthCheck)

	apiGroup := web.NewGroup(app, "/api")

	customersGroup := apiGroup.NewSubgroup("/customers", mid.AuthRequired(a.conn))
	customersGroup.Post("", customers.CreateCustomer)
	customersGroup.Get("", customers.ListCustomers)
	customersGroup.Get("/:id", customers.GetCustomer, mid.ValidatePathParamNotEmpty("id"))
	customersGroup.Patch("/:id", customers.UpdateCustomer, mid.ValidatePathParamNotEmpty("id"))
	customersGroup.Delete("/:id", customers.DeleteCustomer, mid.ValidatePathParamNotEmpty("id"))

	venuesGroup := apiGroup.NewSubgroup("/venues", mid.AuthRequired(a.conn))
	venuesGroup.Post("", venues.CreateVenue)
	venuesGroup.Get("", venues.ListVenues)
	venuesGroup.Get("/:id", venues.GetVenue, mid.ValidatePathParamNotEmpty("id"))
	venuesGroup.Patch("/:id", venues.UpdateVenue, mid.ValidatePathParamNotEmpty("id"))
	venuesGroup.Delete("/:id", venues.DeleteVenue, mid.ValidatePathParamNotEmpty("id"))

	eventsGroup := apiGroup.NewSubgroup("/events", mid.AuthRequired(a.conn))
	eventsGroup.Post("", events.CreateEvent)
	eventsGroup.Get("", events.ListEvents)
	eventsGroup.Get("/:id", events.GetEvent, mid.ValidatePathParamNotEmpty("id"))
	eventsGroup.Patch("/:id", events.UpdateEvent, mid.ValidatePathParamNotEmpty("id"))
	eventsGroup.Delete("/:id", events.DeleteEvent, mid.ValidatePathParamNotEmpty("id"))

	invoicesGroup := apiGroup.NewSubgroup("/invoices", mid.AuthRequired(a.conn))
	invoicesGroup.Post("", invoices.CreateInvoice)
	invoicesGroup.Get("", invoices.ListInvoices)
	invoicesGroup.Get("/:id", invoices.GetInvoice, mid.ValidatePathParamNotEmpty("id"))
	invoicesGroup.Patch("/:id", invoices.UpdateInvoice, mid.ValidatePathParamNotEmpty("id"))
	invoicesGroup.Delete("/:id", invoices.DeleteInvoice, mid.ValidatePathParamNotEmpty("id"))
	invoicesGroup.Get("/:id/pdf", invoices.GetInvoicePDF, mid.ValidatePathParamNotEmpty("id"))

	// Receipts are linked from payment confirmation emails and are served
	// without a session.
	apiGroup.Get("/invoices/:id/receipt", invoices.GetInvoiceReceipt)

	contractsGroup := apiGroup.NewSubgroup("/contracts")
	contractsGroup.Post("/backfill-owner", contracts.BackfillOwner)
	contractsGroup.Get("/list", contracts.ListByOwner)
	contractsGroup.Post("/send", contracts.Send)

	apiGroup.Get("/firma/templates", firma.ListTemplates)

	stripeGroup := apiGroup.NewSubgroup("/stripe")
	stripeGroup.Post("/create-checkout-session", billing.CreateCheckoutSession)
	stripeGroup.Post("/create-portal-session", billing.CreatePortalSession)
	stripeGroup.Post("/get-subscription", billing.GetSubscription)
	stripeGroup.Post("/webhook", billing.Webhook)

	return app
}

func healthCheck(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}
