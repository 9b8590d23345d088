package iface

import (
	"context"

	"github.com/gigfolio/console-api/invoice/domain"
)

//go:generate mockery --name Invoices --output ../mocks
type Invoices interface {
	Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Invoice, error)
	Get(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error)
	List(ctx context.Context, businessID string) ([]*domain.Invoice, error)
	Update(ctx context.Context, businessID, invoiceID string, fields map[string]interface{}) (*domain.Invoice, error)
	Delete(ctx context.Context, businessID, invoiceID string) error

	// GetByID loads an invoice without tenant scoping. Document endpoints
	// apply their own ownership policy on the loaded record.
	GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}
