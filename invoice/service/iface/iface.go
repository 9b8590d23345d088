package iface

import (
	"context"

	"github.com/gigfolio/console-api/invoice/domain"
)

//go:generate mockery --name InvoiceRenderer --output ../mocks
type InvoiceRenderer interface {
	RenderInvoice(ctx context.Context, invoice *domain.Invoice) ([]byte, error)
}

//go:generate mockery --name ReceiptRenderer --output ../mocks
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, invoice *domain.Invoice) ([]byte, error)
}
