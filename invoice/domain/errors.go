package domain

import (
	"errors"
)

var (
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrForbidden        = errors.New("forbidden")
)

// Document endpoint errors double as the client-facing error codes.
var (
	ErrMissingDocumentID = errors.New("missing_id")
	ErrDocumentNotFound  = errors.New("not_found")
	ErrRenderFailed      = errors.New("pdf_failed")
)
