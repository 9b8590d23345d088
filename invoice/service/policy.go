package service

import (
	"github.com/gigfolio/console-api/invoice/domain"
)

// AccessPolicy governs who may download an invoice document.
// AllowUnownedDocuments keeps records created before auth rollout
// servable, they carry no ownerUid and are readable by any
// authenticated user.
type AccessPolicy struct {
	AllowUnownedDocuments bool
}

func (p AccessPolicy) Authorize(invoice *domain.Invoice, uid string) error {
	if invoice.OwnerUID == "" {
		if p.AllowUnownedDocuments {
			return nil
		}

		return domain.ErrForbidden
	}

	if invoice.OwnerUID != uid {
		return domain.ErrForbidden
	}

	return nil
}

// ReceiptPolicy shapes an invoice for receipt rendering. A receipt
// documents a completed payment, so ForceStatus overrides whatever
// status the record carries.
type ReceiptPolicy struct {
	ForceStatus string
}

func (p ReceiptPolicy) Apply(invoice *domain.Invoice) *domain.Invoice {
	out := *invoice

	if p.ForceStatus != "" {
		out.Status = p.ForceStatus
	}

	return &out
}
