package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigfolio/console-api/invoice/domain"
)

func TestAccessPolicy_Authorize(t *testing.T) {
	tests := []struct {
		name    string
		policy  AccessPolicy
		invoice *domain.Invoice
		uid     string
		wantErr error
	}{
		{
			name:    "owner may access own invoice",
			policy:  AccessPolicy{AllowUnownedDocuments: true},
			invoice: &domain.Invoice{OwnerUID: "uid-1"},
			uid:     "uid-1",
		},
		{
			name:    "mismatched owner is forbidden",
			policy:  AccessPolicy{AllowUnownedDocuments: true},
			invoice: &domain.Invoice{OwnerUID: "uid-1"},
			uid:     "uid-2",
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "unowned invoice servable when policy allows",
			policy:  AccessPolicy{AllowUnownedDocuments: true},
			invoice: &domain.Invoice{},
			uid:     "uid-2",
		},
		{
			name:    "unowned invoice forbidden when policy disallows",
			policy:  AccessPolicy{},
			invoice: &domain.Invoice{},
			uid:     "uid-2",
			wantErr: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Authorize(tt.invoice, tt.uid)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReceiptPolicy_Apply(t *testing.T) {
	policy := ReceiptPolicy{ForceStatus: domain.StatusPaid}

	draft := &domain.Invoice{ID: "invoice-id", Status: domain.StatusDraft}

	receipt := policy.Apply(draft)

	assert.Equal(t, domain.StatusPaid, receipt.Status)
	// The stored record keeps its real status.
	assert.Equal(t, domain.StatusDraft, draft.Status)
}
