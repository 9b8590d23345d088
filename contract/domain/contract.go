package domain

import (
	"time"
)

// Contract is a document managed by the Firma e-signature provider.
// FirmaID links the local record to the provider-side signing request;
// legacy records created before auth rollout may have no OwnerID.
type Contract struct {
	ID        string    `firestore:"-" json:"id"`
	OwnerID   string    `firestore:"ownerId" json:"ownerId,omitempty"`
	Title     string    `firestore:"title" json:"title,omitempty"`
	FirmaID   string    `firestore:"firmaId" json:"firmaId,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
