package domain

import (
	"time"
)

// Customer is a client of the business, the billable party on invoices.
type Customer struct {
	ID         string    `firestore:"-" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	Email      string    `firestore:"email" json:"email,omitempty"`
	Phone      string    `firestore:"phone" json:"phone,omitempty"`
	Company    string    `firestore:"company" json:"company,omitempty"`
	Notes      string    `firestore:"notes" json:"notes,omitempty"`
	BusinessID string    `firestore:"businessId" json:"businessId"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}
