package domain

import (
	"time"
)

// Venue is a location events take place at.
type Venue struct {
	ID         string    `firestore:"-" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	Phone      string    `firestore:"phone" json:"phone,omitempty"`
	Website    string    `firestore:"website" json:"website,omitempty"`
	Address    string    `firestore:"address" json:"address,omitempty"`
	Notes      string    `firestore:"notes" json:"notes,omitempty"`
	BusinessID string    `firestore:"businessId" json:"businessId"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}
