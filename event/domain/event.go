package domain

import (
	"time"
)

// Event is a booked gig. Start and End are RFC3339 strings as submitted
// by the client; CustomerID and VenueID are loose references, nothing
// enforces that the referenced documents exist.
type Event struct {
	ID         string    `firestore:"-" json:"id"`
	Title      string    `firestore:"title" json:"title"`
	Start      string    `firestore:"start" json:"start"`
	End        string    `firestore:"end" json:"end,omitempty"`
	Notes      string    `firestore:"notes" json:"notes,omitempty"`
	CustomerID string    `firestore:"customerId" json:"customerId,omitempty"`
	VenueID    string    `firestore:"venueId" json:"venueId,omitempty"`
	BusinessID string    `firestore:"businessId" json:"businessId"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}
