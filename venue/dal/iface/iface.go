package iface

import (
	"context"

	"github.com/gigfolio/console-api/venue/domain"
)

//go:generate mockery --name Venues --output ../mocks
type Venues interface {
	Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Venue, error)
	Get(ctx context.Context, businessID, venueID string) (*domain.Venue, error)
	List(ctx context.Context, businessID string) ([]*domain.Venue, error)
	Update(ctx context.Context, businessID, venueID string, fields map[string]interface{}) (*domain.Venue, error)
	Delete(ctx context.Context, businessID, venueID string) error
}
