package iface

import (
	"context"

	"github.com/gigfolio/console-api/event/domain"
)

//go:generate mockery --name Events --output ../mocks
type Events interface {
	Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Event, error)
	Get(ctx context.Context, businessID, eventID string) (*domain.Event, error)
	List(ctx context.Context, businessID string) ([]*domain.Event, error)
	Update(ctx context.Context, businessID, eventID string, fields map[string]interface{}) (*domain.Event, error)
	Delete(ctx context.Context, businessID, eventID string) error
}
