package iface

import (
	"context"

	"github.com/gigfolio/console-api/customer/domain"
)

//go:generate mockery --name Customers --output ../mocks
type Customers interface {
	Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Customer, error)
	Get(ctx context.Context, businessID, customerID string) (*domain.Customer, error)
	List(ctx context.Context, businessID string) ([]*domain.Customer, error)
	Update(ctx context.Context, businessID, customerID string, fields map[string]interface{}) (*domain.Customer, error)
	Delete(ctx context.Context, businessID, customerID string) error
}
