package iface

import (
	"context"

	"github.com/gigfolio/console-api/contract/domain"
)

//go:generate mockery --name Contracts --output ../mocks
type Contracts interface {
	Get(ctx context.Context, contractID string) (*domain.Contract, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contract, error)
	BackfillOwner(ctx context.Context, ownerID string) (int, error)
}
