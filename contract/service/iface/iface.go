package iface

import (
	"context"

	"github.com/gigfolio/console-api/contract/domain"
)

//go:generate mockery --name ContractsService --output ../mocks
type ContractsService interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contract, error)
	BackfillOwner(ctx context.Context, ownerID string) (int, error)
	Send(ctx context.Context, contractID string) error
}
