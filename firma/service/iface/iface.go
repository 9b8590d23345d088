package iface

import (
	"context"

	"github.com/gigfolio/console-api/firma/domain"
)

//go:generate mockery --name FirmaService --output ../mocks
type FirmaService interface {
	GetSigningRequest(ctx context.Context, firmaID string) (domain.SigningRequest, error)
	SendSigningRequest(ctx context.Context, firmaID string) error
	ListTemplates(ctx context.Context) ([]domain.Template, error)
}
