package service

import (
	"context"
	"errors"

	dal "github.com/gigfolio/console-api/contract/dal"
	dalIface "github.com/gigfolio/console-api/contract/dal/iface"
	"github.com/gigfolio/console-api/contract/domain"
	firmaService "github.com/gigfolio/console-api/firma/service"
	firmaIface "github.com/gigfolio/console-api/firma/service/iface"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/logger"
)

type ContractService struct {
	loggerProvider logger.Provider
	dal            dalIface.Contracts
	firma          firmaIface.FirmaService
}

func NewContractService(log logger.Provider, conn *connection.Connection) *ContractService {
	return &ContractService{
		log,
		dal.NewContractsFirestoreWithClient(conn.Firestore),
		firmaService.NewFirmaService(log),
	}
}

func (s *ContractService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contract, error) {
	if ownerID == "" {
		return nil, domain.ErrMissingOwnerID
	}

	return s.dal.ListByOwner(ctx, ownerID)
}

func (s *ContractService) BackfillOwner(ctx context.Context, ownerID string) (int, error) {
	if ownerID == "" {
		return 0, domain.ErrMissingOwnerID
	}

	return s.dal.BackfillOwner(ctx, ownerID)
}

// Send dispatches the contract's signing request through Firma. The
// provider-side id comes from the stored record; when the store cannot be
// read the local id doubles as the provider id so sending still works in
// degraded deployments. Before sending, the provider's current view of the
// request is fetched for error context only, a failed fetch degrades to an
// empty snapshot and never blocks the send.
func (s *ContractService) Send(ctx context.Context, contractID string) error {
	if contractID == "" {
		return domain.ErrMissingContractID
	}

	l := s.loggerProvider(ctx)

	firmaID := contractID

	contract, err := s.dal.Get(ctx, contractID)

	switch {
	case err == nil:
		if contract.FirmaID != "" {
			firmaID = contract.FirmaID
		}
	case errors.Is(err, domain.ErrContractNotFound):
		return err
	default:
		l.Warningf("contract %s lookup failed, using local id as firma id: %s", contractID, err)
	}

	snapshot, err := s.firma.GetSigningRequest(ctx, firmaID)
	if err != nil {
		l.Warningf("signing request %s snapshot fetch failed: %s", firmaID, err)

		snapshot = map[string]interface{}{}
	}

	if err := s.firma.SendSigningRequest(ctx, firmaID); err != nil {
		l.Errorf("signing request %s send failed: %s", firmaID, err)

		return domain.NewSendError(err, snapshot)
	}

	return nil
}
