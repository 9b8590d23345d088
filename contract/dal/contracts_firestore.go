package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigfolio/console-api/contract/domain"
	"github.com/gigfolio/console-api/framework/connection"
)

const (
	contractsCollection = "contracts"

	ownerIDField   = "ownerId"
	updatedAtField = "updatedAt"
)

type ContractsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewContractsFirestore(ctx context.Context, projectID string) (*ContractsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewContractsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewContractsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ContractsFirestore {
	return &ContractsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ContractsFirestore) GetRef(ctx context.Context, contractID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(contractsCollection).Doc(contractID)
}

func (d *ContractsFirestore) Get(ctx context.Context, contractID string) (*domain.Contract, error) {
	if contractID == "" {
		return nil, domain.ErrMissingContractID
	}

	docSnap, err := d.GetRef(ctx, contractID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrContractNotFound
		}

		return nil, err
	}

	var contract domain.Contract
	if err := docSnap.DataTo(&contract); err != nil {
		return nil, err
	}

	contract.ID = docSnap.Ref.ID

	return &contract, nil
}

func (d *ContractsFirestore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contract, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(contractsCollection).
		Where(ownerIDField, "==", ownerID).
		Documents(ctx)
	defer iter.Stop()

	contracts := make([]*domain.Contract, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var contract domain.Contract
		if err := docSnap.DataTo(&contract); err != nil {
			return nil, err
		}

		contract.ID = docSnap.Ref.ID
		contracts = append(contracts, &contract)
	}

	return contracts, nil
}

// BackfillOwner stamps ownerID on every contract whose ownerId is null.
// All matched documents are updated in a single batch commit, either the
// whole backfill lands or none of it does. With no matches nothing is
// committed.
func (d *ContractsFirestore) BackfillOwner(ctx context.Context, ownerID string) (int, error) {
	fs := d.firestoreClientFun(ctx)

	iter := fs.Collection(contractsCollection).
		Where(ownerIDField, "==", nil).
		Documents(ctx)
	defer iter.Stop()

	batch := fs.Batch()
	updated := 0

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return 0, err
		}

		batch.Update(docSnap.Ref, []firestore.Update{
			{Path: ownerIDField, Value: ownerID},
			{Path: updatedAtField, Value: firestore.ServerTimestamp},
		})
		updated++
	}

	if updated == 0 {
		return 0, nil
	}

	if _, err := batch.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
