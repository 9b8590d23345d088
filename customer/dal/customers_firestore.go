package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/customer/domain"
	"github.com/gigfolio/console-api/framework/connection"
)

const (
	customersCollection = "customers"

	businessIDField = "businessId"
	createdAtField  = "createdAt"
	updatedAtField  = "updatedAt"
)

type CustomersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewCustomersFirestore(ctx context.Context, projectID string) (*CustomersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCustomersFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewCustomersFirestoreWithClient(fun connection.FirestoreFromContextFun) *CustomersFirestore {
	return &CustomersFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CustomersFirestore) GetRef(ctx context.Context, customerID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(customersCollection).Doc(customerID)
}

func (d *CustomersFirestore) Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Customer, error) {
	fields = common.SanitizeFields(fields)
	fields[businessIDField] = businessID
	fields[createdAtField] = firestore.ServerTimestamp
	fields[updatedAtField] = firestore.ServerTimestamp

	ref, _, err := d.firestoreClientFun(ctx).Collection(customersCollection).Add(ctx, fields)
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, ref.ID)
}

func (d *CustomersFirestore) Get(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidCustomerID
	}

	docSnap, err := d.GetRef(ctx, customerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	var customer domain.Customer
	if err := docSnap.DataTo(&customer); err != nil {
		return nil, err
	}

	// A document belonging to another business is reported as missing
	// so that record ids do not leak across tenants.
	if customer.BusinessID != businessID {
		return nil, domain.ErrCustomerNotFound
	}

	customer.ID = docSnap.Ref.ID

	return &customer, nil
}

func (d *CustomersFirestore) List(ctx context.Context, businessID string) ([]*domain.Customer, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(customersCollection).
		Where(businessIDField, "==", businessID).
		Documents(ctx)
	defer iter.Stop()

	customers := make([]*domain.Customer, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var customer domain.Customer
		if err := docSnap.DataTo(&customer); err != nil {
			return nil, err
		}

		customer.ID = docSnap.Ref.ID
		customers = append(customers, &customer)
	}

	return customers, nil
}

func (d *CustomersFirestore) Update(ctx context.Context, businessID, customerID string, fields map[string]interface{}) (*domain.Customer, error) {
	if _, err := d.Get(ctx, businessID, customerID); err != nil {
		return nil, err
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range common.SanitizeFields(fields) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	updates = append(updates, firestore.Update{Path: updatedAtField, Value: firestore.ServerTimestamp})

	if _, err := d.GetRef(ctx, customerID).Update(ctx, updates); err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, customerID)
}

func (d *CustomersFirestore) Delete(ctx context.Context, businessID, customerID string) error {
	if _, err := d.Get(ctx, businessID, customerID); err != nil {
		return err
	}

	_, err := d.GetRef(ctx, customerID).Delete(ctx)

	return err
}
