package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/invoice/domain"
)

const (
	invoicesCollection = "invoices"

	businessIDField = "businessId"
	ownerUIDField   = "ownerUid"
	createdAtField  = "createdAt"
	updatedAtField  = "updatedAt"
)

type InvoicesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewInvoicesFirestore(ctx context.Context, projectID string) (*InvoicesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewInvoicesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewInvoicesFirestoreWithClient(fun connection.FirestoreFromContextFun) *InvoicesFirestore {
	return &InvoicesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *InvoicesFirestore) GetRef(ctx context.Context, invoiceID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(invoicesCollection).Doc(invoiceID)
}

func (d *InvoicesFirestore) Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Invoice, error) {
	fields = common.SanitizeFields(fields)
	fields[businessIDField] = businessID
	fields[createdAtField] = firestore.ServerTimestamp
	fields[updatedAtField] = firestore.ServerTimestamp

	ref, _, err := d.firestoreClientFun(ctx).Collection(invoicesCollection).Add(ctx, fields)
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, ref.ID)
}

func (d *InvoicesFirestore) Get(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := d.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.BusinessID != businessID {
		return nil, domain.ErrInvoiceNotFound
	}

	return invoice, nil
}

func (d *InvoicesFirestore) GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if invoiceID == "" {
		return nil, domain.ErrInvalidInvoiceID
	}

	docSnap, err := d.GetRef(ctx, invoiceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	var invoice domain.Invoice
	if err := docSnap.DataTo(&invoice); err != nil {
		return nil, err
	}

	invoice.ID = docSnap.Ref.ID

	return &invoice, nil
}

func (d *InvoicesFirestore) List(ctx context.Context, businessID string) ([]*domain.Invoice, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(invoicesCollection).
		Where(businessIDField, "==", businessID).
		Documents(ctx)
	defer iter.Stop()

	invoices := make([]*domain.Invoice, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var invoice domain.Invoice
		if err := docSnap.DataTo(&invoice); err != nil {
			return nil, err
		}

		invoice.ID = docSnap.Ref.ID
		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}

func (d *InvoicesFirestore) Update(ctx context.Context, businessID, invoiceID string, fields map[string]interface{}) (*domain.Invoice, error) {
	if _, err := d.Get(ctx, businessID, invoiceID); err != nil {
		return nil, err
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range common.SanitizeFields(fields) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	updates = append(updates, firestore.Update{Path: updatedAtField, Value: firestore.ServerTimestamp})

	if _, err := d.GetRef(ctx, invoiceID).Update(ctx, updates); err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, invoiceID)
}

func (d *InvoicesFirestore) Delete(ctx context.Context, businessID, invoiceID string) error {
	if _, err := d.Get(ctx, businessID, invoiceID); err != nil {
		return err
	}

	_, err := d.GetRef(ctx, invoiceID).Delete(ctx)

	return err
}
