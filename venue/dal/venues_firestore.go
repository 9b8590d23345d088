package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/venue/domain"
)

const (
	venuesCollection = "venues"

	businessIDField = "businessId"
	createdAtField  = "createdAt"
	updatedAtField  = "updatedAt"
)

type VenuesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewVenuesFirestore(ctx context.Context, projectID string) (*VenuesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewVenuesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewVenuesFirestoreWithClient(fun connection.FirestoreFromContextFun) *VenuesFirestore {
	return &VenuesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *VenuesFirestore) GetRef(ctx context.Context, venueID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(venuesCollection).Doc(venueID)
}

func (d *VenuesFirestore) Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Venue, error) {
	fields = common.SanitizeFields(fields)
	fields[businessIDField] = businessID
	fields[createdAtField] = firestore.ServerTimestamp
	fields[updatedAtField] = firestore.ServerTimestamp

	ref, _, err := d.firestoreClientFun(ctx).Collection(venuesCollection).Add(ctx, fields)
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, ref.ID)
}

func (d *VenuesFirestore) Get(ctx context.Context, businessID, venueID string) (*domain.Venue, error) {
	if venueID == "" {
		return nil, domain.ErrInvalidVenueID
	}

	docSnap, err := d.GetRef(ctx, venueID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrVenueNotFound
		}

		return nil, err
	}

	var venue domain.Venue
	if err := docSnap.DataTo(&venue); err != nil {
		return nil, err
	}

	if venue.BusinessID != businessID {
		return nil, domain.ErrVenueNotFound
	}

	venue.ID = docSnap.Ref.ID

	return &venue, nil
}

func (d *VenuesFirestore) List(ctx context.Context, businessID string) ([]*domain.Venue, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(venuesCollection).
		Where(businessIDField, "==", businessID).
		Documents(ctx)
	defer iter.Stop()

	venues := make([]*domain.Venue, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var venue domain.Venue
		if err := docSnap.DataTo(&venue); err != nil {
			return nil, err
		}

		venue.ID = docSnap.Ref.ID
		venues = append(venues, &venue)
	}

	return venues, nil
}

func (d *VenuesFirestore) Update(ctx context.Context, businessID, venueID string, fields map[string]interface{}) (*domain.Venue, error) {
	if _, err := d.Get(ctx, businessID, venueID); err != nil {
		return nil, err
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range common.SanitizeFields(fields) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	updates = append(updates, firestore.Update{Path: updatedAtField, Value: firestore.ServerTimestamp})

	if _, err := d.GetRef(ctx, venueID).Update(ctx, updates); err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, venueID)
}

func (d *VenuesFirestore) Delete(ctx context.Context, businessID, venueID string) error {
	if _, err := d.Get(ctx, businessID, venueID); err != nil {
		return err
	}

	_, err := d.GetRef(ctx, venueID).Delete(ctx)

	return err
}
