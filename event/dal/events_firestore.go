package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/event/domain"
	"github.com/gigfolio/console-api/framework/connection"
)

const (
	eventsCollection = "events"

	businessIDField = "businessId"
	createdAtField  = "createdAt"
	updatedAtField  = "updatedAt"
)

type EventsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewEventsFirestore(ctx context.Context, projectID string) (*EventsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewEventsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewEventsFirestoreWithClient(fun connection.FirestoreFromContextFun) *EventsFirestore {
	return &EventsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *EventsFirestore) GetRef(ctx context.Context, eventID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(eventsCollection).Doc(eventID)
}

func (d *EventsFirestore) Create(ctx context.Context, businessID string, fields map[string]interface{}) (*domain.Event, error) {
	fields = common.SanitizeFields(fields)
	fields[businessIDField] = businessID
	fields[createdAtField] = firestore.ServerTimestamp
	fields[updatedAtField] = firestore.ServerTimestamp

	ref, _, err := d.firestoreClientFun(ctx).Collection(eventsCollection).Add(ctx, fields)
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, ref.ID)
}

func (d *EventsFirestore) Get(ctx context.Context, businessID, eventID string) (*domain.Event, error) {
	if eventID == "" {
		return nil, domain.ErrInvalidEventID
	}

	docSnap, err := d.GetRef(ctx, eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrEventNotFound
		}

		return nil, err
	}

	var event domain.Event
	if err := docSnap.DataTo(&event); err != nil {
		return nil, err
	}

	if event.BusinessID != businessID {
		return nil, domain.ErrEventNotFound
	}

	event.ID = docSnap.Ref.ID

	return &event, nil
}

func (d *EventsFirestore) List(ctx context.Context, businessID string) ([]*domain.Event, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(eventsCollection).
		Where(businessIDField, "==", businessID).
		Documents(ctx)
	defer iter.Stop()

	events := make([]*domain.Event, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var event domain.Event
		if err := docSnap.DataTo(&event); err != nil {
			return nil, err
		}

		event.ID = docSnap.Ref.ID
		events = append(events, &event)
	}

	return events, nil
}

func (d *EventsFirestore) Update(ctx context.Context, businessID, eventID string, fields map[string]interface{}) (*domain.Event, error) {
	if _, err := d.Get(ctx, businessID, eventID); err != nil {
		return nil, err
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range common.SanitizeFields(fields) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	updates = append(updates, firestore.Update{Path: updatedAtField, Value: firestore.ServerTimestamp})

	if _, err := d.GetRef(ctx, eventID).Update(ctx, updates); err != nil {
		return nil, err
	}

	return d.Get(ctx, businessID, eventID)
}

func (d *EventsFirestore) Delete(ctx context.Context, businessID, eventID string) error {
	if _, err := d.Get(ctx, businessID, eventID); err != nil {
		return err
	}

	_, err := d.GetRef(ctx, eventID).Delete(ctx)

	return err
}
