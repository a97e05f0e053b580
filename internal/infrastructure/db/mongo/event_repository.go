package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

const (
	collectionEvents    = "events"
	collectionAttendees = "attendees"
)

// EventRepository is the MongoDB-backed implementation of
// ports.EventRepository. Access scoping is enforced in the queries
// themselves: a user only ever sees events their attendance rows point at.
type EventRepository struct {
	events    *mongo.Collection
	attendees *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		events:    db.Collection(collectionEvents),
		attendees: db.Collection(collectionAttendees),
	}
}

type eventDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	MenuID      string             `bson:"menu_id,omitempty"`
	Name        string             `bson:"name"`
	Date        time.Time          `bson:"date"`
	Time        string             `bson:"time"`
	Description string             `bson:"description,omitempty"`
	Deadline    time.Time          `bson:"deadline"`
	AddressID   string             `bson:"address_id,omitempty"`
	HostID      string             `bson:"host_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID.Hex(),
		MenuID:      d.MenuID,
		Name:        d.Name,
		Date:        d.Date,
		Time:        d.Time,
		Description: d.Description,
		Deadline:    d.Deadline,
		AddressID:   d.AddressID,
		HostID:      d.HostID,
		CreatedAt:   d.CreatedAt,
	}
}

func eventToDoc(e *domain.Event) eventDoc {
	return eventDoc{
		MenuID:      e.MenuID,
		Name:        e.Name,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Deadline:    e.Deadline,
		AddressID:   e.AddressID,
		HostID:      e.HostID,
		CreatedAt:   e.CreatedAt,
	}
}

type attendeeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EventID     string             `bson:"event_id"`
	UserID      string             `bson:"user_id"`
	IsHost      bool               `bson:"is_host"`
	IsAttending bool               `bson:"is_attending"`
	FirstName   string             `bson:"first_name,omitempty"`
	LastName    string             `bson:"last_name,omitempty"`
	AdultGuests int                `bson:"adult_guests"`
	ChildGuests int                `bson:"child_guests"`
}

func (d attendeeDoc) toDomain() domain.Attendee {
	return domain.Attendee{
		ID:          d.ID.Hex(),
		EventID:     d.EventID,
		UserID:      d.UserID,
		IsHost:      d.IsHost,
		IsAttending: d.IsAttending,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		AdultGuests: d.AdultGuests,
		ChildGuests: d.ChildGuests,
	}
}

// ListForUser returns every event the user has an attendance row for.
func (r *EventRepository) ListForUser(ctx context.Context, userID string) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.attendees.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	var rows []attendeeDoc
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		oid, err := primitive.ObjectIDFromHex(row.EventID)
		if err != nil {
			continue
		}
		ids = append(ids, oid)
	}
	if len(ids) == 0 {
		return []domain.Event{}, nil
	}

	cur, err = r.events.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]domain.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, *doc.toDomain())
	}
	return events, nil
}

// Create inserts the event document plus the host's attendance row.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event, host *domain.Attendee) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.events.InsertOne(ctx, eventToDoc(event))
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)

	hostDoc := attendeeDoc{
		EventID:     oid.Hex(),
		UserID:      host.UserID,
		IsHost:      true,
		IsAttending: host.IsAttending,
		FirstName:   host.FirstName,
		LastName:    host.LastName,
		AdultGuests: host.AdultGuests,
		ChildGuests: host.ChildGuests,
	}
	if _, err := r.attendees.InsertOne(ctx, hostDoc); err != nil {
		return nil, fmt.Errorf("insert host attendee: %w", err)
	}

	created := *event
	created.ID = oid.Hex()
	return &created, nil
}

// Get returns the event when userID has an attendance row for it.
func (r *EventRepository) Get(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.requireMembership(ctx, eventID, userID, false); err != nil {
		return nil, err
	}
	return r.findEvent(ctx, eventID)
}

// Update replaces the event's mutable fields when userID hosts it and
// returns the document as it was before the update.
func (r *EventRepository) Update(ctx context.Context, eventID, userID string, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.requireMembership(ctx, eventID, userID, true); err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	update := bson.M{"$set": bson.M{
		"menu_id":     event.MenuID,
		"name":        event.Name,
		"date":        event.Date,
		"time":        event.Time,
		"description": event.Description,
		"deadline":    event.Deadline,
		"address_id":  event.AddressID,
	}}

	var old eventDoc
	err = r.events.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update).Decode(&old)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return old.toDomain(), nil
}

// Delete removes the event and all of its attendance rows when userID hosts
// it, returning the deleted event.
func (r *EventRepository) Delete(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.requireMembership(ctx, eventID, userID, true); err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var deleted eventDoc
	if err := r.events.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}
	if _, err := r.attendees.DeleteMany(ctx, bson.M{"event_id": eventID}); err != nil {
		return nil, fmt.Errorf("delete attendance: %w", err)
	}
	return deleted.toDomain(), nil
}

// ListAttendees returns the attendance rows of an event the user belongs to.
func (r *EventRepository) ListAttendees(ctx context.Context, eventID, userID string) ([]domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.requireMembership(ctx, eventID, userID, false); err != nil {
		return nil, err
	}

	cur, err := r.attendees.Find(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	var docs []attendeeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode attendees: %w", err)
	}

	attendees := make([]domain.Attendee, 0, len(docs))
	for _, doc := range docs {
		attendees = append(attendees, doc.toDomain())
	}
	return attendees, nil
}

// AddAttendee inserts an attendance row when userID hosts the event.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID string, attendee *domain.Attendee) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.requireMembership(ctx, eventID, userID, true); err != nil {
		return nil, err
	}

	doc := attendeeDoc{
		EventID:     eventID,
		UserID:      attendee.UserID,
		IsHost:      attendee.IsHost,
		IsAttending: attendee.IsAttending,
		FirstName:   attendee.FirstName,
		LastName:    attendee.LastName,
		AdultGuests: attendee.AdultGuests,
		ChildGuests: attendee.ChildGuests,
	}
	res, err := r.attendees.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert attendee: %w", err)
	}

	added := *attendee
	added.EventID = eventID
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		added.ID = oid.Hex()
	}
	return &added, nil
}

// EnsureIndexes creates the attendance indexes used by the scoped queries.
// The compound unique index doubles as a guard against double-adding a user.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.attendees.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// requireMembership checks that userID has an attendance row for the event,
// optionally requiring the host flag. Failure is always ErrEventNotFound so
// callers cannot probe for events they have no access to.
func (r *EventRepository) requireMembership(ctx context.Context, eventID, userID string, hostOnly bool) error {
	filter := bson.M{"event_id": eventID, "user_id": userID}
	if hostOnly {
		filter["is_host"] = true
	}
	if err := r.attendees.FindOne(ctx, filter).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("check membership: %w", err)
	}
	return nil
}

func (r *EventRepository) findEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}
	var doc eventDoc
	if err := r.events.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc.toDomain(), nil
}
