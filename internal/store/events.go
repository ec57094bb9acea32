package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"timecal/internal/model"
)

// eventDoc is the persisted shape of a calendar event. The engine-facing
// model keeps string IDs; the ObjectID stays a storage detail.
type eventDoc struct {
	ID            bson.ObjectID       `bson:"_id,omitempty"`
	Title         string              `bson:"title"`
	Start         *time.Time          `bson:"start,omitempty"`
	End           *time.Time          `bson:"end,omitempty"`
	RequestType   model.RequestType   `bson:"request_type,omitempty"`
	RequestStatus model.RequestStatus `bson:"request_status,omitempty"`
	AllDay        bool                `bson:"all_day"`
	Desc          string              `bson:"desc"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
}

func toDoc(e model.CalendarEvent) eventDoc {
	return eventDoc{
		Title:         e.Title,
		Start:         e.Start,
		End:           e.End,
		RequestType:   e.RequestType,
		RequestStatus: e.RequestStatus,
		AllDay:        e.AllDay,
		Desc:          e.Desc,
	}
}

func (d eventDoc) toModel() model.CalendarEvent {
	return model.CalendarEvent{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Start:         d.Start,
		End:           d.End,
		RequestType:   d.RequestType,
		RequestStatus: d.RequestStatus,
		AllDay:        d.AllDay,
		Desc:          d.Desc,
	}
}

// EventStore persists calendar events in MongoDB. It implements the
// calendar.EventService contract.
type EventStore struct {
	coll *mongo.Collection
}

func NewEventStore(ctx context.Context, db *MongoDB) (*EventStore, error) {
	coll := db.Collection("calendar_events")

	if _, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "start", Value: 1}}},
		{Keys: bson.D{{Key: "request_type", Value: 1}, {Key: "start", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("create calendar_events indexes: %w", err)
	}

	return &EventStore{coll: coll}, nil
}

// GetEvents returns all events ordered by start time.
func (s *EventStore) GetEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var docs []eventDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	events := make([]model.CalendarEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, d.toModel())
	}
	return events, nil
}

// CreateEvent inserts the event and returns it with its assigned identity.
func (s *EventStore) CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	doc := toDoc(event)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	if doc.RequestStatus == "" {
		doc.RequestStatus = model.RequestStatusPending
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("insert event: %w", err)
	}
	doc.ID = res.InsertedID.(bson.ObjectID)
	return doc.toModel(), nil
}

// EditEvent replaces the stored event identified by the event's ID.
func (s *EventStore) EditEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	id, err := bson.ObjectIDFromHex(event.ID)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("invalid event ID: %w", err)
	}
	doc := toDoc(event)
	doc.ID = id
	doc.UpdatedAt = time.Now()
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("replace event: %w", err)
	}
	return doc.toModel(), nil
}

// DeleteEvent removes the event. Deleting an unknown ID is not an error.
func (s *EventStore) DeleteEvent(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid event ID: %w", err)
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// GetEventByID returns the event or nil when not found.
func (s *EventStore) GetEventByID(ctx context.Context, id string) (*model.CalendarEvent, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID: %w", err)
	}
	var doc eventDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	event := doc.toModel()
	return &event, nil
}
