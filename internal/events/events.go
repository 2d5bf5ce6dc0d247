// Package events publishes notifications about successful mutations.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Type is the routing key of an event.
type Type string

const (
	EntryCreated       Type = "entry.created"
	CategoryChanged    Type = "category.changed"
	ResponsibleChanged Type = "responsible.changed"
	TagChanged         Type = "tag.changed"
	GoalChanged        Type = "goal.changed"
	UserCreated        Type = "user.created"
)

// Operation values carried in Event.Operation for *.changed events.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// Event is the message body sent to subscribers. It carries identifiers only,
// consumers fetch the current state themselves.
type Event struct {
	Type       Type      `json:"type"`
	Operation  string    `json:"operation,omitempty"`
	EntityID   string    `json:"entityID"`
	ActorID    string    `json:"actorID"`
	OccurredAt time.Time `json:"occurredAt"`
}

// New builds an event stamped with the current time.
func New(t Type, op, entityID, actorID string) Event {
	return Event{Type: t, Operation: op, EntityID: entityID, ActorID: actorID, OccurredAt: time.Now().UTC()}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
