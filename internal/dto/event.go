package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

type EventType string

const (
	EventTypeCreate EventType = "CREATE"
	EventTypeDelete EventType = "DELETE"
)

const (
	TopicProducts        = "products"
	TopicRecommendations = "recommendations"
	TopicReviews         = "reviews"
)

// Event is the command record carried on a topic. Data is null for DELETE.
// EventID is a ULID assigned once at creation and kept across redeliveries.
type Event struct {
	EventID        string          `json:"eventId,omitempty"`
	EventType      EventType       `json:"eventType"`
	Key            int             `json:"key"`
	Data           json.RawMessage `json:"data"`
	EventCreatedAt time.Time       `json:"eventCreatedAt"`
}

func NewCreateEvent(key int, data interface{}) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal event data: %w", err)
	}

	return Event{
		EventID:        ulid.Make().String(),
		EventType:      EventTypeCreate,
		Key:            key,
		Data:           raw,
		EventCreatedAt: time.Now().UTC(),
	}, nil
}

func NewDeleteEvent(key int) Event {
	return Event{
		EventID:        ulid.Make().String(),
		EventType:      EventTypeDelete,
		Key:            key,
		Data:           json.RawMessage("null"),
		EventCreatedAt: time.Now().UTC(),
	}
}

// DecodeData unmarshals the payload of a CREATE event into v.
func (e Event) DecodeData(v interface{}) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return fmt.Errorf("event %s for key %d has no data", e.EventType, e.Key)
	}
	return json.Unmarshal(e.Data, v)
}
