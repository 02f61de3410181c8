package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCanceled  EventStatus = "canceled"
	EventCompleted EventStatus = "completed"
)

var eventTypes = map[string]struct{}{
	"concert": {}, "wedding": {}, "corporate": {},
	"festival": {}, "private": {}, "other": {},
}

// ValidEventType reports whether t is a known event type.
func ValidEventType(t string) bool {
	_, ok := eventTypes[t]
	return ok
}

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// Location is the venue address of an event.
type Location struct {
	Address     string       `json:"address" bson:"address"`
	City        string       `json:"city" bson:"city"`
	State       string       `json:"state" bson:"state"`
	Country     string       `json:"country" bson:"country"`
	ZipCode     string       `json:"zipCode" bson:"zipCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// Event is owned by its organizer (a user). Duration is in hours.
type Event struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Organizer      primitive.ObjectID `json:"organizer" bson:"organizer"`
	EventType      string             `json:"eventType" bson:"eventType"`
	Date           time.Time          `json:"date" bson:"date"`
	Duration       float64            `json:"duration" bson:"duration"`
	Location       Location           `json:"location" bson:"location"`
	Budget         float64            `json:"budget" bson:"budget"`
	RequiredGenres []string           `json:"requiredGenres,omitempty" bson:"requiredGenres,omitempty"`
	Status         EventStatus        `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
