package domain

import (
	"context"
	"time"
)

// Question is an organizer-defined form field attached to an event's RSVP form.
// The order of the slice is the display order.
// swagger:model Question
type Question struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Event represents an organizer-created event
// swagger:model Event
type Event struct {
	ID                  string     `json:"id"`
	OwnerID             string     `json:"owner_id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Date                *time.Time `json:"date"`
	Location            string     `json:"location"`
	Capacity            int        `json:"capacity"`
	PaymentRequired     bool       `json:"payment_required"`
	TicketPrice         int64      `json:"ticket_price"` // minor units; ignored when PaymentRequired is false
	PaymentInstructions string     `json:"payment_instructions"`
	Questions           []Question `json:"questions"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(ownerID, name string, capacity int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		OwnerID:   ownerID,
		Name:      name,
		Capacity:  capacity,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Event, error)
}

// EventService defines organizer-facing event operations.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	ListMyEvents(ctx context.Context, ownerID string) ([]*Event, error)
}
