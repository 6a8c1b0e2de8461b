package domain

import (
	"context"
	"time"
)

// AttendeeStatus is the admission / payment state of an attendee.
// Unpaid and Paid apply to paid events, Confirmed to free events.
type AttendeeStatus string

const (
	StatusUnpaid    AttendeeStatus = "unpaid"
	StatusPaid      AttendeeStatus = "paid"
	StatusConfirmed AttendeeStatus = "confirmed"
	StatusWaitlist  AttendeeStatus = "waitlist"
)

// Attendee represents a guest admitted to an event.
// swagger:model Attendee
type Attendee struct {
	ID         string            `json:"id"`
	EventID    string            `json:"event_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Status     AttendeeStatus    `json:"status"`
	PaymentRef *string           `json:"payment_ref,omitempty"`
	Answers    map[string]string `json:"answers"` // question ID -> answer
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewAttendee returns a new Attendee. ID is typically set by the repository on create.
func NewAttendee(eventID, name, email string, status AttendeeStatus, answers map[string]string, createdAt, updatedAt time.Time) *Attendee {
	return &Attendee{
		EventID:   eventID,
		Name:      name,
		Email:     email,
		Status:    status,
		Answers:   answers,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// AttendeeRepository defines storage operations for attendees.
type AttendeeRepository interface {
	// CreateWithinCapacity inserts the attendee only if the event's current
	// attendee count (all statuses) is below capacity. The check and the
	// insert run in one serializable transaction that locks the event row,
	// so capacity is never oversold under concurrent RSVPs. Returns
	// ErrCapacityExceeded when the event is full.
	CreateWithinCapacity(ctx context.Context, eventID string, a *Attendee) error
	GetByID(ctx context.Context, id string) (*Attendee, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Attendee, error)
	// MarkPaid transitions the attendee to paid and records the payment
	// reference, but only from the unpaid state. Returns true when a row
	// was updated.
	MarkPaid(ctx context.Context, id, paymentRef string) (bool, error)
	// CountByStatus returns the attendee count per status for the event.
	CountByStatus(ctx context.Context, eventID string) (map[AttendeeStatus]int, error)
}

// AdmissionResult is what an RSVP yields: the new attendee's ID and its
// initial status.
type AdmissionResult struct {
	AttendeeID string         `json:"attendee_id"`
	Status     AttendeeStatus `json:"status"`
}

// AdmissionService decides and records whether an RSVP is admitted.
type AdmissionService interface {
	// Admit registers a guest for the event. Initial status is Confirmed for
	// free events and Unpaid for paid events. Fails with ErrNotFound when
	// the event is absent and ErrCapacityExceeded when it is full.
	Admit(ctx context.Context, eventID string, a *Attendee) (*AdmissionResult, error)
	ListAttendees(ctx context.Context, eventID, callerID string) ([]*Attendee, error)
}

// PaymentService records externally-confirmed payments against attendees.
type PaymentService interface {
	// CreateIntent asks the payment gateway for a payment intent covering the
	// attendee's ticket and returns the client secret.
	CreateIntent(ctx context.Context, attendeeID string) (*PaymentIntent, error)
	// ConfirmPayment applies the unpaid -> paid transition. Re-confirming a
	// paid attendee is an idempotent no-op; any other state fails with
	// ErrInvalidTransition.
	ConfirmPayment(ctx context.Context, attendeeID, paymentRef string) (*Attendee, error)
}

// EventSummary is the analytics view of an event's attendee state.
// swagger:model EventSummary
type EventSummary struct {
	EventID        string     `json:"event_id"`
	Total          int        `json:"total"`
	PaidCount      int        `json:"paid_count"`
	UnpaidCount    int        `json:"unpaid_count"`
	ConfirmedCount int        `json:"confirmed_count"`
	WaitlistCount  int        `json:"waitlist_count"`
	Revenue        int64      `json:"revenue"` // minor units
	Capacity       int        `json:"capacity"`
	EventDate      *time.Time `json:"event_date"`
}

// AnalyticsService derives summary counts and revenue from attendee state.
type AnalyticsService interface {
	Summarize(ctx context.Context, eventID, callerID string) (*EventSummary, error)
}
