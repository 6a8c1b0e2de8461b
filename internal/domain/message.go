package domain

import (
	"context"
	"time"
)

// Message is an append-only note on an event's board.
// swagger:model Message
type Message struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	SenderName string    `json:"sender_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewMessage returns a new Message. ID is typically set by the repository on create.
func NewMessage(eventID, senderName, body string, createdAt time.Time) *Message {
	return &Message{
		EventID:    eventID,
		SenderName: senderName,
		Body:       body,
		CreatedAt:  createdAt,
	}
}

// MessageRepository defines storage operations for event messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	ListByEventID(ctx context.Context, eventID string) ([]*Message, error)
}

// BroadcastResult reports how a broadcast went per recipient.
type BroadcastResult struct {
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}

// MessageService posts messages to an event board and broadcasts organizer
// announcements to attendees by email.
type MessageService interface {
	PostMessage(ctx context.Context, eventID string, msg *Message) (*Message, error)
	ListMessages(ctx context.Context, eventID string) ([]*Message, error)
	// Broadcast emails all attendees of the event and appends the
	// announcement to the board. Owner-only.
	Broadcast(ctx context.Context, eventID, ownerID, subject, body string) (*BroadcastResult, error)
}
