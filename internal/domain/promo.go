package domain

import (
	"context"
	"time"
)

// PromoKind distinguishes generated promo variants from improved descriptions.
type PromoKind string

const (
	PromoKindPromo       PromoKind = "promo"
	PromoKindDescription PromoKind = "description"
)

// PromoSource records whether content came from the AI collaborator or the
// deterministic fallback.
type PromoSource string

const (
	PromoSourceAI       PromoSource = "ai"
	PromoSourceFallback PromoSource = "fallback"
)

// PromoContent is a generated piece of promotional copy for an event.
// Append-only; regenerating adds new rows.
// swagger:model PromoContent
type PromoContent struct {
	ID        string      `json:"id"`
	EventID   string      `json:"event_id"`
	Kind      PromoKind   `json:"kind"`
	Body      string      `json:"body"`
	Source    PromoSource `json:"source"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewPromoContent returns a new PromoContent. ID is typically set by the repository on create.
func NewPromoContent(eventID string, kind PromoKind, body string, source PromoSource, createdAt time.Time) *PromoContent {
	return &PromoContent{
		EventID:   eventID,
		Kind:      kind,
		Body:      body,
		Source:    source,
		CreatedAt: createdAt,
	}
}

// PromoContentRepository defines storage operations for generated content.
type PromoContentRepository interface {
	Create(ctx context.Context, pc *PromoContent) error
	ListByEventID(ctx context.Context, eventID string) ([]*PromoContent, error)
}

// ContentGenerator produces event copy. The fallback variant recombines the
// event's name, date, and location deterministically; the AI variant calls
// an external text-generation API.
type ContentGenerator interface {
	// Improve rewrites a draft event description.
	Improve(ctx context.Context, event *Event, draft string) (text string, source PromoSource, err error)
	// Promote produces short promotional variants for the event.
	Promote(ctx context.Context, event *Event) (variants []string, source PromoSource, err error)
}

// ContentService generates and stores promotional content for events.
type ContentService interface {
	GeneratePromo(ctx context.Context, eventID, ownerID string) ([]*PromoContent, error)
	ImproveDescription(ctx context.Context, eventID, ownerID, draft string) (*PromoContent, error)
	ListContent(ctx context.Context, eventID, ownerID string) ([]*PromoContent, error)
}
