package contentgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type fallbackGenerator struct{}

// NewFallbackGenerator returns the ContentGenerator used when no
// text-generation API is configured. Output is deterministic: the event's
// name, date, and location recombined into templated copy.
func NewFallbackGenerator() domain.ContentGenerator {
	return &fallbackGenerator{}
}

func (f *fallbackGenerator) Improve(ctx context.Context, event *domain.Event, draft string) (string, domain.PromoSource, error) {
	draft = strings.TrimSpace(draft)
	if draft == "" {
		draft = event.Description
	}
	parts := []string{fmt.Sprintf("Join us for %s.", event.Name)}
	if draft != "" {
		parts = append(parts, draft)
	}
	if event.Location != "" {
		parts = append(parts, fmt.Sprintf("Taking place at %s.", event.Location))
	}
	if event.Date != nil {
		parts = append(parts, fmt.Sprintf("Mark your calendar: %s.", formatDate(event)))
	}
	return strings.Join(parts, " "), domain.PromoSourceFallback, nil
}

func (f *fallbackGenerator) Promote(ctx context.Context, event *domain.Event) ([]string, domain.PromoSource, error) {
	where := event.Location
	if where == "" {
		where = "a venue near you"
	}
	variants := []string{
		fmt.Sprintf("%s is happening %s at %s. Save your spot!", event.Name, formatDate(event), where),
		fmt.Sprintf("Don't miss %s — %s, %s. RSVP now.", event.Name, formatDate(event), where),
		fmt.Sprintf("You're invited: %s at %s. See you %s!", event.Name, where, formatDate(event)),
	}
	return variants, domain.PromoSourceFallback, nil
}
