package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if event.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must be >= 0", domain.ErrInvalidInput)
	}
	if event.PaymentRequired && event.TicketPrice <= 0 {
		return nil, fmt.Errorf("%w: ticket price must be positive for paid events", domain.ErrInvalidInput)
	}
	if !event.PaymentRequired {
		// Price is meaningless for free events; never store one.
		event.TicketPrice = 0
	}

	for i := range event.Questions {
		event.Questions[i].Label = strings.TrimSpace(event.Questions[i].Label)
		if event.Questions[i].Label == "" {
			return nil, fmt.Errorf("%w: question label is required", domain.ErrInvalidInput)
		}
		if event.Questions[i].ID == "" {
			event.Questions[i].ID = uuid.NewString()
		}
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
