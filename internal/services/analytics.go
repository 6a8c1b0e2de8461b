package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type analyticsService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
}

// NewAnalyticsService creates an AnalyticsService with the given repositories.
func NewAnalyticsService(eventRepo domain.EventRepository, attendeeRepo domain.AttendeeRepository) domain.AnalyticsService {
	return &analyticsService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
	}
}

// Summarize derives counts and revenue from current attendee state. Pure
// read, recomputed per call. Revenue is paid count times ticket price for
// paid events and always zero for free ones.
func (s *analyticsService) Summarize(ctx context.Context, eventID, callerID string) (*domain.EventSummary, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	counts, err := s.attendeeRepo.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count attendees: %w", err)
	}

	summary := &domain.EventSummary{
		EventID:        event.ID,
		PaidCount:      counts[domain.StatusPaid],
		UnpaidCount:    counts[domain.StatusUnpaid],
		ConfirmedCount: counts[domain.StatusConfirmed],
		WaitlistCount:  counts[domain.StatusWaitlist],
		Capacity:       event.Capacity,
		EventDate:      event.Date,
	}
	for _, n := range counts {
		summary.Total += n
	}
	if event.PaymentRequired {
		summary.Revenue = int64(summary.PaidCount) * event.TicketPrice
	}
	return summary, nil
}
