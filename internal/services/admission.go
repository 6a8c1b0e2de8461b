package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

var attendeeEmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type admissionService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
}

// NewAdmissionService creates an AdmissionService with the given repositories.
func NewAdmissionService(eventRepo domain.EventRepository, attendeeRepo domain.AttendeeRepository) domain.AdmissionService {
	return &admissionService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
	}
}

// Admit decides and records the guest's admission. Initial status follows the
// event's payment flag: confirmed for free events, unpaid for paid ones. The
// capacity check and the insert run in one transaction inside the repository,
// so a failed admission never leaves a row behind.
func (s *admissionService) Admit(ctx context.Context, eventID string, a *domain.Attendee) (*domain.AdmissionResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(strings.ToLower(a.Email))
	if a.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !attendeeEmailRegexp.MatchString(a.Email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	for _, q := range event.Questions {
		if q.Required && strings.TrimSpace(a.Answers[q.ID]) == "" {
			return nil, fmt.Errorf("%w: answer to %q is required", domain.ErrInvalidInput, q.Label)
		}
	}

	if event.PaymentRequired {
		a.Status = domain.StatusUnpaid
	} else {
		a.Status = domain.StatusConfirmed
	}

	now := time.Now()
	a.EventID = event.ID
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.attendeeRepo.CreateWithinCapacity(ctx, event.ID, a); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create attendee: %w", err)
	}

	return &domain.AdmissionResult{
		AttendeeID: a.ID,
		Status:     a.Status,
	}, nil
}

func (s *admissionService) ListAttendees(ctx context.Context, eventID, callerID string) ([]*domain.Attendee, error) {
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
	attendees, err := s.attendeeRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	if attendees == nil {
		attendees = []*domain.Attendee{}
	}
	return attendees, nil
}
