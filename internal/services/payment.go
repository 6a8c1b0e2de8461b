package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type paymentService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
	gateway      domain.PaymentGateway
	currency     string
}

// NewPaymentService creates a PaymentService. The gateway may be the disabled
// variant, in which case CreateIntent fails with ErrPaymentsDisabled.
func NewPaymentService(eventRepo domain.EventRepository, attendeeRepo domain.AttendeeRepository, gateway domain.PaymentGateway, currency string) domain.PaymentService {
	return &paymentService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		gateway:      gateway,
		currency:     currency,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, attendeeID string) (*domain.PaymentIntent, error) {
	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	if attendee.Status != domain.StatusUnpaid {
		return nil, fmt.Errorf("%w: attendee is %s", domain.ErrInvalidTransition, attendee.Status)
	}

	event, err := s.eventRepo.GetByID(ctx, attendee.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.PaymentRequired || event.TicketPrice <= 0 {
		return nil, fmt.Errorf("%w: event is free", domain.ErrInvalidInput)
	}

	intent, err := s.gateway.CreateIntent(ctx, event.TicketPrice, s.currency)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentsDisabled) {
			return nil, domain.ErrPaymentsDisabled
		}
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return intent, nil
}

// ConfirmPayment applies unpaid -> paid exactly once. Confirming an attendee
// that is already paid succeeds without touching the stored payment
// reference, so gateway retries cannot double-process. Any other state is
// rejected.
func (s *paymentService) ConfirmPayment(ctx context.Context, attendeeID, paymentRef string) (*domain.Attendee, error) {
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return nil, fmt.Errorf("%w: payment reference is required", domain.ErrInvalidInput)
	}

	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	switch attendee.Status {
	case domain.StatusPaid:
		// Already confirmed; idempotent no-op.
		return attendee, nil
	case domain.StatusUnpaid:
		// Proceed with the guarded transition below.
	default:
		return nil, fmt.Errorf("%w: cannot confirm payment from %s", domain.ErrInvalidTransition, attendee.Status)
	}

	updated, err := s.attendeeRepo.MarkPaid(ctx, attendeeID, paymentRef)
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}
	if !updated {
		// Lost a race with a concurrent confirmation; re-read and treat an
		// already-paid attendee as success.
		attendee, err = s.attendeeRepo.GetByID(ctx, attendeeID)
		if err != nil {
			return nil, fmt.Errorf("get attendee after contested confirm: %w", err)
		}
		if attendee.Status == domain.StatusPaid {
			return attendee, nil
		}
		return nil, fmt.Errorf("%w: cannot confirm payment from %s", domain.ErrInvalidTransition, attendee.Status)
	}

	attendee.Status = domain.StatusPaid
	attendee.PaymentRef = &paymentRef
	return attendee, nil
}
