package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type messageService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
	messageRepo  domain.MessageRepository
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewMessageService creates a MessageService with the given repositories and mailer.
func NewMessageService(eventRepo domain.EventRepository, attendeeRepo domain.AttendeeRepository, messageRepo domain.MessageRepository, emailService domain.EmailService, logger *slog.Logger) domain.MessageService {
	return &messageService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		messageRepo:  messageRepo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *messageService) PostMessage(ctx context.Context, eventID string, msg *domain.Message) (*domain.Message, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	msg.SenderName = strings.TrimSpace(msg.SenderName)
	msg.Body = strings.TrimSpace(msg.Body)
	if msg.SenderName == "" {
		msg.SenderName = "Guest"
	}
	if msg.Body == "" {
		return nil, fmt.Errorf("%w: body is required", domain.ErrInvalidInput)
	}

	msg.EventID = eventID
	msg.CreatedAt = time.Now()
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

func (s *messageService) ListMessages(ctx context.Context, eventID string) ([]*domain.Message, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	messages, err := s.messageRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}

// Broadcast emails every attendee of the event and appends the announcement
// to the board. Failures for individual recipients are collected, not fatal.
func (s *messageService) Broadcast(ctx context.Context, eventID, ownerID, subject, body string) (*domain.BroadcastResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)
	if subject == "" || body == "" {
		return nil, fmt.Errorf("%w: subject and body are required", domain.ErrInvalidInput)
	}

	attendees, err := s.attendeeRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	result := &domain.BroadcastResult{Failed: []string{}}
	for _, a := range attendees {
		data := &domain.AnnouncementEmailData{
			EventName:    event.Name,
			AttendeeName: a.Name,
			Subject:      subject,
			Body:         body,
		}
		if err := s.emailService.SendAnnouncement(ctx, a.Email, data); err != nil {
			s.logger.WarnContext(ctx, "failed to send announcement", "event_id", eventID, "to", a.Email, "err", err)
			result.Failed = append(result.Failed, a.Email)
			continue
		}
		result.Sent++
	}

	msg := domain.NewMessage(eventID, "Organizer", subject+"\n\n"+body, time.Now())
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("record announcement: %w", err)
	}
	return result, nil
}
