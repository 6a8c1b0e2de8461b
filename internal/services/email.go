package services

import (
	"context"
	"fmt"
	"log"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome message data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	log.Printf("[EMAIL] Welcome email sent to %s", data.Email)
	return nil
}

// SendAnnouncement sends an organizer broadcast using the "announcement" template.
func (s *emailService) SendAnnouncement(ctx context.Context, to string, data *domain.AnnouncementEmailData) error {
	if data == nil {
		return fmt.Errorf("announcement email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("announcement", data)
	if err != nil {
		return fmt.Errorf("failed to render announcement template: %w", err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send announcement email: %w", err)
	}
	return nil
}
