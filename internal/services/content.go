package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type contentService struct {
	eventRepo domain.EventRepository
	promoRepo domain.PromoContentRepository
	generator domain.ContentGenerator
}

// NewContentService creates a ContentService. The generator is either the AI
// client or the deterministic fallback, chosen at startup.
func NewContentService(eventRepo domain.EventRepository, promoRepo domain.PromoContentRepository, generator domain.ContentGenerator) domain.ContentService {
	return &contentService{
		eventRepo: eventRepo,
		promoRepo: promoRepo,
		generator: generator,
	}
}

func (s *contentService) ownedEvent(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
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
	return event, nil
}

func (s *contentService) GeneratePromo(ctx context.Context, eventID, ownerID string) ([]*domain.PromoContent, error) {
	event, err := s.ownedEvent(ctx, eventID, ownerID)
	if err != nil {
		return nil, err
	}

	variants, source, err := s.generator.Promote(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("generate promo: %w", err)
	}

	now := time.Now()
	contents := make([]*domain.PromoContent, 0, len(variants))
	for _, v := range variants {
		pc := domain.NewPromoContent(eventID, domain.PromoKindPromo, v, source, now)
		if err := s.promoRepo.Create(ctx, pc); err != nil {
			return nil, fmt.Errorf("store promo content: %w", err)
		}
		contents = append(contents, pc)
	}
	return contents, nil
}

func (s *contentService) ImproveDescription(ctx context.Context, eventID, ownerID, draft string) (*domain.PromoContent, error) {
	event, err := s.ownedEvent(ctx, eventID, ownerID)
	if err != nil {
		return nil, err
	}

	text, source, err := s.generator.Improve(ctx, event, draft)
	if err != nil {
		return nil, fmt.Errorf("improve description: %w", err)
	}

	pc := domain.NewPromoContent(eventID, domain.PromoKindDescription, text, source, time.Now())
	if err := s.promoRepo.Create(ctx, pc); err != nil {
		return nil, fmt.Errorf("store description: %w", err)
	}
	return pc, nil
}

func (s *contentService) ListContent(ctx context.Context, eventID, ownerID string) ([]*domain.PromoContent, error) {
	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return nil, err
	}
	contents, err := s.promoRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list promo content: %w", err)
	}
	if contents == nil {
		contents = []*domain.PromoContent{}
	}
	return contents, nil
}
