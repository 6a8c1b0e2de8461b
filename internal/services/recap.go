package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type recapService struct {
	eventRepo domain.EventRepository
	photoRepo domain.RecapPhotoRepository
	store     domain.PhotoStore
}

// NewRecapService creates a RecapService. The store may be the disabled
// variant, in which case uploads fail with ErrStorageDisabled.
func NewRecapService(eventRepo domain.EventRepository, photoRepo domain.RecapPhotoRepository, store domain.PhotoStore) domain.RecapService {
	return &recapService{
		eventRepo: eventRepo,
		photoRepo: photoRepo,
		store:     store,
	}
}

func (s *recapService) UploadPhoto(ctx context.Context, eventID, ownerID, filename, contentType string, body io.Reader) (*domain.RecapPhoto, error) {
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
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: only image uploads are accepted", domain.ErrInvalidInput)
	}

	key := fmt.Sprintf("recaps/%s/%s%s", eventID, uuid.NewString(), path.Ext(filename))
	url, err := s.store.Put(ctx, key, contentType, body)
	if err != nil {
		if errors.Is(err, domain.ErrStorageDisabled) {
			return nil, domain.ErrStorageDisabled
		}
		return nil, fmt.Errorf("store photo: %w", err)
	}

	photo := domain.NewRecapPhoto(eventID, key, url, ownerID, time.Now())
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("record photo: %w", err)
	}
	return photo, nil
}

func (s *recapService) ListPhotos(ctx context.Context, eventID string) ([]*domain.RecapPhoto, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	photos, err := s.photoRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	if photos == nil {
		photos = []*domain.RecapPhoto{}
	}
	return photos, nil
}
