package domain

import (
	"context"
	"io"
	"time"
)

// RecapPhoto is a photo uploaded after an event. Append-only.
// swagger:model RecapPhoto
type RecapPhoto struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	ObjectKey  string    `json:"object_key"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRecapPhoto returns a new RecapPhoto. ID is typically set by the repository on create.
func NewRecapPhoto(eventID, objectKey, url, uploadedBy string, createdAt time.Time) *RecapPhoto {
	return &RecapPhoto{
		EventID:    eventID,
		ObjectKey:  objectKey,
		URL:        url,
		UploadedBy: uploadedBy,
		CreatedAt:  createdAt,
	}
}

// RecapPhotoRepository defines storage operations for recap photo records.
type RecapPhotoRepository interface {
	Create(ctx context.Context, photo *RecapPhoto) error
	ListByEventID(ctx context.Context, eventID string) ([]*RecapPhoto, error)
}

// PhotoStore uploads photo blobs to object storage and returns a public URL.
// The disabled variant returns ErrStorageDisabled.
type PhotoStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (url string, err error)
	Enabled() bool
}

// RecapService stores recap photos for an event. Upload is owner-only.
type RecapService interface {
	UploadPhoto(ctx context.Context, eventID, ownerID, filename, contentType string, body io.Reader) (*RecapPhoto, error)
	ListPhotos(ctx context.Context, eventID string) ([]*RecapPhoto, error)
}
