package postgres

import (
	"context"
	"database/sql"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type recapPhotoRepository struct {
	DB *sql.DB
}

func NewRecapPhotoRepository(db *sql.DB) domain.RecapPhotoRepository {
	return &recapPhotoRepository{
		DB: db,
	}
}

func (r *recapPhotoRepository) Create(ctx context.Context, photo *domain.RecapPhoto) error {
	query := `
		INSERT INTO recap_photos (event_id, object_key, url, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, photo.EventID, photo.ObjectKey, photo.URL, photo.UploadedBy, photo.CreatedAt).Scan(&photo.ID)
}

func (r *recapPhotoRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.RecapPhoto, error) {
	query := `
		SELECT id, event_id, object_key, url, uploaded_by, created_at
		FROM recap_photos
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	photos := make([]*domain.RecapPhoto, 0)
	for rows.Next() {
		p := &domain.RecapPhoto{}
		if err := rows.Scan(&p.ID, &p.EventID, &p.ObjectKey, &p.URL, &p.UploadedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
