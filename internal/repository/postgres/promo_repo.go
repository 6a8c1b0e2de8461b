package postgres

import (
	"context"
	"database/sql"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type promoContentRepository struct {
	DB *sql.DB
}

func NewPromoContentRepository(db *sql.DB) domain.PromoContentRepository {
	return &promoContentRepository{
		DB: db,
	}
}

func (r *promoContentRepository) Create(ctx context.Context, pc *domain.PromoContent) error {
	query := `
		INSERT INTO promo_contents (event_id, kind, body, source, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, pc.EventID, pc.Kind, pc.Body, pc.Source, pc.CreatedAt).Scan(&pc.ID)
}

func (r *promoContentRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.PromoContent, error) {
	query := `
		SELECT id, event_id, kind, body, source, created_at
		FROM promo_contents
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	contents := make([]*domain.PromoContent, 0)
	for rows.Next() {
		pc := &domain.PromoContent{}
		if err := rows.Scan(&pc.ID, &pc.EventID, &pc.Kind, &pc.Body, &pc.Source, &pc.CreatedAt); err != nil {
			return nil, err
		}
		contents = append(contents, pc)
	}
	return contents, rows.Err()
}
