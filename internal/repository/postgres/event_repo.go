package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	questions, err := marshalQuestions(e.Questions)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (owner_id, name, description, date, location, capacity, payment_required, ticket_price, payment_instructions, questions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.OwnerID, e.Name, e.Description, e.Date, e.Location, e.Capacity,
		e.PaymentRequired, e.TicketPrice, e.PaymentInstructions, questions,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, owner_id, name, description, date, location, capacity, payment_required, ticket_price, payment_instructions, questions, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	return scanEvent(r.DB.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	query := `
		SELECT id, owner_id, name, description, date, location, capacity, payment_required, ticket_price, payment_instructions, questions, created_at, updated_at
		FROM events
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var dateNull sql.NullTime
	var descNull, locNull, instrNull sql.NullString
	var questionsRaw []byte
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Name, &descNull, &dateNull, &locNull, &e.Capacity,
		&e.PaymentRequired, &e.TicketPrice, &instrNull, &questionsRaw,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if descNull.Valid {
		e.Description = descNull.String
	}
	if dateNull.Valid {
		e.Date = &dateNull.Time
	}
	if locNull.Valid {
		e.Location = locNull.String
	}
	if instrNull.Valid {
		e.PaymentInstructions = instrNull.String
	}
	if len(questionsRaw) > 0 {
		if err := json.Unmarshal(questionsRaw, &e.Questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
	}
	if e.Questions == nil {
		e.Questions = []domain.Question{}
	}
	return e, nil
}

func marshalQuestions(qs []domain.Question) ([]byte, error) {
	if qs == nil {
		qs = []domain.Question{}
	}
	raw, err := json.Marshal(qs)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}
	return raw, nil
}
