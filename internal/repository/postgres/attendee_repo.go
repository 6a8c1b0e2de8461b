package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{
		DB: db,
	}
}

// CreateWithinCapacity admits the attendee under a serializable transaction.
// The event row is locked first, so concurrent RSVPs for the same event
// serialize on it and the count can never be read stale: an event with
// capacity C ends up with at most C attendee rows.
func (r *attendeeRepository) CreateWithinCapacity(ctx context.Context, eventID string, a *domain.Attendee) error {
	answers, err := marshalAnswers(a.Answers)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin admission tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	err = tx.QueryRowContext(ctx, `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendees WHERE event_id = $1`, eventID).Scan(&count); err != nil {
		return err
	}
	if count >= capacity {
		return domain.ErrCapacityExceeded
	}

	query := `
		INSERT INTO attendees (event_id, name, email, status, answers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, eventID, a.Name, a.Email, a.Status, answers, a.CreatedAt, a.UpdatedAt).Scan(&a.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *attendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := `
		SELECT id, event_id, name, email, status, payment_ref, answers, created_at, updated_at
		FROM attendees
		WHERE id = $1
	`
	return scanAttendee(r.DB.QueryRowContext(ctx, query, id))
}

func (r *attendeeRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	query := `
		SELECT id, event_id, name, email, status, payment_ref, answers, created_at, updated_at
		FROM attendees
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

// MarkPaid applies the guarded unpaid -> paid transition. The status guard in
// the WHERE clause makes concurrent confirmations race-safe: only one update
// can ever match.
func (r *attendeeRepository) MarkPaid(ctx context.Context, id, paymentRef string) (bool, error) {
	query := `
		UPDATE attendees
		SET status = $1, payment_ref = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`
	result, err := r.DB.ExecContext(ctx, query, domain.StatusPaid, paymentRef, id, domain.StatusUnpaid)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *attendeeRepository) CountByStatus(ctx context.Context, eventID string) (map[domain.AttendeeStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM attendees
		WHERE event_id = $1
		GROUP BY status
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[domain.AttendeeStatus]int)
	for rows.Next() {
		var status domain.AttendeeStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func scanAttendee(row rowScanner) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	var refNull sql.NullString
	var answersRaw []byte
	err := row.Scan(&a.ID, &a.EventID, &a.Name, &a.Email, &a.Status, &refNull, &answersRaw, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if refNull.Valid {
		a.PaymentRef = &refNull.String
	}
	if len(answersRaw) > 0 {
		if err := json.Unmarshal(answersRaw, &a.Answers); err != nil {
			return nil, fmt.Errorf("decode answers: %w", err)
		}
	}
	if a.Answers == nil {
		a.Answers = map[string]string{}
	}
	return a, nil
}

func marshalAnswers(answers map[string]string) ([]byte, error) {
	if answers == nil {
		answers = map[string]string{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	return raw, nil
}
