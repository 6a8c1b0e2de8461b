package postgres

import (
	"context"
	"database/sql"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type messageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) domain.MessageRepository {
	return &messageRepository{
		DB: db,
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (event_id, sender_name, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, msg.EventID, msg.SenderName, msg.Body, msg.CreatedAt).Scan(&msg.ID)
}

func (r *messageRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Message, error) {
	query := `
		SELECT id, event_id, sender_name, body, created_at
		FROM messages
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	messages := make([]*domain.Message, 0)
	for rows.Next() {
		msg := &domain.Message{}
		if err := rows.Scan(&msg.ID, &msg.EventID, &msg.SenderName, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
