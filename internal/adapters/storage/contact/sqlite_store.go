package contact

import (
	"context"
	"database/sql"
	"fmt"

	"zawiya/internal/adapters/storage"
	domain "zawiya/internal/domain/contact"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new contact store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append persists a message.
// PRE: value has been validated
// POST: Message is inserted; returns the assigned sequence number
func (s *SQLiteStore) Append(ctx context.Context, value domain.Message) (int, error) {
	query := `INSERT INTO contact_message (name, email, phone, subject, body, submitted_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query,
		value.Name, value.Email, value.Phone, value.Subject,
		value.Body, value.SubmittedAt, value.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contact seq: %w", err)
	}
	return int(seq), nil
}

// All returns every message in insertion order.
func (s *SQLiteStore) All(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT seq, name, email, phone, subject, body, submitted_at, status FROM contact_message ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var entity domain.Message
		var phone sql.NullString
		if err := rows.Scan(
			&entity.Seq, &entity.Name, &entity.Email, &phone,
			&entity.Subject, &entity.Body, &entity.SubmittedAt, &entity.Status,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if phone.Valid {
			entity.Phone = phone.String
		}
		messages = append(messages, entity)
	}
	return messages, rows.Err()
}

// Count returns the total number of messages.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_message").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}
