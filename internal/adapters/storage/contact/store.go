package contact

import (
	"context"

	domain "zawiya/internal/domain/contact"
)

// Store persists contact Messages. Messages are append-only.
type Store interface {
	// Append persists a message, assigning and returning its sequence number.
	Append(ctx context.Context, value domain.Message) (int, error)
	// All returns every message in insertion order.
	All(ctx context.Context) ([]domain.Message, error)
	// Count returns the total number of messages.
	Count(ctx context.Context) (int, error)
}
