package student

import (
	"context"
	"errors"

	domain "zawiya/internal/domain/student"
)

// ErrNotFound is returned when no record matches a student ID.
var ErrNotFound = errors.New("student not found")

// Store persists student Records. Records are append-only: there is no
// update or delete.
type Store interface {
	// Append persists a record, assigning and returning its sequence number.
	Append(ctx context.Context, value domain.Record) (int, error)
	// All returns every record in insertion order.
	All(ctx context.Context) ([]domain.Record, error)
	// GetByStudentID returns the record with the given student ID or ErrNotFound.
	GetByStudentID(ctx context.Context, studentID string) (domain.Record, error)
	// Filter returns records matching the filter, in insertion order.
	Filter(ctx context.Context, filter Filter) ([]domain.Record, error)
	// Count returns the total number of records.
	Count(ctx context.Context) (int, error)
}

// Filter carries filtering parameters for Filter operations. Zero values
// match everything.
type Filter struct {
	Program string
	Status  string
}

// Matches reports whether a record satisfies the filter.
func (f Filter) Matches(r domain.Record) bool {
	if f.Program != "" && r.Program != f.Program {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}
