package projections

import (
	"context"

	"zawiya/internal/domain/catalog"
	"zawiya/internal/domain/student"
)

// StudentStore interface for student queries.
type StudentStore interface {
	All(ctx context.Context) ([]student.Record, error)
	GetByStudentID(ctx context.Context, id string) (student.Record, error)
}

// ScheduleSource interface for schedule queries.
type ScheduleSource interface {
	ApplicableTo(program string) []catalog.ScheduleEntry
}
