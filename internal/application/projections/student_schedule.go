package projections

import (
	"context"
	"errors"

	"zawiya/internal/adapters/qr"
	studentStore "zawiya/internal/adapters/storage/student"
	"zawiya/internal/domain/catalog"
	"zawiya/internal/domain/student"
)

// ErrStudentNotFound is returned when no record matches the requested ID.
var ErrStudentNotFound = errors.New("student not found")

// StudentScheduleDeps holds dependencies for the student schedule projection.
type StudentScheduleDeps struct {
	StudentStore StudentStore
	Schedule     ScheduleSource
}

// StudentScheduleResult carries the output of the student schedule projection.
type StudentScheduleResult struct {
	Student student.Record
	Entries []catalog.ScheduleEntry
	// QRCodes maps entry ID to the QR image filename generated at
	// registration time. Lookup only, nothing is regenerated here.
	QRCodes map[int]string
}

// QueryStudentSchedule resolves a student's applicable schedule entries and
// their QR filenames.
// POST: Entries keep declaration order; one QR filename per entry
func QueryStudentSchedule(ctx context.Context, studentID string, deps StudentScheduleDeps) (StudentScheduleResult, error) {
	rec, err := deps.StudentStore.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, studentStore.ErrNotFound) {
			return StudentScheduleResult{}, ErrStudentNotFound
		}
		return StudentScheduleResult{}, err
	}

	entries := deps.Schedule.ApplicableTo(rec.Program)
	codes := make(map[int]string, len(entries))
	for _, entry := range entries {
		codes[entry.ID] = qr.StudentFilename(entry.ID, rec.StudentID)
	}

	return StudentScheduleResult{Student: rec, Entries: entries, QRCodes: codes}, nil
}
