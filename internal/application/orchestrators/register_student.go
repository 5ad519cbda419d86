package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"zawiya/internal/adapters/qr"
	"zawiya/internal/domain/catalog"
	"zawiya/internal/domain/student"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// StudentAppender defines the store interface needed by registration.
type StudentAppender interface {
	Append(ctx context.Context, value student.Record) (int, error)
}

// ScheduleSource provides the schedule entries applicable to a program.
type ScheduleSource interface {
	ApplicableTo(program string) []catalog.ScheduleEntry
}

// QRWriter generates a QR image unless one already exists at the
// deterministic filename.
type QRWriter interface {
	GenerateIfMissing(data, filename string) error
}

// RegisterStudentInput carries input for the orchestrator. Field order
// matches the documented required-field order; validation reports the first
// missing field.
type RegisterStudentInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Age       string `json:"age" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Address   string `json:"address" validate:"required"`
	State     string `json:"state" validate:"required"`
	Program   string `json:"program" validate:"required"`
	Gender    string `json:"gender"`
}

// RegisterStudentDeps holds dependencies for RegisterStudent.
type RegisterStudentDeps struct {
	StudentStore StudentAppender
	Schedule     ScheduleSource
	QR           QRWriter
}

// NewStudentID generates a fresh student identifier: the fixed prefix plus
// the first 8 hex characters of a random UUID, uppercased.
func NewStudentID() string {
	return student.IDPrefix + strings.ToUpper(uuid.New().String()[:8])
}

// ExecuteRegisterStudent coordinates student registration.
// PRE: All required fields present (validated here)
// POST: Record persisted with status active; one QR image exists per
// applicable schedule entry
// INVARIANT: A failed validation persists nothing
func ExecuteRegisterStudent(ctx context.Context, input RegisterStudentInput, deps RegisterStudentDeps) (string, error) {
	if err := checkRequired(input); err != nil {
		return "", err
	}

	gender := input.Gender
	if gender == "" {
		gender = student.GenderUnspecified
	}

	rec := student.Record{
		StudentID:    NewStudentID(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Age:          input.Age,
		Gender:       gender,
		Address:      input.Address,
		State:        input.State,
		Phone:        input.Phone,
		Email:        input.Email,
		Program:      input.Program,
		RegisteredAt: timeNow().Format(student.TimeFormat),
		Status:       student.StatusActive,
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}

	seq, err := deps.StudentStore.Append(ctx, rec)
	if err != nil {
		return "", err
	}

	// QR generation happens after the record is persisted; an encoding
	// failure surfaces to the caller but does not roll the record back.
	for _, entry := range deps.Schedule.ApplicableTo(rec.Program) {
		filename := qr.StudentFilename(entry.ID, rec.StudentID)
		if err := deps.QR.GenerateIfMissing(entry.MeetLink, filename); err != nil {
			return "", err
		}
	}

	slog.Info("student_registered", "student_id", rec.StudentID, "program", rec.Program, "seq", seq)
	return rec.StudentID, nil
}
