package student

import (
	"errors"
	"regexp"
)

// Business rule constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	// IDPrefix is the fixed prefix of every student identifier.
	IDPrefix = "STD"

	// GenderUnspecified is recorded when registration omits a gender.
	GenderUnspecified = "unspecified"

	// TimeFormat is the timestamp layout stored in the registration column.
	TimeFormat = "2006-01-02 15:04:05"
)

// idPattern matches STD followed by 8 uppercase hex characters.
var idPattern = regexp.MustCompile(`^STD[0-9A-F]{8}$`)

// Domain errors
var (
	ErrInvalidID = errors.New("student id must be STD followed by 8 uppercase hex characters")
)

// Record is one registered student. Records are append-only: once written
// they are never mutated or deleted.
type Record struct {
	Seq          int
	StudentID    string
	FirstName    string
	LastName     string
	Age          string
	Gender       string
	Address      string
	State        string
	Phone        string
	Email        string
	Program      string
	RegisteredAt string
	Status       string
}

// Validate checks the fields the registration service assigns itself.
// User-supplied fields are checked for presence only, at the intake
// boundary; any present value is stored as given.
// POST: Returns error if a service-assigned field is malformed, nil otherwise
// INVARIANT: StudentID matches the fixed ID format, Status is a known value
func (r *Record) Validate() error {
	if !idPattern.MatchString(r.StudentID) {
		return ErrInvalidID
	}
	if r.Status != StatusActive && r.Status != StatusInactive {
		return errors.New("status must be 'active' or 'inactive'")
	}
	return nil
}

// IsActive returns true if the student record is active.
// INVARIANT: Status field is not mutated
func (r *Record) IsActive() bool {
	return r.Status == StatusActive
}

// ValidID reports whether id matches the fixed student ID format.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}
