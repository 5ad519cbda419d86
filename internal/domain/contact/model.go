package contact

import (
	"errors"
)

// Business rule constants
const (
	StatusNew  = "new"
	StatusRead = "read"

	// TimeFormat is the timestamp layout stored in the date column.
	TimeFormat = "2006-01-02 15:04:05"
)

// Message is one contact-form submission. Messages are append-only and
// immutable after creation.
type Message struct {
	Seq         int
	Name        string
	Email       string
	Phone       string
	Subject     string
	Body        string
	SubmittedAt string
	Status      string
}

// Validate checks the fields the submission service assigns itself.
// User-supplied fields are checked for presence only, at the intake
// boundary; any present value is stored as given.
// POST: Returns error if the status is unknown, nil otherwise
func (m *Message) Validate() error {
	if m.Status != StatusNew && m.Status != StatusRead {
		return errors.New("status must be 'new' or 'read'")
	}
	return nil
}
