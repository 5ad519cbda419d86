package orchestrators

import (
	"context"

	studentStore "zawiya/internal/adapters/storage/student"
	"zawiya/internal/domain/student"
)

// StudentFilterer defines the store interface needed by email extraction.
type StudentFilterer interface {
	Filter(ctx context.Context, filter studentStore.Filter) ([]student.Record, error)
}

// ExtractEmailsInput carries input for the orchestrator. An empty or "all"
// program means no filter.
type ExtractEmailsInput struct {
	Program string
}

// ExtractEmailsDeps holds dependencies for ExtractEmails.
type ExtractEmailsDeps struct {
	StudentStore StudentFilterer
}

// ExecuteExtractEmails returns the email column of all student records,
// optionally restricted to one program.
// POST: Emails appear in record insertion order
func ExecuteExtractEmails(ctx context.Context, input ExtractEmailsInput, deps ExtractEmailsDeps) ([]string, error) {
	program := input.Program
	if program == "all" {
		program = ""
	}
	records, err := deps.StudentStore.Filter(ctx, studentStore.Filter{Program: program})
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(records))
	for _, r := range records {
		emails = append(emails, r.Email)
	}
	return emails, nil
}
