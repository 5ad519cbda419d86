package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	emailAdapter "zawiya/internal/adapters/email"
	"zawiya/internal/domain/contact"
)

// ContactAppender defines the store interface needed by contact submission.
type ContactAppender interface {
	Append(ctx context.Context, value contact.Message) (int, error)
}

// SubmitContactInput carries input for the orchestrator.
type SubmitContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactAppender
	Sender       emailAdapter.Sender // optional; nil disables notification
	NotifyTo     string
	From         string
}

// ExecuteSubmitContact persists a contact message and notifies the school
// address. Notification failures are logged, never surfaced: the message is
// already stored.
// PRE: name, email, subject and message present (validated here)
// POST: Message persisted with status new
func ExecuteSubmitContact(ctx context.Context, input SubmitContactInput, deps SubmitContactDeps) (int, error) {
	if err := checkRequired(input); err != nil {
		return 0, err
	}

	msg := contact.Message{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Subject:     input.Subject,
		Body:        input.Message,
		SubmittedAt: timeNow().Format(contact.TimeFormat),
		Status:      contact.StatusNew,
	}
	if err := msg.Validate(); err != nil {
		return 0, err
	}

	seq, err := deps.ContactStore.Append(ctx, msg)
	if err != nil {
		return 0, err
	}

	if deps.Sender != nil && deps.NotifyTo != "" {
		req := emailAdapter.SendRequest{
			To:      []string{deps.NotifyTo},
			From:    deps.From,
			Subject: "New contact message: " + msg.Subject,
			HTML: fmt.Sprintf("<p>From: %s &lt;%s&gt;</p><p>%s</p>",
				html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Body)),
			ReplyTo: msg.Email,
		}
		if _, err := deps.Sender.Send(ctx, req); err != nil {
			slog.Error("contact_notify_failed", "error", err, "seq", seq)
		}
	}

	slog.Info("contact_submitted", "seq", seq, "subject", msg.Subject)
	return seq, nil
}
