package orchestrators

import (
	"context"
	"errors"
	"testing"

	emailAdapter "zawiya/internal/adapters/email"
	"zawiya/internal/domain/contact"
)

// --- Mock contact store ---

type mockContactStore struct {
	messages []contact.Message
}

// Append implements the contact appender for testing.
// POST: Message stored in slice
func (m *mockContactStore) Append(_ context.Context, value contact.Message) (int, error) {
	value.Seq = len(m.messages) + 1
	m.messages = append(m.messages, value)
	return value.Seq, nil
}

// --- Mock email sender ---

type mockSender struct {
	sent     []emailAdapter.SendRequest
	failWith error
}

// Send implements the sender for testing.
func (m *mockSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	if m.failWith != nil {
		return emailAdapter.SendResult{}, m.failWith
	}
	m.sent = append(m.sent, req)
	return emailAdapter.SendResult{MessageID: "test"}, nil
}

// TestExecuteSubmitContact tests persistence plus notification.
func TestExecuteSubmitContact(t *testing.T) {
	store := &mockContactStore{}
	sender := &mockSender{}
	deps := SubmitContactDeps{
		ContactStore: store,
		Sender:       sender,
		NotifyTo:     "info@zawiya-tijania.dz",
		From:         "noreply@zawiya-tijania.dz",
	}

	seq, err := ExecuteSubmitContact(context.Background(), SubmitContactInput{
		Name:    "A",
		Email:   "a@b.c",
		Subject: "S",
		Message: "M",
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteSubmitContact failed: %v", err)
	}
	if seq != 1 {
		t.Errorf("seq = %d, want 1", seq)
	}
	if len(store.messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(store.messages))
	}
	if store.messages[0].Status != contact.StatusNew {
		t.Errorf("status = %q, want new", store.messages[0].Status)
	}
	if len(sender.sent) != 1 || sender.sent[0].To[0] != "info@zawiya-tijania.dz" {
		t.Errorf("unexpected notification: %+v", sender.sent)
	}
}

// TestExecuteSubmitContactMissingField tests validation naming the field.
func TestExecuteSubmitContactMissingField(t *testing.T) {
	store := &mockContactStore{}
	deps := SubmitContactDeps{ContactStore: store}

	_, err := ExecuteSubmitContact(context.Background(), SubmitContactInput{
		Name:  "A",
		Email: "a@b.c",
		// subject and message absent
	}, deps)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "subject" {
		t.Errorf("reported field = %q, want subject", verr.Field)
	}
	if len(store.messages) != 0 {
		t.Error("failed validation must persist nothing")
	}
}

// TestExecuteSubmitContactNotifyFailureIsSilent tests that a failed
// notification does not fail the submission.
func TestExecuteSubmitContactNotifyFailureIsSilent(t *testing.T) {
	store := &mockContactStore{}
	deps := SubmitContactDeps{
		ContactStore: store,
		Sender:       &mockSender{failWith: errors.New("provider down")},
		NotifyTo:     "info@zawiya-tijania.dz",
	}

	if _, err := ExecuteSubmitContact(context.Background(), SubmitContactInput{
		Name:    "A",
		Email:   "a@b.c",
		Subject: "S",
		Message: "M",
	}, deps); err != nil {
		t.Fatalf("submission must succeed despite notify failure: %v", err)
	}
	if len(store.messages) != 1 {
		t.Error("message must be persisted")
	}
}
