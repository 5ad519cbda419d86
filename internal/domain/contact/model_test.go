package contact_test

import (
	"testing"

	"zawiya/internal/domain/contact"
)

// TestMessageValidation tests validation of contact Message.
func TestMessageValidation(t *testing.T) {
	tests := []struct {
		name    string
		message contact.Message
		wantErr bool
	}{
		{
			name: "valid message",
			message: contact.Message{
				Seq:         1,
				Name:        "A",
				Email:       "a@b.c",
				Subject:     "S",
				Body:        "M",
				SubmittedAt: "2026-02-01 09:00:00",
				Status:      contact.StatusNew,
			},
			wantErr: false,
		},
		{
			name: "email without at sign is stored as given",
			message: contact.Message{
				Name:    "A",
				Email:   "nope",
				Subject: "S",
				Body:    "M",
				Status:  contact.StatusNew,
			},
			wantErr: false,
		},
		{
			name: "invalid status",
			message: contact.Message{
				Name:    "A",
				Email:   "a@b.c",
				Subject: "S",
				Body:    "M",
				Status:  "archived",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
