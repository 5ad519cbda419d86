package orchestrators

import (
	"context"
	"log/slog"

	"zawiya/internal/adapters/qr"
	"zawiya/internal/domain/catalog"
)

// ScheduleMutator mutates the in-memory schedule table.
type ScheduleMutator interface {
	UpdateMeetLink(id int, link string) (catalog.ScheduleEntry, error)
}

// QRRegenerator always rewrites the QR image, overwriting any existing file.
type QRRegenerator interface {
	Generate(data, filename string) error
}

// UpdateScheduleLinkInput carries input for the orchestrator.
type UpdateScheduleLinkInput struct {
	ID       int
	MeetLink string
}

// UpdateScheduleLinkDeps holds dependencies for UpdateScheduleLink.
type UpdateScheduleLinkDeps struct {
	Schedule ScheduleMutator
	QR       QRRegenerator
}

// ExecuteUpdateScheduleLink overwrites one entry's meet link and regenerates
// its QR image under the fixed updated filename.
// PRE: MeetLink is non-empty
// POST: Exactly one entry mutated and exactly one QR image rewritten;
// unknown id mutates nothing
func ExecuteUpdateScheduleLink(ctx context.Context, input UpdateScheduleLinkInput, deps UpdateScheduleLinkDeps) (string, error) {
	if input.MeetLink == "" {
		return "", &ValidationError{Field: "meet_link"}
	}

	entry, err := deps.Schedule.UpdateMeetLink(input.ID, input.MeetLink)
	if err != nil {
		return "", err
	}

	filename := qr.UpdatedFilename(entry.ID)
	if err := deps.QR.Generate(entry.MeetLink, filename); err != nil {
		return "", err
	}

	slog.Info("schedule_link_updated", "schedule_id", entry.ID, "qr", filename)
	return filename, nil
}
