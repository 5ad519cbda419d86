package projections

import (
	"context"
	"errors"
	"fmt"
	"testing"

	studentStore "zawiya/internal/adapters/storage/student"
	"zawiya/internal/domain/catalog"
	"zawiya/internal/domain/student"
)

type mockStudentStore struct {
	records []student.Record
}

func (m *mockStudentStore) All(_ context.Context) ([]student.Record, error) {
	return m.records, nil
}

func (m *mockStudentStore) GetByStudentID(_ context.Context, id string) (student.Record, error) {
	for _, r := range m.records {
		if r.StudentID == id {
			return r, nil
		}
	}
	return student.Record{}, studentStore.ErrNotFound
}

// TestQueryStudentSchedule tests entry filtering and QR filename mapping.
func TestQueryStudentSchedule(t *testing.T) {
	store := &mockStudentStore{records: []student.Record{
		{StudentID: "STDA1B2C3D4", FirstName: "Yacine", Program: catalog.ProgramChildren, Status: student.StatusActive},
	}}
	deps := StudentScheduleDeps{StudentStore: store, Schedule: catalog.NewScheduleTable()}

	result, err := QueryStudentSchedule(context.Background(), "STDA1B2C3D4", deps)
	if err != nil {
		t.Fatalf("QueryStudentSchedule failed: %v", err)
	}
	if result.Student.FirstName != "Yacine" {
		t.Errorf("unexpected student: %+v", result.Student)
	}

	wantIDs := []int{1, 4, 5}
	if len(result.Entries) != len(wantIDs) {
		t.Fatalf("got %d entries, want %d", len(result.Entries), len(wantIDs))
	}
	for i, id := range wantIDs {
		if result.Entries[i].ID != id {
			t.Errorf("entry[%d].ID = %d, want %d", i, result.Entries[i].ID, id)
		}
		wantFile := fmt.Sprintf("qr_%d_STDA1B2C3D4.png", id)
		if result.QRCodes[id] != wantFile {
			t.Errorf("QRCodes[%d] = %q, want %q", id, result.QRCodes[id], wantFile)
		}
	}
}

// TestQueryStudentScheduleNotFound tests the unknown-ID path.
func TestQueryStudentScheduleNotFound(t *testing.T) {
	deps := StudentScheduleDeps{StudentStore: &mockStudentStore{}, Schedule: catalog.NewScheduleTable()}

	_, err := QueryStudentSchedule(context.Background(), "STDFFFFFFFF", deps)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
