package catalog_test

import (
	"errors"
	"testing"

	"zawiya/internal/domain/catalog"
)

// TestProgramCatalog tests the fixed program set.
func TestProgramCatalog(t *testing.T) {
	progs := catalog.Programs()
	if len(progs) != 4 {
		t.Fatalf("expected 4 programs, got %d", len(progs))
	}
	wantOrder := []string{
		catalog.ProgramChildren,
		catalog.ProgramAdults,
		catalog.ProgramReview,
		catalog.ProgramTijani,
	}
	for i, id := range wantOrder {
		if progs[i].ID != id {
			t.Errorf("program %d: expected %s, got %s", i, id, progs[i].ID)
		}
	}
	if _, ok := catalog.ProgramByID("children"); !ok {
		t.Error("expected children program to exist")
	}
	if catalog.ValidProgramID("karate") {
		t.Error("expected unknown program to be invalid")
	}
}

// TestApplicableTo tests the program-membership schedule filter.
func TestApplicableTo(t *testing.T) {
	table := catalog.NewScheduleTable()

	tests := []struct {
		program string
		wantIDs []int
	}{
		// children get their own session plus review and tijani
		{program: catalog.ProgramChildren, wantIDs: []int{1, 4, 5}},
		// adults get three sessions plus review and tijani
		{program: catalog.ProgramAdults, wantIDs: []int{2, 3, 4, 5, 6}},
		// review students only see the always-included sessions
		{program: catalog.ProgramReview, wantIDs: []int{4, 5}},
		{program: catalog.ProgramTijani, wantIDs: []int{4, 5}},
		// unknown program still sees the always-included sessions
		{program: "unknown", wantIDs: []int{4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			entries := table.ApplicableTo(tt.program)
			if len(entries) != len(tt.wantIDs) {
				t.Fatalf("expected %d entries, got %d", len(tt.wantIDs), len(entries))
			}
			for i, id := range tt.wantIDs {
				if entries[i].ID != id {
					t.Errorf("entry %d: expected id %d, got %d", i, id, entries[i].ID)
				}
			}
		})
	}
}

// TestUpdateMeetLink tests that a link update mutates exactly one entry.
func TestUpdateMeetLink(t *testing.T) {
	table := catalog.NewScheduleTable()
	before := table.List()

	updated, err := table.UpdateMeetLink(3, "https://meet.google.com/new-link-xyz")
	if err != nil {
		t.Fatalf("UpdateMeetLink failed: %v", err)
	}
	if updated.ID != 3 || updated.MeetLink != "https://meet.google.com/new-link-xyz" {
		t.Errorf("unexpected updated entry: %+v", updated)
	}

	after := table.List()
	for i := range after {
		if after[i].ID == 3 {
			if after[i].MeetLink != "https://meet.google.com/new-link-xyz" {
				t.Error("entry 3 link was not updated")
			}
			continue
		}
		if after[i] != before[i] {
			t.Errorf("entry %d changed unexpectedly: %+v", after[i].ID, after[i])
		}
	}
}

// TestUpdateMeetLinkNotFound tests the unknown-id path.
func TestUpdateMeetLinkNotFound(t *testing.T) {
	table := catalog.NewScheduleTable()
	before := table.List()

	_, err := table.UpdateMeetLink(99, "https://meet.google.com/nowhere")
	if !errors.Is(err, catalog.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	after := table.List()
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("entry %d mutated on failed update", after[i].ID)
		}
	}
}

// TestListReturnsCopy ensures callers cannot mutate the table through List.
func TestListReturnsCopy(t *testing.T) {
	table := catalog.NewScheduleTable()
	list := table.List()
	list[0].MeetLink = "tampered"
	if e, _ := table.Get(list[0].ID); e.MeetLink == "tampered" {
		t.Error("List must return a copy")
	}
}
