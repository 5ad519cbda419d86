package projections

import (
	"context"
	"testing"
	"time"

	"zawiya/internal/domain/catalog"
	"zawiya/internal/domain/student"
)

// TestQueryDashboardStats tests the aggregate counts and the seven-day
// recency window, including records with unparseable timestamps.
func TestQueryDashboardStats(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	stamp := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(student.TimeFormat)
	}
	store := &mockStudentStore{records: []student.Record{
		{StudentID: "STD00000001", Program: catalog.ProgramChildren, Status: student.StatusActive, RegisteredAt: stamp(1)},
		{StudentID: "STD00000002", Program: catalog.ProgramChildren, Status: student.StatusActive, RegisteredAt: stamp(6)},
		{StudentID: "STD00000003", Program: catalog.ProgramAdults, Status: student.StatusInactive, RegisteredAt: stamp(10)},
		{StudentID: "STD00000004", Program: catalog.ProgramTijani, Status: student.StatusActive, RegisteredAt: "not a date"},
	}}

	result, err := QueryDashboardStats(context.Background(), DashboardStatsDeps{StudentStore: store})
	if err != nil {
		t.Fatalf("QueryDashboardStats failed: %v", err)
	}

	if result.Total != 4 {
		t.Errorf("Total = %d, want 4", result.Total)
	}
	if result.Active != 3 {
		t.Errorf("Active = %d, want 3", result.Active)
	}
	if result.Recent != 2 {
		t.Errorf("Recent = %d, want 2", result.Recent)
	}
	if result.Programs[catalog.ProgramChildren] != 2 {
		t.Errorf("Programs[children] = %d, want 2", result.Programs[catalog.ProgramChildren])
	}
	if result.Programs[catalog.ProgramAdults] != 1 {
		t.Errorf("Programs[adults] = %d, want 1", result.Programs[catalog.ProgramAdults])
	}
	if len(result.Students) != 4 {
		t.Errorf("Students length = %d, want 4", len(result.Students))
	}
}

// TestQueryPublicStatistics tests the thirty-day recency window.
func TestQueryPublicStatistics(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	stamp := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(student.TimeFormat)
	}
	store := &mockStudentStore{records: []student.Record{
		{StudentID: "STD00000001", Program: catalog.ProgramChildren, Status: student.StatusActive, RegisteredAt: stamp(5)},
		{StudentID: "STD00000002", Program: catalog.ProgramAdults, Status: student.StatusActive, RegisteredAt: stamp(29)},
		{StudentID: "STD00000003", Program: catalog.ProgramAdults, Status: student.StatusInactive, RegisteredAt: stamp(45)},
	}}

	stats, err := QueryPublicStatistics(context.Background(), PublicStatisticsDeps{StudentStore: store})
	if err != nil {
		t.Fatalf("QueryPublicStatistics failed: %v", err)
	}

	if stats.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", stats.TotalStudents)
	}
	if stats.ActiveStudents != 2 {
		t.Errorf("ActiveStudents = %d, want 2", stats.ActiveStudents)
	}
	if stats.RecentRegistrations != 2 {
		t.Errorf("RecentRegistrations = %d, want 2", stats.RecentRegistrations)
	}
	if stats.ProgramsDistribution[catalog.ProgramAdults] != 2 {
		t.Errorf("ProgramsDistribution[adults] = %d, want 2", stats.ProgramsDistribution[catalog.ProgramAdults])
	}
}
