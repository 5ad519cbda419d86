package projections

import (
	"context"
	"time"

	"zawiya/internal/domain/student"
)

// PublicStatistics is the live figure set served by the statistics API.
type PublicStatistics struct {
	TotalStudents        int            `json:"total_students"`
	ActiveStudents       int            `json:"active_students"`
	ProgramsDistribution map[string]int `json:"programs_distribution"`
	RecentRegistrations  int            `json:"recent_registrations"`
}

// PublicStatisticsDeps holds dependencies for the statistics projection.
type PublicStatisticsDeps struct {
	StudentStore StudentStore
}

// QueryPublicStatistics computes live registration statistics. Recent covers
// the last thirty days. Callers fall back to the static catalog figures when
// this returns an error.
func QueryPublicStatistics(ctx context.Context, deps PublicStatisticsDeps) (PublicStatistics, error) {
	records, err := deps.StudentStore.All(ctx)
	if err != nil {
		return PublicStatistics{}, err
	}

	stats := PublicStatistics{
		TotalStudents:        len(records),
		ProgramsDistribution: make(map[string]int),
	}
	cutoff := timeNow().AddDate(0, 0, -30)
	for _, r := range records {
		if r.IsActive() {
			stats.ActiveStudents++
		}
		if r.Program != "" {
			stats.ProgramsDistribution[r.Program]++
		}
		registered, err := time.ParseInLocation(student.TimeFormat, r.RegisteredAt, time.Local)
		if err != nil {
			continue
		}
		if !registered.Before(cutoff) {
			stats.RecentRegistrations++
		}
	}
	return stats, nil
}
