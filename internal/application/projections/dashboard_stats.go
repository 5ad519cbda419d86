package projections

import (
	"context"
	"time"

	"zawiya/internal/domain/student"
)

var timeNow = time.Now

// DashboardStatsDeps holds dependencies for the dashboard projection.
type DashboardStatsDeps struct {
	StudentStore StudentStore
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	Students []student.Record
	Total    int
	Active   int
	Programs map[string]int
	// Recent counts registrations in the last seven days. Records whose
	// timestamp does not parse are left out of this count only.
	Recent int
}

// QueryDashboardStats aggregates the registration figures shown on the admin
// dashboard.
// POST: Total covers every record; unparseable timestamps never error
func QueryDashboardStats(ctx context.Context, deps DashboardStatsDeps) (DashboardResult, error) {
	records, err := deps.StudentStore.All(ctx)
	if err != nil {
		return DashboardResult{}, err
	}

	result := DashboardResult{
		Students: records,
		Total:    len(records),
		Programs: make(map[string]int),
	}
	cutoff := timeNow().AddDate(0, 0, -7)
	for _, r := range records {
		if r.IsActive() {
			result.Active++
		}
		if r.Program != "" {
			result.Programs[r.Program]++
		}
		registered, err := time.ParseInLocation(student.TimeFormat, r.RegisteredAt, time.Local)
		if err != nil {
			continue
		}
		if !registered.Before(cutoff) {
			result.Recent++
		}
	}
	return result, nil
}
