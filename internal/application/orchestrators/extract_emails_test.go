package orchestrators

import (
	"context"
	"testing"

	studentStore "zawiya/internal/adapters/storage/student"
	"zawiya/internal/domain/catalog"
	"zawiya/internal/domain/student"
)

type mockStudentFilterer struct {
	records []student.Record
}

func (m *mockStudentFilterer) Filter(_ context.Context, filter studentStore.Filter) ([]student.Record, error) {
	var out []student.Record
	for _, r := range m.records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// TestExecuteExtractEmails tests program filtering and insertion order.
func TestExecuteExtractEmails(t *testing.T) {
	store := &mockStudentFilterer{records: []student.Record{
		{StudentID: "STD00000001", Email: "one@example.com", Program: catalog.ProgramChildren, Status: student.StatusActive},
		{StudentID: "STD00000002", Email: "two@example.com", Program: catalog.ProgramAdults, Status: student.StatusActive},
		{StudentID: "STD00000003", Email: "three@example.com", Program: catalog.ProgramChildren, Status: student.StatusActive},
	}}
	deps := ExtractEmailsDeps{StudentStore: store}

	tests := []struct {
		name    string
		program string
		want    []string
	}{
		{"all keyword", "all", []string{"one@example.com", "two@example.com", "three@example.com"}},
		{"empty means all", "", []string{"one@example.com", "two@example.com", "three@example.com"}},
		{"children only", catalog.ProgramChildren, []string{"one@example.com", "three@example.com"}},
		{"adults only", catalog.ProgramAdults, []string{"two@example.com"}},
		{"no matches", catalog.ProgramReview, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExecuteExtractEmails(context.Background(), ExtractEmailsInput{Program: tc.program}, deps)
			if err != nil {
				t.Fatalf("ExecuteExtractEmails failed: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("email[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}
