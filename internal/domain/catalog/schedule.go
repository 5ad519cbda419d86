package catalog

import (
	"errors"
	"sync"
)

// ScheduleEntry is one weekly recurring session. MeetLink is the only field
// mutable at runtime; every other field is fixed catalog data.
type ScheduleEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Day         string `json:"day"`
	Time        string `json:"time"`
	Teacher     string `json:"teacher"`
	Program     string `json:"program"`
	MeetLink    string `json:"meet_link"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

// Domain errors
var (
	ErrEntryNotFound = errors.New("schedule entry not found")
)

// alwaysIncluded programs apply to every student regardless of the program
// they registered into.
var alwaysIncluded = map[string]bool{
	ProgramReview: true,
	ProgramTijani: true,
}

// AppliesTo reports whether the entry is part of a student's schedule given
// the program they registered into.
// INVARIANT: review and tijani sessions apply to all students
func (e ScheduleEntry) AppliesTo(program string) bool {
	return e.Program == program || alwaysIncluded[e.Program]
}

var defaultSchedule = []ScheduleEntry{
	{
		ID:          1,
		Title:       "Quran Memorisation for Children",
		Day:         "Saturday",
		Time:        "14:00 - 16:00",
		Teacher:     "Sheikh Mohamed El Amine Tidjani",
		Program:     ProgramChildren,
		MeetLink:    "https://meet.google.com/abc-defg-hij",
		Description: "Memorisation session for children aged 7 to 14 with a focus on tajweed and correct recitation.",
		Level:       "Beginner - Intermediate",
	},
	{
		ID:          2,
		Title:       "Quran Memorisation for Adults",
		Day:         "Sunday",
		Time:        "15:00 - 17:00",
		Teacher:     "Sheikh Abderrahmane Ben Omar",
		Program:     ProgramAdults,
		MeetLink:    "https://meet.google.com/klm-nopq-rst",
		Description: "Comprehensive memorisation and revision session with study of exegesis, meanings and rulings.",
		Level:       "All levels",
	},
	{
		ID:          3,
		Title:       "Fiqh and Prophetic Biography",
		Day:         "Monday",
		Time:        "16:00 - 17:30",
		Teacher:     "Sheikh Ahmed Ben El Hadj",
		Program:     ProgramAdults,
		MeetLink:    "https://meet.google.com/uvw-xyz-abc",
		Description: "Lessons in Islamic jurisprudence and the prophetic biography according to the Maliki school.",
		Level:       "Intermediate - Advanced",
	},
	{
		ID:          4,
		Title:       "Revision and Consolidation Circle",
		Day:         "Tuesday",
		Time:        "17:00 - 18:30",
		Teacher:     "Sheikh Omar Salhi",
		Program:     ProgramReview,
		MeetLink:    "https://meet.google.com/mno-pqr-stu",
		Description: "Dedicated circle for revising memorised portions with periodic assessment of progress.",
		Level:       "All levels",
	},
	{
		ID:          5,
		Title:       "Tijani Assembly - Wadhifa and Litanies",
		Day:         "Friday",
		Time:        "13:00 - 14:30",
		Teacher:     "Sheikh of the Zawiya",
		Program:     ProgramTijani,
		MeetLink:    "https://meet.google.com/def-ghi-jkl",
		Description: "Weekly assembly for remembrance, the Tijani wadhifa and litanies with spiritual guidance.",
		Level:       "All levels",
	},
	{
		ID:          6,
		Title:       "Exegesis and Quranic Sciences",
		Day:         "Wednesday",
		Time:        "15:30 - 17:00",
		Teacher:     "Sheikh Mohamed El Amine Tidjani",
		Program:     ProgramAdults,
		MeetLink:    "https://meet.google.com/vwx-yz-abc",
		Description: "In-depth lessons in Quranic exegesis, Quranic sciences and the canonical readings.",
		Level:       "Advanced",
	},
}

// ScheduleTable is the process-wide weekly schedule. Reads and the single
// mutation (meet-link updates) are guarded by a coarse RWMutex so concurrent
// access never observes torn state. Mutations are not persisted across
// restarts beyond any QR image regenerated from them.
type ScheduleTable struct {
	mu      sync.RWMutex
	entries []ScheduleEntry
}

// NewScheduleTable creates a schedule table seeded with the default catalog.
func NewScheduleTable() *ScheduleTable {
	entries := make([]ScheduleEntry, len(defaultSchedule))
	copy(entries, defaultSchedule)
	return &ScheduleTable{entries: entries}
}

// List returns all entries in declaration order.
// POST: Returned slice is a copy
func (t *ScheduleTable) List() []ScheduleEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]ScheduleEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Get returns the entry with the given id.
func (t *ScheduleTable) Get(id int) (ScheduleEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.entries {
		if e.ID == id {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

// ApplicableTo returns the entries applicable to a student registered into
// the given program, in declaration order.
func (t *ScheduleTable) ApplicableTo(program string) []ScheduleEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []ScheduleEntry
	for _, e := range t.entries {
		if e.AppliesTo(program) {
			out = append(out, e)
		}
	}
	return out
}

// UpdateMeetLink overwrites the meet link of the entry with the given id.
// PRE: link is non-empty
// POST: Only the matched entry is mutated; returns the updated entry
func (t *ScheduleTable) UpdateMeetLink(id int, link string) (ScheduleEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.entries {
		if t.entries[i].ID == id {
			t.entries[i].MeetLink = link
			return t.entries[i], nil
		}
	}
	return ScheduleEntry{}, ErrEntryNotFound
}
