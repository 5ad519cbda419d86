package catalog

// Program is one course track students register into. The set of programs is
// fixed at compile time and read-only at runtime.
type Program struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AgeRange    string `json:"age_range"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Icon        string `json:"icon"`
}

// Program IDs
const (
	ProgramChildren = "children"
	ProgramAdults   = "adults"
	ProgramReview   = "review"
	ProgramTijani   = "tijani"
)

var programs = []Program{
	{
		ID:          ProgramChildren,
		Name:        "Quran Memorisation for Children",
		AgeRange:    "7-14 years",
		Description: "A dedicated memorisation programme for children with a focus on tajweed and correct recitation.",
		Duration:    "Two years",
		Icon:        "fa-child",
	},
	{
		ID:          ProgramAdults,
		Name:        "Quran Memorisation for Adults",
		AgeRange:    "15 years and over",
		Description: "A comprehensive programme combining memorisation, exegesis and practical application.",
		Duration:    "Three years",
		Icon:        "fa-book-quran",
	},
	{
		ID:          ProgramReview,
		Name:        "Revision and Consolidation",
		AgeRange:    "All ages",
		Description: "Dedicated sessions for revising memorised portions with continuous assessment.",
		Duration:    "Ongoing",
		Icon:        "fa-repeat",
	},
	{
		ID:          ProgramTijani,
		Name:        "Tijani Assemblies",
		AgeRange:    "All ages",
		Description: "Weekly gatherings for remembrance, litanies and spiritual guidance.",
		Duration:    "Ongoing",
		Icon:        "fa-mosque",
	},
}

// Programs returns the full program catalog in declaration order.
// POST: Returned slice is a copy; callers cannot mutate the catalog
func Programs() []Program {
	out := make([]Program, len(programs))
	copy(out, programs)
	return out
}

// ProgramByID looks up a program by its ID.
func ProgramByID(id string) (Program, bool) {
	for _, p := range programs {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}

// ValidProgramID reports whether id names a catalog program.
func ValidProgramID(id string) bool {
	_, ok := ProgramByID(id)
	return ok
}
