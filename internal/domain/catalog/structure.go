package catalog

// Person is one individual in the organisational structure.
type Person struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Description    string `json:"description,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Image          string `json:"image,omitempty"`
}

// OrgStructure groups the school's people by function.
type OrgStructure struct {
	Leadership     []Person `json:"leadership"`
	Administration []Person `json:"administration"`
	Teachers       []Person `json:"teachers"`
	Technical      []Person `json:"technical"`
}

var structure = OrgStructure{
	Leadership: []Person{
		{
			Name:        "Khalifa Sheikh Sidi Mohamed El Aid Tidjani Temacini",
			Position:    "Sheikh of the Tijani order",
			Description: "Founder and spiritual guide of the order",
			Image:       "sheikh-tijani.jpeg",
		},
	},
	Administration: []Person{
		{
			Name:        "Mohamed El Bachir Ben Djaouane",
			Position:    "Director of the online school",
			Email:       "director@zawiya-tijania.dz",
			Phone:       "+213 555 123 456",
			Description: "General oversight of the school and curriculum development",
			Image:       "mohamed-director.jpeg",
		},
		{
			Name:        "Nadjah Kadir",
			Position:    "Academic coordinator",
			Email:       "academic@zawiya-tijania.dz",
			Phone:       "+213 555 234 567",
			Description: "Coordination of programmes and study schedules",
		},
		{
			Name:        "Amina Tidjani",
			Position:    "Head of the women's section",
			Email:       "women@zawiya-tijania.dz",
			Phone:       "+213 555 345 678",
			Description: "Oversight of women's education programmes",
		},
	},
	Teachers: []Person{
		{
			Name:           "Mouna Tidjani",
			Position:       "Teacher of fiqh and biography",
			Specialization: "Fiqh and prophetic biography",
			Experience:     "8 years",
		},
		{
			Name:           "Nardjes Tidjani",
			Position:       "Teacher of tajweed",
			Specialization: "Tajweed and recitation rules",
			Experience:     "6 years",
		},
		{
			Name:           "Hadda Guezzouz",
			Position:       "Quran memorisation teacher",
			Specialization: "Memorisation for children",
			Experience:     "10 years",
		},
	},
	Technical: []Person{
		{
			Name:        "Nadjah Kadir",
			Position:    "Technical support lead",
			Email:       "tech@zawiya-tijania.dz",
			Description: "Technical support and help using the platform",
		},
	},
}

// Structure returns the organisational structure.
func Structure() OrgStructure {
	return structure
}

// Statistics is the school's aggregate headline figures.
type Statistics struct {
	Students  int `json:"students"`
	Graduates int `json:"graduates"`
	Teachers  int `json:"teachers"`
	Programs  int `json:"programs"`
	Years     int `json:"years"`
}

// FallbackStatistics returns the static figures served when live statistics
// cannot be computed.
func FallbackStatistics() Statistics {
	return Statistics{
		Students:  1250,
		Graduates: 340,
		Teachers:  15,
		Programs:  4,
		Years:     223,
	}
}
