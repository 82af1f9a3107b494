package catalog

// Education is one degree entry.
type Education struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Field       string   `json:"field"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Subjects    []string `json:"subjects"`
}

// Certification is one certificate entry.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Link   string `json:"link,omitempty"`
}

// DefaultEducation returns the built-in education history.
func DefaultEducation() []Education {
	return []Education{
		{
			ID:          "galgotias-university",
			Degree:      "Bachelor's of Technology",
			Institution: "Galgotias University",
			Field:       "Computer Science and Engineering",
			Period:      "July 2018 - May 2022",
			Description: "Completed Bachelor's degree in Computer Science and Engineering with focus on software development, data structures, algorithms, and modern web technologies.",
			Subjects:    []string{"Data Structures", "Algorithms", "DBMS", "Operating Systems", "Software Engineering"},
		},
	}
}

// DefaultCertifications returns the built-in certification list.
func DefaultCertifications() []Certification {
	return []Certification{
		{
			ID:     "aws-cloud-architecting",
			Name:   "AWS Academy Cloud Architecting",
			Issuer: "AWS Academy",
			Link:   "#",
		},
	}
}
