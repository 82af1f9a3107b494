// Package catalog holds the portfolio's domain types and the static default
// content the site ships with. The content store overlays persisted edits on
// top of these defaults at startup.
package catalog

// PersonalInfo is the singleton profile record shown on the landing page.
type PersonalInfo struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Tagline     string            `json:"tagline"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Social      map[string]string `json:"social"`
	TechStack   []string          `json:"techStack"`
	Stats       map[string]string `json:"stats"`
}

// DefaultPersonalInfo returns the built-in profile.
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:        "Nishant Sinha",
		Title:       "Full Stack Developer",
		Tagline:     "Ready to Automate & Innovate",
		Description: "Proficient Software Engineer skilled in full-stack development, API integrations, and automation. Expert in delivering scalable solutions under tight deadlines.",
		Location:    "Muzaffarpur, Bihar",
		Phone:       "+91-9155943999",
		Email:       "nishantsinha.referral@gmail.com",
		Social: map[string]string{
			"github":   "https://github.com/sinha001",
			"linkedin": "https://linkedin.com/in/nishant-sinha-37360917b",
			"medium":   "https://medium.com/@nishantsinha_4248",
		},
		TechStack: []string{"Java", "Vue.js", "React.js", "Node.js", "Make.com", "MongoDB"},
		Stats: map[string]string{
			"experience": "1.5+",
			"projects":   "10+",
			"growth":     "40%",
			"engagement": "25%",
		},
	}
}
