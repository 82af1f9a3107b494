package catalog

// Repository is a showcased GitHub repository. The list is static; the admin
// panel does not edit it.
type Repository struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
	Color       string `json:"color"`
	URL         string `json:"url,omitempty"`
}

// DefaultRepositories returns the built-in repository showcase.
func DefaultRepositories() []Repository {
	return []Repository{
		{
			ID:          "portfolio-website",
			Name:        "portfolio-website",
			Description: "Personal portfolio website built with modern web technologies",
			Stars:       12,
			Forks:       3,
			Language:    "Vue.js",
			Color:       "blue",
			URL:         "https://github.com/sinha001/portfolio-website",
		},
		{
			ID:          "automation-scripts",
			Name:        "automation-scripts",
			Description: "Collection of automation scripts for various business processes",
			Stars:       8,
			Forks:       2,
			Language:    "JavaScript",
			Color:       "green",
			URL:         "https://github.com/sinha001/automation-scripts",
		},
		{
			ID:          "api-integrations",
			Name:        "api-integrations",
			Description: "RESTful API integration examples and best practices",
			Stars:       15,
			Forks:       5,
			Language:    "Node.js",
			Color:       "orange",
			URL:         "https://github.com/sinha001/api-integrations",
		},
	}
}
