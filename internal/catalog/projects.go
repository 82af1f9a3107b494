package catalog

// Project types distinguish publicly reachable work from internal delivery.
const (
	ProjectTypePublic     = "public"
	ProjectTypeEnterprise = "enterprise"
)

// Project is one portfolio project card.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link,omitempty"`
	Color       string   `json:"color"`
	Type        string   `json:"type"`
}

// DefaultProjects returns the built-in project list.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:          "appifys",
			Title:       "Appifys",
			Description: "Multi-page application website built with Vue.js, Bootstrap 5, integrating Contentful CMS and Email.js with SEO optimization.",
			Tags:        []string{"Vue.js", "Bootstrap", "CMS"},
			Link:        "https://www.appifys.com",
			Color:       "blue",
			Type:        ProjectTypePublic,
		},
		{
			ID:          "automation-workflows",
			Title:       "Automation Workflows",
			Description: "Designed and optimized automation workflows in Make.com, integrating with Monday.com and multiple APIs.",
			Tags:        []string{"Make.com", "APIs", "Automation"},
			Color:       "green",
			Type:        ProjectTypeEnterprise,
		},
		{
			ID:          "crm-redesign",
			Title:       "CRM Redesign",
			Description: "Led the redesign of CRM software resulting in 30% improvement in user satisfaction and performance.",
			Tags:        []string{"UI/UX", "CRM", "Performance"},
			Color:       "purple",
			Type:        ProjectTypeEnterprise,
		},
	}
}
