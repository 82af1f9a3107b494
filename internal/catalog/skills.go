package catalog

// SkillCategory groups related skills under one heading.
type SkillCategory struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// DefaultSkillCategories returns the built-in skill groups.
func DefaultSkillCategories() []SkillCategory {
	return []SkillCategory{
		{
			ID:     "languages",
			Name:   "Languages",
			Skills: []string{"Java", "JavaScript", "HTML5", "CSS3", "SQL", "Python"},
		},
		{
			ID:     "frameworks",
			Name:   "Frameworks",
			Skills: []string{"Vue.js", "React.js", "Node.js", "Express.js", "Bootstrap 5"},
		},
		{
			ID:     "technologies",
			Name:   "Technologies",
			Skills: []string{"Git", "MySQL", "MongoDB", "REST API", "Make.com", "WordPress"},
		},
		{
			ID:     "tools",
			Name:   "Tools",
			Skills: []string{"Figma", "Canva", "Monday.com", "Alteryx", "Webhooks"},
		},
	}
}
