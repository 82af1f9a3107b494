package catalog

// ContactOption is one "reach me directly" card on the contact section.
type ContactOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// SelectOption is a value/label pair for the contact form dropdowns.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TechInterest is one selectable technology badge on the contact form.
type TechInterest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ContactOptions returns the direct-contact cards.
func ContactOptions() []ContactOption {
	return []ContactOption{
		{ID: "phone", Label: "Phone", Value: "+91-9155943999", Icon: "phone", Color: "blue"},
		{ID: "email", Label: "Email", Value: "sinhasonu004@gmail.com", Icon: "mail", Color: "green"},
		{ID: "location", Label: "Location", Value: "Muzaffarpur, Bihar", Icon: "map-pin", Color: "purple"},
	}
}

// RoleOptions returns the "your role" dropdown values.
func RoleOptions() []SelectOption {
	return []SelectOption{
		{Value: "recruiter", Label: "Recruiter"},
		{Value: "hiring-manager", Label: "Hiring Manager"},
		{Value: "cto", Label: "CTO/Tech Lead"},
		{Value: "founder", Label: "Founder/CEO"},
		{Value: "developer", Label: "Fellow Developer"},
		{Value: "other", Label: "Other"},
	}
}

// SubjectOptions returns the subject dropdown values.
func SubjectOptions() []SelectOption {
	return []SelectOption{
		{Value: "job-opportunity", Label: "Job Opportunity"},
		{Value: "freelance-project", Label: "Freelance Project"},
		{Value: "collaboration", Label: "Collaboration"},
		{Value: "consultation", Label: "Consultation"},
		{Value: "speaking", Label: "Speaking Engagement"},
		{Value: "other", Label: "Other"},
	}
}

// TechInterests returns the selectable technology badges.
func TechInterests() []TechInterest {
	return []TechInterest{
		{ID: "vuejs", Name: "Vue.js"},
		{ID: "reactjs", Name: "React.js"},
		{ID: "nodejs", Name: "Node.js"},
		{ID: "java", Name: "Java"},
		{ID: "python", Name: "Python"},
		{ID: "mongodb", Name: "MongoDB"},
		{ID: "mysql", Name: "MySQL"},
		{ID: "makecom", Name: "Make.com"},
		{ID: "api-integration", Name: "API Integration"},
		{ID: "automation", Name: "Automation"},
		{ID: "full-stack", Name: "Full-Stack"},
		{ID: "wordpress", Name: "WordPress"},
	}
}
