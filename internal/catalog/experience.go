package catalog

// Experience is one work history entry. Display order follows slice order.
type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
	Color       string   `json:"color"`
}

// DefaultExperiences returns the built-in work history.
func DefaultExperiences() []Experience {
	return []Experience{
		{
			ID:       "contour-education",
			Title:    "Automation Engineer",
			Company:  "Contour Education",
			Location: "Muzaffarpur, India (Remote)",
			Period:   "Current",
			Current:  true,
			Color:    "blue",
			Description: []string{
				"Designed and optimized automation workflows in Make.com, minimizing operations and maximizing efficiency",
				"Integrated Make.com with Monday.com, Excel, and multiple APIs to streamline business processes",
				"Developed logical automation sequences to reduce manual effort and enhance workflow efficiency",
				"Reduced operational costs by optimizing API calls and webhook usage",
			},
		},
		{
			ID:       "global-emarketing",
			Title:    "Full Stack Developer",
			Company:  "Global EMarketing Web Services",
			Location: "Noida, India (Remote)",
			Period:   "2022 - 2023",
			Current:  false,
			Color:    "purple",
			Description: []string{
				"Led a new project team to design and develop responsive web application using Vue.js and Bootstrap 5",
				"Achieved 25% improvement in user engagement through Wizart API integration",
				"Coordinated third-party APIs and RESTful services, enhancing functionality by 30%",
				"Supervised and mentored junior developers, increasing team productivity by 20%",
				"Enhanced deployment process, achieving 15% reduction in deployment time",
			},
		},
		{
			ID:       "flying-bird-travel",
			Title:    "Software Engineer",
			Company:  "Flying Bird Travel Private Limited",
			Location: "Noida, India",
			Period:   "2021 - 2022",
			Current:  false,
			Color:    "green",
			Description: []string{
				"Achieved 40% growth in customer engagement for WordPress website using SEO strategies",
				"Led the redesign of CRM software, resulting in 30% improvement in user satisfaction",
				"Developed WordPress site with enhanced product structuring using Elementor Pro and WooCommerce",
				"Implemented Google ratings integration and effective product design optimization",
			},
		},
	}
}
