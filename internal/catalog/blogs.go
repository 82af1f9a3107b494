package catalog

// BlogPost mirrors one item of the rss2json feed response. PubDate stays a
// string so feed values round-trip unmodified.
type BlogPost struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	PubDate     string   `json:"pubDate"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Categories  []string `json:"categories"`
	Author      string   `json:"author"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// SampleBlogPosts returns the static fallback list used when the feed is
// unreachable.
func SampleBlogPosts() []BlogPost {
	return []BlogPost{
		{
			Title:       "Building Scalable Web Applications with Vue.js and Node.js",
			Link:        "https://medium.com/@your-username/building-scalable-web-applications",
			PubDate:     "2024-01-15T10:00:00Z",
			Description: "Learn how to create robust and scalable web applications using Vue.js for the frontend and Node.js for the backend. This comprehensive guide covers best practices, architecture patterns, and performance optimization techniques.",
			Content:     "Full content here...",
			Categories:  []string{"Vue.js", "Node.js", "Web Development", "Full-Stack"},
			Author:      "Nishant Sinha",
			Thumbnail:   "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400&h=200&fit=crop",
		},
		{
			Title:       "Automation Workflows: Streamlining Business Processes with Make.com",
			Link:        "https://medium.com/@your-username/automation-workflows-make",
			PubDate:     "2024-01-10T14:30:00Z",
			Description: "Discover how to leverage Make.com to create powerful automation workflows that can transform your business operations. From API integrations to complex multi-step processes, learn the strategies that can save hours of manual work.",
			Content:     "Full content here...",
			Categories:  []string{"Automation", "Make.com", "Business Process", "API Integration"},
			Author:      "Nishant Sinha",
			Thumbnail:   "https://images.unsplash.com/photo-1518186285589-2f7649de83e0?w=400&h=200&fit=crop",
		},
		{
			Title:       "Full-Stack Development: From Concept to Deployment",
			Link:        "https://medium.com/@your-username/fullstack-development-guide",
			PubDate:     "2024-01-05T09:15:00Z",
			Description: "A complete guide to full-stack development covering everything from initial planning and design to deployment and maintenance. Learn about modern development practices, tools, and technologies that every developer should know.",
			Content:     "Full content here...",
			Categories:  []string{"Full-Stack", "Development", "Deployment", "Best Practices"},
			Author:      "Nishant Sinha",
			Thumbnail:   "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=400&h=200&fit=crop",
		},
		{
			Title:       "JavaScript ES6+ Features Every Developer Should Know",
			Link:        "https://medium.com/@your-username/javascript-es6-features",
			PubDate:     "2023-12-28T16:45:00Z",
			Description: "Explore the most important ES6+ features that have revolutionized JavaScript development. From arrow functions to async/await, destructuring to modules, master these concepts to write cleaner, more efficient code.",
			Content:     "Full content here...",
			Categories:  []string{"JavaScript", "ES6", "Programming", "Web Development"},
			Author:      "Nishant Sinha",
			Thumbnail:   "https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?w=400&h=200&fit=crop",
		},
		{
			Title:       "Database Design Patterns for Modern Applications",
			Link:        "https://medium.com/@your-username/database-design-patterns",
			PubDate:     "2023-12-20T11:20:00Z",
			Description: "Learn essential database design patterns and best practices for building scalable applications. Covers SQL and NoSQL approaches, normalization, indexing strategies, and performance optimization techniques.",
			Content:     "Full content here...",
			Categories:  []string{"Database", "SQL", "MongoDB", "Performance"},
			Author:      "Nishant Sinha",
			Thumbnail:   "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?w=400&h=200&fit=crop",
		},
		{
			Title:       "API Integration Best Practices and Common Pitfalls",
			Link:        "https://medium.com/@your-username/api-integration-best-practices",
			PubDate:     "2023-12-15T13:10:00Z",
			Description: "Master the art of API integration with this comprehensive guide. Learn about authentication, error handling, rate limiting, caching strategies, and how to build robust integrations that scale.",
			Content:     "Full content here...",
			Categories:  []string{"API", "Integration", "REST", "Best Practices"},
			Author:      "Nishant Sinha",
			Thumbnail:   "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=200&fit=crop",
		},
	}
}
