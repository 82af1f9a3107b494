package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sinha001/portfolio-server/internal/handler"
)

// Setup configures the gin engine and wires all routes.
func Setup(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("portfolio_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public site API
	r.GET("/api/portfolio", api.GetPortfolio)
	r.GET("/api/blog", api.GetBlog)
	r.POST("/api/contact", api.SubmitContact)
	r.POST("/api/track/view", api.TrackPageView)
	r.GET("/resume", api.DownloadResume)

	// Admin panel API
	admin := r.Group("/admin")
	{
		admin.POST("/api/login", api.Login)
		admin.POST("/api/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/api/me", api.Me)
			auth.GET("/api/dashboard", api.GetDashboard)
			auth.GET("/api/analytics", api.GetAnalytics)

			auth.GET("/api/portfolio/draft", api.GetDraft)
			auth.POST("/api/portfolio/save", api.SaveAll)
			auth.PUT("/api/portfolio/personal", api.UpdatePersonalInfo)
			auth.PUT("/api/portfolio/experiences", api.UpdateExperiences)
			auth.PUT("/api/portfolio/projects", api.UpdateProjects)
			auth.PUT("/api/portfolio/skills", api.UpdateSkillCategories)
			auth.PUT("/api/portfolio/education", api.UpdateEducation)
			auth.PUT("/api/portfolio/certifications", api.UpdateCertifications)
			auth.PUT("/api/portfolio/blog-posts", api.UpdateBlogPosts)
			auth.POST("/api/portfolio/resume", api.UploadResume)
			auth.POST("/api/preview", api.PreviewMarkdown)

			auth.GET("/api/contacts", api.ListContacts)
			auth.POST("/api/contacts/:id/read", api.MarkContactRead)
			auth.POST("/api/contacts/:id/replied", api.MarkContactReplied)
			auth.DELETE("/api/contacts/:id", api.DeleteContact)
		}
	}

	return r
}
