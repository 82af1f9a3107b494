package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sinha001/portfolio-server/internal/catalog"
	"github.com/sinha001/portfolio-server/internal/service"
)

const sessionUserKey = "user_id"

// Login validates admin credentials and opens both the persisted session and
// the cookie session.
func (a *API) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := a.auth.Login(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		a.log.Error().Err(err).Msg("persist admin session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		a.log.Error().Err(err).Msg("save session cookie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout ends the session. Safe to call when already logged out.
func (a *API) Logout(c *gin.Context) {
	if err := a.auth.Logout(); err != nil {
		a.log.Warn().Err(err).Msg("clear persisted session")
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		a.log.Warn().Err(err).Msg("clear session cookie")
	}
	c.Status(http.StatusNoContent)
}

// Me returns the logged-in admin identity.
func (a *API) Me(c *gin.Context) {
	user := a.auth.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// AuthRequired rejects requests without an authenticated cookie session.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserKey) == nil || !a.auth.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// GetDraft returns the editable sections for the admin edit screen.
func (a *API) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, a.content.Draft())
}

// SaveAll commits a full admin draft in one save action.
func (a *API) SaveAll(c *gin.Context) {
	var draft service.ContentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := a.content.SaveAll(draft); err != nil {
		a.log.Error().Err(err).Msg("save portfolio draft")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save content"})
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdatePersonalInfo replaces the profile section.
func (a *API) UpdatePersonalInfo(c *gin.Context) {
	var v catalog.PersonalInfo
	updateSection(a, c, &v, a.content.UpdatePersonalInfo)
}

// UpdateExperiences replaces the work history section.
func (a *API) UpdateExperiences(c *gin.Context) {
	var v []catalog.Experience
	updateSection(a, c, &v, a.content.UpdateExperiences)
}

// UpdateProjects replaces the project section.
func (a *API) UpdateProjects(c *gin.Context) {
	var v []catalog.Project
	updateSection(a, c, &v, a.content.UpdateProjects)
}

// UpdateSkillCategories replaces the skill section.
func (a *API) UpdateSkillCategories(c *gin.Context) {
	var v []catalog.SkillCategory
	updateSection(a, c, &v, a.content.UpdateSkillCategories)
}

// UpdateEducation replaces the education section.
func (a *API) UpdateEducation(c *gin.Context) {
	var v []catalog.Education
	updateSection(a, c, &v, a.content.UpdateEducation)
}

// UpdateCertifications replaces the certification section.
func (a *API) UpdateCertifications(c *gin.Context) {
	var v []catalog.Certification
	updateSection(a, c, &v, a.content.UpdateCertifications)
}

// UpdateBlogPosts replaces the stored blog post list.
func (a *API) UpdateBlogPosts(c *gin.Context) {
	var v []catalog.BlogPost
	updateSection(a, c, &v, a.content.UpdateBlogPosts)
}

func updateSection[T any](a *API, c *gin.Context, v *T, apply func(T) error) {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := apply(*v); err != nil {
		a.log.Error().Err(err).Msg("update portfolio section")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save content"})
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadResume stores a resume data URI.
func (a *API) UploadResume(c *gin.Context) {
	var body struct {
		DataURI string `json:"dataUri"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := a.content.UpdateResumeFile(body.DataURI); err != nil {
		if errors.Is(err, service.ErrInvalidResumeFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		a.log.Error().Err(err).Msg("store resume")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save resume"})
		return
	}
	c.Status(http.StatusNoContent)
}

// PreviewMarkdown renders markdown for the blog-post editor preview pane.
func (a *API) PreviewMarkdown(c *gin.Context) {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	rendered, err := a.blog.RenderContent(body.Content)
	if err != nil {
		a.log.Error().Err(err).Msg("render markdown preview")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render preview"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": rendered})
}

// GetAnalytics returns the usage-counter snapshot.
func (a *API) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, a.analytics.Snapshot())
}

// GetDashboard summarizes content and usage for the admin landing screen.
func (a *API) GetDashboard(c *gin.Context) {
	snapshot := a.analytics.Snapshot()
	contacts, err := a.contacts.List(service.ContactFilter{Status: service.ContactStatusNew})
	if err != nil {
		a.log.Warn().Err(err).Msg("count new contacts")
	}

	c.JSON(http.StatusOK, gin.H{
		"experienceCount":    len(a.content.Experiences()),
		"projectCount":       len(a.content.Projects()),
		"skillCategoryCount": len(a.content.SkillCategories()),
		"pageViews":          snapshot.PageViews,
		"resumeDownloads":    snapshot.ResumeDownloads,
		"contactSubmissions": snapshot.ContactSubmissions,
		"newContacts":        len(contacts),
	})
}

// ListContacts returns submissions filtered by search term and status.
func (a *API) ListContacts(c *gin.Context) {
	filter := service.ContactFilter{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", "all"),
	}
	contacts, err := a.contacts.List(filter)
	if err != nil {
		a.log.Error().Err(err).Msg("list contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// MarkContactRead flips a submission to read.
func (a *API) MarkContactRead(c *gin.Context) {
	a.mutateContact(c, a.contacts.MarkRead)
}

// MarkContactReplied flips a submission to replied.
func (a *API) MarkContactReplied(c *gin.Context) {
	a.mutateContact(c, a.contacts.MarkReplied)
}

// DeleteContact removes a submission.
func (a *API) DeleteContact(c *gin.Context) {
	a.mutateContact(c, a.contacts.Delete)
}

func (a *API) mutateContact(c *gin.Context, apply func(string) error) {
	if err := apply(c.Param("id")); err != nil {
		a.log.Error().Err(err).Msg("update contact")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contact"})
		return
	}
	c.Status(http.StatusNoContent)
}
