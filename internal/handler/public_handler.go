package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sinha001/portfolio-server/internal/catalog"
	"github.com/sinha001/portfolio-server/internal/service"
)

// GetPortfolio returns everything the public site renders.
func (a *API) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"personalInfo":    a.content.PersonalInfo(),
		"experiences":     a.content.Experiences(),
		"projects":        a.content.Projects(),
		"skillCategories": a.content.SkillCategories(),
		"education":       a.content.Education(),
		"certifications":  a.content.Certifications(),
		"repositories":    a.content.Repositories(),
		"hasResume":       a.content.ResumeFile() != "",
		"contactOptions":  catalog.ContactOptions(),
		"roleOptions":     catalog.RoleOptions(),
		"subjectOptions":  catalog.SubjectOptions(),
		"techInterests":   catalog.TechInterests(),
	})
}

// GetBlog returns the blog listing with optional search and category filter.
func (a *API) GetBlog(c *gin.Context) {
	listing := a.blog.Fetch(c.Request.Context())

	search := c.Query("search")
	category := c.DefaultQuery("category", "All")

	c.JSON(http.StatusOK, gin.H{
		"posts":      a.blog.Search(listing.Posts, search, category),
		"categories": a.blog.Categories(listing.Posts),
		"fallback":   listing.Fallback,
	})
}

// SubmitContact validates and records a contact-form submission.
func (a *API) SubmitContact(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	submission, delivered, err := a.contacts.Submit(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrContactInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		a.log.Error().Err(err).Msg("store contact submission")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record submission"})
		return
	}

	if err := a.analytics.RecordContactSubmission(); err != nil {
		a.log.Warn().Err(err).Msg("count contact submission")
	}

	c.JSON(http.StatusCreated, gin.H{"id": submission.ID, "delivered": delivered})
}

// TrackPageView counts one view of the supplied page path.
func (a *API) TrackPageView(c *gin.Context) {
	var body struct {
		Page string `json:"page"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Page) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page is required"})
		return
	}

	if err := a.analytics.RecordPageView(body.Page, c.ClientIP(), c.Request.UserAgent(), time.Now().UTC()); err != nil {
		a.log.Warn().Err(err).Msg("record page view")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadResume serves the uploaded resume and counts the download.
func (a *API) DownloadResume(c *gin.Context) {
	dataURI := a.content.ResumeFile()
	if dataURI == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no resume uploaded"})
		return
	}

	contentType, payload, err := decodeDataURI(dataURI)
	if err != nil {
		a.log.Error().Err(err).Msg("decode stored resume")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored resume is unreadable"})
		return
	}

	if err := a.analytics.RecordResumeDownload(); err != nil {
		a.log.Warn().Err(err).Msg("count resume download")
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, contentType, payload)
}

// decodeDataURI splits a base64 data URI into media type and raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("data URI has no payload")
	}

	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.New("data URI is not base64 encoded")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, err
	}
	return contentType, payload, nil
}
