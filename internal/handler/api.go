package handler

import (
	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	content   *service.ContentService
	auth      *service.AuthService
	analytics *service.AnalyticsService
	contacts  *service.ContactService
	blog      *service.BlogService
	log       zerolog.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(
	content *service.ContentService,
	auth *service.AuthService,
	analytics *service.AnalyticsService,
	contacts *service.ContactService,
	blog *service.BlogService,
	log zerolog.Logger,
) *API {
	return &API{
		content:   content,
		auth:      auth,
		analytics: analytics,
		contacts:  contacts,
		blog:      blog,
		log:       log,
	}
}
