package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig gathers everything the server needs at startup.
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	LogLevel          string
	ContactWebhookURL string
	BlogFeedURL       string
	SiteBaseURL       string
}

// Load reads configuration from the environment, falling back to safe
// defaults for anything missing. A .env file in the working directory is
// honoured when present.
func Load() AppConfig {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "portfolio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "portfolio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	contactWebhookURL := strings.TrimSpace(os.Getenv("CONTACT_WEBHOOK_URL"))
	if contactWebhookURL == "" {
		contactWebhookURL = "https://hook.eu2.make.com/portfolio-contact-intake"
	}

	blogFeedURL := strings.TrimSpace(os.Getenv("BLOG_FEED_URL"))
	if blogFeedURL == "" {
		blogFeedURL = "https://api.rss2json.com/v1/api.json?rss_url=https://medium.com/feed/@nishantsinha_4248"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://nishant.dev"
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		LogLevel:          logLevel,
		ContactWebhookURL: contactWebhookURL,
		BlogFeedURL:       blogFeedURL,
		SiteBaseURL:       siteBaseURL,
	}
}
