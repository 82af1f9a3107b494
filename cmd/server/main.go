package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/config"
	"github.com/sinha001/portfolio-server/internal/db"
	"github.com/sinha001/portfolio-server/internal/handler"
	"github.com/sinha001/portfolio-server/internal/kv"
	"github.com/sinha001/portfolio-server/internal/router"
	"github.com/sinha001/portfolio-server/internal/service"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	gin.SetMode(cfg.GinMode)

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	store := kv.NewStore(gdb)
	content := service.NewContentService(store, log)
	auth := service.NewAuthService(store, service.NewFixedCredentialVerifier(), log)
	analytics := service.NewAnalyticsService(store, log)
	contacts := service.NewContactService(store, cfg.ContactWebhookURL, log)
	blog := service.NewBlogService(content, cfg.BlogFeedURL, log)

	api := handler.NewAPI(content, auth, analytics, contacts, blog, log)

	r := router.Setup(api, cfg.SessionSecret)
	log.Info().Str("addr", cfg.ListenAddr).Msg("starting portfolio server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
