package handler

import (
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appdb "github.com/sinha001/portfolio-server/internal/db"
	"github.com/sinha001/portfolio-server/internal/kv"
	"github.com/sinha001/portfolio-server/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestAPI builds an API over an in-memory database plus a gin engine with
// the session middleware handlers expect.
func newTestAPI(t *testing.T) (*API, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&appdb.KVEntry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	store := kv.NewStore(gdb)
	log := zerolog.Nop()
	content := service.NewContentService(store, log)
	auth := service.NewAuthService(store, service.NewFixedCredentialVerifier(), log)
	analytics := service.NewAnalyticsService(store, log)
	contacts := service.NewContactService(store, "", log)
	blog := service.NewBlogService(content, "", log)

	api := NewAPI(content, auth, analytics, contacts, blog, log)

	r := gin.New()
	r.Use(sessions.Sessions("portfolio_session", cookie.NewStore([]byte("test-secret"))))
	return api, r
}
