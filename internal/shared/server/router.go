package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"ocr-backend/internal/exports"
	"ocr-backend/internal/ocr"
	"ocr-backend/internal/shared/config"
	"ocr-backend/internal/shared/server/middleware"
	"ocr-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	OCRHandler     *ocr.Handler
	ExportsHandler *exports.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.OCRHandler.RegisterRoutes(r)
	deps.ExportsHandler.RegisterRoutes(r)

	registerStatic(r, deps.Config)

	return r
}

// registerStatic serves the single-page front-end and the generated images
// that markdown documents reference.
func registerStatic(r *gin.Engine, cfg config.Config) {
	index := filepath.Join(cfg.WebDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		r.StaticFile("/", index)
	}
	staticDir := filepath.Join(cfg.WebDir, "static")
	if _, err := os.Stat(staticDir); err == nil {
		r.Static("/static", staticDir)
	}
	if _, err := os.Stat(cfg.ImagesDir); err == nil {
		r.Static("/images", cfg.ImagesDir)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
