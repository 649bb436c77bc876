package handler

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/shiprate/shiprate-server/docs"
	"github.com/shiprate/shiprate-server/internal/api/middleware"
	"github.com/shiprate/shiprate-server/internal/config"
	"github.com/shiprate/shiprate-server/pkg/response"
)

// NewRouter assembles the gin engine: recovery, gzip, tracing, sentry,
// rate limiting, then the versioned API routes.
func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware("shiprate-server"))
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.GET("/healthz", func(c *gin.Context) { response.Success(c, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/ships", h.SearchShips)
		api.GET("/ships/:id", h.GetShip)
		api.POST("/ships", middleware.RequireAuth(h.auth), h.CreateShip)

		api.GET("/ships/:id/ratings", h.ListRatings)
		api.POST("/ships/:id/ratings", middleware.RequireAuth(h.auth), h.SubmitRating)

		api.GET("/dashboard", middleware.OptionalAuth(h.auth), h.Dashboard)
		api.POST("/feedback", middleware.OptionalAuth(h.auth), h.SubmitFeedback)
		api.GET("/install-hint", h.InstallHint)
	}

	return r
}
