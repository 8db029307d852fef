package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Quotes    *handlers.QuoteHandler
	Catalog   *handlers.CatalogHandler
	Analytics *handlers.AnalyticsHandler
	Export    *handlers.ExportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/api/login", h.Auth.Login)
	r.POST("/api/logout", h.Auth.Logout)

	r.GET("/api/categories", h.Catalog.Categories)
	r.GET("/api/categories/:category", h.Catalog.Listing)
	r.GET("/api/quotes/latest", h.Quotes.Latest)
	r.GET("/api/analytics/activity", h.Analytics.Activity)
	r.GET("/api/export/:currency", h.Export.Ledger)

	// Writes and the audit trail require a session.
	authed := r.Group("/api", h.Auth.RequireSession())
	authed.POST("/quotes", h.Quotes.Submit)
	authed.GET("/quotes/history", h.Quotes.History)
	authed.POST("/products", h.Catalog.AddProduct)
	authed.POST("/categories/:category/refresh", h.Catalog.Refresh)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
