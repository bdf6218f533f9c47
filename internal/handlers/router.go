package handlers

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bazaar-baba/backend/internal/catalog"
	"github.com/bazaar-baba/backend/internal/orders"
)

const apiVersion = "2.0.0"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config groups the dependencies the HTTP layer needs. Everything is
// injected; handlers never reach for ambient state.
type Config struct {
	Products       *catalog.Store
	Orders         *orders.Store
	DB             Pinger
	AllowedOrigins []string
}

// NewRouter builds the gin engine: recovery, request ids, access
// logging, CORS and all API routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog())

	if len(cfg.AllowedOrigins) > 0 {
		cc := cors.DefaultConfig()
		cc.AllowOrigins = cfg.AllowedOrigins
		cc.AllowCredentials = true
		// origins are restricted, methods and headers are not
		cc.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
		cc.AddAllowHeaders("*")
		r.Use(cors.New(cc))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Bazaar Baba API is running",
			"version": apiVersion,
		})
	})

	r.GET("/health", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "not configured"})
			return
		}
		if err := cfg.DB.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusOK, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
	})

	RegisterProductsRoutes(r, cfg)
	RegisterOrdersRoutes(r, cfg)

	return r
}
