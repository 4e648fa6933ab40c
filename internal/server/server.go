// Package server exposes a calculator over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

// HttpEndpoints serves one calculator. Requests are handled one at a time,
// since a calculator's symbol table is shared state.
type HttpEndpoints struct {
	mu   sync.Mutex
	calc *calc.Calculator
}

func NewHTTPHandler(c *calc.Calculator) *HttpEndpoints {
	return &HttpEndpoints{calc: c}
}

// NewRouter creates a router serving c with the given settings.
func NewRouter(conf config.HTTPConfig, c *calc.Calculator) *gin.Engine {
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  conf.AllowOrigins,
		AllowMethods:  []string{"POST", "GET", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length"},
		ExposeHeaders: []string{"Content-Type", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/", HealthCheckHandle)
	v1Root := router.Group("/v1")
	NewHTTPHandler(c).AddRoutes(v1Root)
	return router
}

// Run serves c until the server fails.
func Run(conf config.HTTPConfig, c *calc.Calculator) error {
	router := NewRouter(conf, c)
	slog.Info("Starting calculator API", slog.String("port", conf.Port))
	err := router.Run(":" + conf.Port)
	if err != nil {
		slog.Error("Exited calculator API", slog.String("error", err.Error()))
	}
	return err
}

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	rg.POST("/statements", requirePayload(), h.runStatement)

	symbols := rg.Group("/symbols")
	symbols.GET("", h.listSymbols)
	symbols.DELETE("/:name", h.clearSymbol)
}

func requirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			slog.Debug("RequirePayload Middleware: payload missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "payload missing"})
			return
		}
		c.Next()
	}
}
