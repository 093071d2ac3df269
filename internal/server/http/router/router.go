package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/projectdesk/internal/config"
	"github.com/polkiloo/projectdesk/internal/server/http/dto"
	"github.com/polkiloo/projectdesk/internal/server/http/handlers"
	"github.com/polkiloo/projectdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ProjectDeskFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.RedirectTrailingSlash = false

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", slog.Any("panic", recovered), slog.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
	}))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Handler())
	engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.POST("/order", orderHandler.Submit)
	api.GET("/orders", orderHandler.List)
	api.POST("/review", reviewHandler.Submit)
	api.GET("/reviews", reviewHandler.List)
	api.GET("/reviews/published", reviewHandler.Published)
	api.PUT("/review/:id", reviewHandler.Approve)

	engine.GET("/health", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	var static *handlers.StaticHandler
	if cfg.StaticDir != "" {
		static = handlers.NewStaticHandler(cfg.StaticDir)
	}

	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "Method not allowed"})
	})
	engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		isAPI := path == "/api" || strings.HasPrefix(path, "/api/")
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if !isAPI && isRead && static != nil {
			static.Serve(c)
			return
		}
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Endpoint not found"})
	})

	return engine
}
