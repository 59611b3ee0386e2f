package api

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/pipelinecheck/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log                  *logrus.Logger
	Pipelines            PipelineParser
	CORSOrigins          []string
	CORSAllowCredentials bool
	CORSAllowHeaders     []string
	Version              string
	MaxBodyBytes         int64
	RateLimit            float64
	RateBurst            int
	HSTS                 bool
}

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	allowHeaders := deps.CORSAllowHeaders
	if len(allowHeaders) == 0 {
		allowHeaders = []string{"Content-Type", "Authorization"}
	}
	allowHeaders = append(slices.Clone(allowHeaders), middleware.RequestIDHeader)

	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders(deps.HSTS))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: deps.CORSAllowCredentials,
		MaxAge:           1 * time.Hour,
	}))
	r.Use(middleware.NewRateLimiter(ctx, deps.RateLimit, deps.RateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())
}

// registerRoutes sets up all route handlers.
func registerRoutes(r *gin.Engine, deps *RouterDeps) {
	health := NewHealthHandler(deps.Version)
	pipelines := NewPipelineHandler(deps.Pipelines, deps.Log)

	r.GET("/", health.Ping)
	r.GET("/health", health.Liveness)
	r.POST("/pipelines/parse", pipelines.Parse)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r, deps)

	return r
}

// NewMetricsHandler returns the handler for the separate metrics listener.
func NewMetricsHandler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
