// Command pipelined serves the pipeline DAG validation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/pipelinecheck/internal/api"
	"github.com/persistorai/pipelinecheck/internal/config"
	"github.com/persistorai/pipelinecheck/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("server exited")
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if cfg.LogFormat == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	// validate() has already rejected unknown levels.
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	return log
}

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// run serves the API and metrics listeners until ctx is cancelled or either
// listener fails, then drains both within cfg.ShutdownTimeout.
func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	pipelines := service.NewPipelineService(log, cfg.MaxGraphElements)

	apiSrv := newServer(cfg.Addr(), api.NewRouter(ctx, &api.RouterDeps{
		Log:                  log,
		Pipelines:            pipelines,
		CORSOrigins:          cfg.CORSOrigins,
		CORSAllowCredentials: cfg.CORSAllowCredentials,
		CORSAllowHeaders:     cfg.CORSAllowHeaders,
		Version:              config.Version,
		MaxBodyBytes:         cfg.MaxBodyBytes,
		RateLimit:            cfg.RateLimit,
		RateBurst:            cfg.RateBurst,
		HSTS:                 cfg.HSTS,
	}))
	metricsSrv := newServer(cfg.MetricsAddr(), api.NewMetricsHandler())

	g, gctx := errgroup.WithContext(ctx)

	for name, srv := range map[string]*http.Server{"api": apiSrv, "metrics": metricsSrv} {
		g.Go(func() error {
			log.WithFields(logrus.Fields{"listener": name, "addr": srv.Addr, "version": config.Version}).Info("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s listener: %w", name, err)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return errors.Join(apiSrv.Shutdown(shutdownCtx), metricsSrv.Shutdown(shutdownCtx))
	})

	return g.Wait()
}
