package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/internal/api/handler"
	"github.com/alikitto/ad-dash/internal/api/handler/router"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/scheduler"
	"github.com/alikitto/ad-dash/internal/usecases/analysing"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
	"github.com/alikitto/ad-dash/internal/usecases/clienting"
	"github.com/alikitto/ad-dash/internal/usecases/insighting"
	"github.com/alikitto/ad-dash/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	Insights      insighting.Insighter
	Clients       clienting.Manager
	Analysis      analysing.Analyzer
	Authenticator authenticating.Authenticator
	MetaHealth    scheduler.HealthChecker
}

// NewHandler monta o router com todas as rotas e a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Insights(services.Insights)...),
		router.WithRoutes(handler.Analysis(services.Analysis)...),
		router.WithRoutes(handler.MetaHealth(services.MetaHealth)...),
		router.WithRoutes(handler.Clients(services.Clients)...),
		router.WithRoutes(handler.Avatars(services.Clients)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if cfg.Server.Port == "" {
		return nil, fmt.Errorf("http: server port is not configured")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("http: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("http: server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("http: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("http: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("http: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("http: shutdown failed")
		return err
	}

	logrus.Info("http: server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
