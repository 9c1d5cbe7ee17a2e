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

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/api/handler"
	"github.com/vfg2006/customer360-api/internal/api/handler/router"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/scheduler"
	"github.com/vfg2006/customer360-api/internal/usecases/acting"
	"github.com/vfg2006/customer360-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer360-api/internal/usecases/chatting"
	"github.com/vfg2006/customer360-api/internal/usecases/organizing"
	"github.com/vfg2006/customer360-api/internal/usecases/personalizing"
	"github.com/vfg2006/customer360-api/internal/usecases/segmenting"
	"github.com/vfg2006/customer360-api/pkg/log"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services is everything the HTTP layer calls into.
type Services struct {
	Integrator       customer360.Integrator
	Authenticator    authenticating.Authenticator
	Segmenter        segmenting.Segmenter
	Organizer        organizing.Organizer
	Viewer           personalizing.Viewer
	Executor         acting.Executor
	Chatter          chatting.Chatter
	DirectoryRefresh *scheduler.DirectoryRefreshService
}

type Server struct {
	httpServer *http.Server
}

// NewHandler builds the routed handler behind the global middleware chain.
func NewHandler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	if services.DirectoryRefresh != nil {
		cronServices[handler.CronJobTypeDirectory] = services.DirectoryRefresh
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Customers(services.Integrator, services.Organizer, services.Viewer)...),
		router.WithRoutes(handler.Organization(services.Integrator, services.Organizer)...),
		router.WithRoutes(handler.Segments(services.Segmenter)...),
		router.WithRoutes(handler.Navigation(handler.DrillDeps{
			Integrator: services.Integrator,
			Segmenter:  services.Segmenter,
			Organizer:  services.Organizer,
		})...),
		router.WithRoutes(handler.Actions(services.Executor)...),
		router.WithRoutes(handler.Chat(services.Chatter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.CORS.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("api: authenticator is required")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server: stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("server: interrupt received")
	case <-ctx.Done():
		log.L.Info("server: context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("server: shutting down")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: shutdown failed")
		return err
	}

	log.L.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
