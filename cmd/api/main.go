package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/customer360-api/infrastructure/cache"
	"github.com/vfg2006/customer360-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/assistant"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/c360client"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/schema"
	"github.com/vfg2006/customer360-api/infrastructure/publisher"
	"github.com/vfg2006/customer360-api/infrastructure/repository"
	"github.com/vfg2006/customer360-api/internal/api"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/scheduler"
	"github.com/vfg2006/customer360-api/internal/usecases/acting"
	"github.com/vfg2006/customer360-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer360-api/internal/usecases/chatting"
	"github.com/vfg2006/customer360-api/internal/usecases/organizing"
	"github.com/vfg2006/customer360-api/internal/usecases/personalizing"
	"github.com/vfg2006/customer360-api/internal/usecases/segmenting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("main: invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	ledger := repository.NewActionExecutionRepository(pgConn)

	queryCache := cache.New(cfg.Cache, remoteStore(ctx, cfg.Cache))
	defer queryCache.Close()

	validator, err := schema.New()
	if err != nil {
		logrus.WithError(err).Fatal("main: could not compile payload schemas")
	}

	client := c360client.NewClient(cfg, validator)
	integrator := customer360.New(cfg, client, queryCache)

	actionPublisher := publisher.NewActionPublisher(cfg.Actions)
	defer actionPublisher.Close()

	authenticator := authenticating.NewService(userRepo, cfg)
	organizer := organizing.NewService(integrator, organizing.NewGuard())
	executor := acting.NewService(integrator, ledger, actionPublisher, acting.NewTracker(cfg.Actions.BannerDuration))

	llm := assistant.New(cfg)
	if !llm.Enabled() {
		logrus.Info("main: OPENAI_API_KEY not set, chat uses the backend chatbot only")
	}

	directoryRefresh := scheduler.NewDirectoryRefreshService(integrator, cfg)
	if err := directoryRefresh.Start(ctx); err != nil {
		logrus.WithError(err).Error("main: directory refresh scheduler not started")
	}

	server, err := api.New(cfg, api.Services{
		Integrator:       integrator,
		Authenticator:    authenticator,
		Segmenter:        segmenting.NewService(integrator),
		Organizer:        organizer,
		Viewer:           personalizing.NewService(integrator),
		Executor:         executor,
		Chatter:          chatting.NewService(cfg, integrator, llm),
		DirectoryRefresh: directoryRefresh,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("main: could not connect to PostgreSQL")
	}

	logrus.Info("main: PostgreSQL connection established")
	return conn
}

// remoteStore returns the shared Redis tier, or nil to keep the cache
// in-process when Redis is not configured or not reachable.
func remoteStore(ctx context.Context, cfg config.Cache) cache.RemoteStore {
	store := cache.NewRedisStore(cfg)
	if store == nil {
		return nil
	}

	if err := store.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("main: redis unreachable, query cache stays in-process")
		_ = store.Close()
		return nil
	}

	logrus.WithField("addr", cfg.RedisAddr).Info("main: redis query cache tier enabled")
	return store
}
