// Package scheduler runs the background jobs that keep the query cache warm.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/pkg/log"
)

const refreshTimeout = 2 * time.Minute

// DirectoryRefresher reloads the lists every landing page needs.
type DirectoryRefresher interface {
	RefreshDirectory(ctx context.Context) error
}

type DirectoryRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

type DirectoryRefreshService struct {
	scheduler *gocron.Scheduler
	refresher DirectoryRefresher
	config    DirectoryRefreshConfig

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func NewDirectoryRefreshService(refresher DirectoryRefresher, cfg *config.Config) *DirectoryRefreshService {
	refreshConfig := DirectoryRefreshConfig{
		CronSchedule: cfg.DirectoryRefresh.CronSchedule,
		Enabled:      cfg.DirectoryRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("scheduler: directory refresh configured")

	return &DirectoryRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *DirectoryRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("scheduler: directory refresh disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(ctx); err != nil {
			log.L.WithError(err).Error("scheduler: directory refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduler: schedule directory refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping directory refresh")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh runs one refresh. A call while another is running returns at once.
func (s *DirectoryRefreshService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.L.Warn("scheduler: directory refresh already running")
		return nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	err := s.refresher.RefreshDirectory(ctx)

	s.mu.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.mu.Unlock()

	if err == nil {
		log.L.Info("scheduler: directory refreshed")
	}
	return err
}

// TriggerManualSync starts a refresh in the background.
func (s *DirectoryRefreshService) TriggerManualSync() {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		log.L.Info("scheduler: directory refresh already running, ignoring manual trigger")
		return
	}

	go func() {
		if err := s.Refresh(context.Background()); err != nil {
			log.L.WithError(err).Error("scheduler: manual directory refresh failed")
		}
	}()
}

func (s *DirectoryRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.running,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
		"last_error":             s.lastError,
	}
}
