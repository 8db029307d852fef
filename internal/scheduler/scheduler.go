package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/service/catalog"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron       *cron.Cron
	catalogSvc *catalog.Service
	cfg        config.Config
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, catalogSvc *catalog.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:       cron.New(),
		catalogSvc: catalogSvc,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start registers the catalog refresh job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Cache.RefreshSchedule))

	_, err := s.cron.AddFunc(s.cfg.Cache.RefreshSchedule, s.refreshCatalog)
	if err != nil {
		s.logger.Error("failed to schedule catalog refresh", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshCatalog() {
	s.logger.Info("refreshing catalog snapshots")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.catalogSvc.RefreshAll(ctx)
}
