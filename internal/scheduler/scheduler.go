package scheduler

import (
	"context"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// schedulerActor tags audit notes written by background runs.
const schedulerActor = "scheduler"

type syncRunner interface {
	Reconcile(ctx context.Context, actor string) (*domain.SyncReport, error)
}

type conflictDispatcher interface {
	DispatchNotifications(ctx context.Context) (int, error)
}

// Scheduler re-runs reconciliation and conflict notification on an interval.
// Both operations are safe to invoke repeatedly; a failed tick is logged and
// the next one starts fresh.
type Scheduler struct {
	sync      syncRunner
	conflicts conflictDispatcher
	interval  time.Duration
	logger    logger.Logger
}

func New(
	sync syncRunner,
	conflicts conflictDispatcher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sync:      sync,
		conflicts: conflicts,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.sync.Reconcile(ctx, schedulerActor)
	if err != nil {
		s.logger.Error("scheduled reconcile failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range report.Errors {
		s.logger.Error("reconcile item failed", logger.String("error", e))
	}

	if _, err := s.conflicts.DispatchNotifications(ctx); err != nil {
		s.logger.Error("scheduled conflict dispatch failed",
			logger.String("error", err.Error()),
		)
	}
}
