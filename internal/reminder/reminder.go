// Package reminder runs the scheduled due-date scan and hands the
// results to a notifier.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/harryphilip/household-manager/internal/maintenance"
	"github.com/harryphilip/household-manager/internal/service"
)

// Notifier receives the day's due and overdue tasks. Implementations
// must tolerate an empty slice.
type Notifier interface {
	Notify(entries []service.TaskStatus) error
}

// Scheduler triggers a due-date scan on a cron spec.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	svc      *service.MaintenanceService
	notifier Notifier
	logger   *slog.Logger
}

func NewScheduler(spec string, location *time.Location, svc *service.MaintenanceService, notifier Notifier, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		spec:     spec,
		svc:      svc,
		notifier: notifier,
		logger:   logger,
	}
}

// Start registers the scan and runs until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, s.Scan); err != nil {
		return fmt.Errorf("add reminder scan: %w", err)
	}

	s.cron.Start()
	s.logger.Info("reminder scheduler started", "spec", s.spec)

	<-ctx.Done()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("reminder scheduler stopped")
}

// Scan classifies every active task and notifies about the ones that
// are due today or overdue.
func (s *Scheduler) Scan() {
	report, err := s.svc.DueReport(time.Now())
	if err != nil {
		s.logger.Error("due-date scan failed", "error", err)
		return
	}

	var due []service.TaskStatus
	for _, entry := range report {
		switch entry.Status {
		case maintenance.StatusOverdue, maintenance.StatusDueToday:
			due = append(due, entry)
		}
	}
	if len(due) == 0 {
		s.logger.Debug("no maintenance due")
		return
	}

	if err := s.notifier.Notify(due); err != nil {
		s.logger.Error("notify failed", "error", err)
	}
}
