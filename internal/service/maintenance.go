// Package service coordinates the stores, the extractor, and the
// schedule math behind the operations the command surface exposes.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/harryphilip/household-manager/internal/extract"
	"github.com/harryphilip/household-manager/internal/maintenance"
	"github.com/harryphilip/household-manager/internal/manual"
	"github.com/harryphilip/household-manager/internal/model"
	"github.com/harryphilip/household-manager/internal/store"
)

type MaintenanceService struct {
	tasks      *store.MaintenanceStore
	appliances *store.ApplianceStore
	extractor  extract.Extractor
	source     manual.Source
	logger     *slog.Logger
}

func NewMaintenanceService(tasks *store.MaintenanceStore, appliances *store.ApplianceStore, extractor extract.Extractor, source manual.Source, logger *slog.Logger) *MaintenanceService {
	return &MaintenanceService{
		tasks:      tasks,
		appliances: appliances,
		extractor:  extractor,
		source:     source,
		logger:     logger,
	}
}

// ImportFromManual runs the extractor over an appliance's manual text and
// creates a task per surviving candidate. Candidates whose name matches an
// existing task for that appliance are skipped, so re-importing a manual
// does not pile up duplicates. Returns the tasks it created.
func (s *MaintenanceService) ImportFromManual(ctx context.Context, applianceID int64) ([]model.MaintenanceTask, error) {
	appliance, err := s.appliances.GetByID(applianceID)
	if err != nil {
		return nil, err
	}
	if appliance == nil {
		return nil, fmt.Errorf("appliance %d not found", applianceID)
	}

	text, err := s.source.ManualText(ctx, applianceID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Info("no manual text to extract from", "appliance_id", applianceID)
		return nil, nil
	}

	existing, err := s.tasks.ListByAppliance(applianceID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[normalizeName(t.TaskName)] = true
	}

	candidates := s.extractor.Extract(text)
	var created []model.MaintenanceTask
	for _, c := range candidates {
		if seen[normalizeName(c.TaskName)] {
			s.logger.Debug("skipping already-known task", "task_name", c.TaskName)
			continue
		}
		task, err := s.tasks.Create(model.MaintenanceTask{
			ApplianceID:         applianceID,
			TaskName:            c.TaskName,
			Description:         c.Description,
			Frequency:           string(c.Frequency),
			ExtractedFromManual: true,
			IsActive:            true,
		})
		if err != nil {
			return created, fmt.Errorf("create extracted task %q: %w", c.TaskName, err)
		}
		seen[normalizeName(c.TaskName)] = true
		created = append(created, *task)
	}

	s.logger.Info("imported maintenance tasks from manual",
		"appliance_id", applianceID,
		"appliance", appliance.Name,
		"candidates", len(candidates),
		"created", len(created))
	return created, nil
}

// Complete records that a task was performed on the given day.
func (s *MaintenanceService) Complete(taskID int64, performedOn time.Time) (*model.MaintenanceTask, error) {
	task, err := s.tasks.MarkComplete(taskID, performedOn)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("maintenance task %d not found", taskID)
	}
	s.logger.Info("maintenance task completed",
		"task_id", task.ID,
		"task_name", task.TaskName,
		"next_due", task.NextDue)
	return task, nil
}

// TaskStatus pairs a task with its classification for a given day.
type TaskStatus struct {
	Task   model.MaintenanceTask
	Status maintenance.Status
}

// DueReport classifies every active task against today. Overdue and
// due-today entries come first, in the repository's due-date order.
func (s *MaintenanceService) DueReport(today time.Time) ([]TaskStatus, error) {
	tasks, err := s.tasks.ListActive()
	if err != nil {
		return nil, err
	}

	var urgent, rest []TaskStatus
	for _, t := range tasks {
		ts := TaskStatus{Task: t, Status: maintenance.Classify(t, today)}
		switch ts.Status {
		case maintenance.StatusOverdue, maintenance.StatusDueToday:
			urgent = append(urgent, ts)
		default:
			rest = append(rest, ts)
		}
	}
	return append(urgent, rest...), nil
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
