package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harryphilip/household-manager/internal/maintenance"
	"github.com/harryphilip/household-manager/internal/model"
)

// ErrStaleTask is returned when a write lost an optimistic-concurrency race:
// the task row changed since it was read. Concurrent edits to the same task
// must not interleave, or next_due could drift from last_performed.
var ErrStaleTask = errors.New("maintenance task was modified concurrently")

// MaintenanceStore persists maintenance tasks. Every write path re-derives
// next_due through the maintenance package before touching the row, so the
// stored value never drifts from last_performed + interval.
type MaintenanceStore struct {
	db *sql.DB
}

func NewMaintenanceStore(db *sql.DB) *MaintenanceStore {
	return &MaintenanceStore{db: db}
}

const maintenanceCols = `id, appliance_id, task_name, description, frequency, interval_days, last_performed, next_due, estimated_duration, difficulty, parts_needed, instructions, extracted_from_manual, is_active, version, created_at, updated_at`

func scanMaintenanceTask(scanner interface{ Scan(...any) error }) (*model.MaintenanceTask, error) {
	var t model.MaintenanceTask
	var intervalDays, duration sql.NullInt64
	var lastPerformed, nextDue sql.NullTime

	err := scanner.Scan(
		&t.ID, &t.ApplianceID, &t.TaskName, &t.Description, &t.Frequency,
		&intervalDays, &lastPerformed, &nextDue, &duration, &t.Difficulty,
		&t.PartsNeeded, &t.Instructions, &t.ExtractedFromManual, &t.IsActive,
		&t.Version, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if intervalDays.Valid {
		n := int(intervalDays.Int64)
		t.IntervalDays = &n
	}
	if duration.Valid {
		n := int(duration.Int64)
		t.EstimatedDuration = &n
	}
	if lastPerformed.Valid {
		d := maintenance.DateOnly(lastPerformed.Time)
		t.LastPerformed = &d
	}
	if nextDue.Valid {
		d := maintenance.DateOnly(nextDue.Time)
		t.NextDue = &d
	}
	return &t, nil
}

// Create validates the task, derives next_due, and inserts it. The zero
// Version and timestamps are filled by the database.
func (s *MaintenanceStore) Create(task model.MaintenanceTask) (*model.MaintenanceTask, error) {
	if err := maintenance.ValidateTask(task); err != nil {
		return nil, err
	}
	task, err := maintenance.Recompute(task)
	if err != nil {
		return nil, err
	}

	result, err := s.db.Exec(
		`INSERT INTO maintenance_tasks (appliance_id, task_name, description, frequency, interval_days, last_performed, next_due, estimated_duration, difficulty, parts_needed, instructions, extracted_from_manual, is_active) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ApplianceID, task.TaskName, task.Description, task.Frequency,
		nullInt(task.IntervalDays), nullTime(task.LastPerformed), nullTime(task.NextDue),
		nullInt(task.EstimatedDuration), task.Difficulty, task.PartsNeeded, task.Instructions,
		task.ExtractedFromManual, task.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *MaintenanceStore) GetByID(id int64) (*model.MaintenanceTask, error) {
	row := s.db.QueryRow(`SELECT `+maintenanceCols+` FROM maintenance_tasks WHERE id = ?`, id)
	t, err := scanMaintenanceTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get maintenance task: %w", err)
	}
	return t, nil
}

// ListByAppliance returns an appliance's tasks ordered soonest-due first,
// with unscheduled tasks last, ties broken by name.
func (s *MaintenanceStore) ListByAppliance(applianceID int64) ([]model.MaintenanceTask, error) {
	rows, err := s.db.Query(
		`SELECT `+maintenanceCols+` FROM maintenance_tasks WHERE appliance_id = ? ORDER BY next_due IS NULL ASC, next_due ASC, task_name ASC`,
		applianceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list maintenance tasks: %w", err)
	}
	defer rows.Close()
	return collectMaintenanceTasks(rows)
}

// ListActive returns every active task across all appliances, for the
// reminder scan.
func (s *MaintenanceStore) ListActive() ([]model.MaintenanceTask, error) {
	rows, err := s.db.Query(`SELECT ` + maintenanceCols + ` FROM maintenance_tasks WHERE is_active = 1 ORDER BY next_due IS NULL ASC, next_due ASC, task_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active maintenance tasks: %w", err)
	}
	defer rows.Close()
	return collectMaintenanceTasks(rows)
}

func collectMaintenanceTasks(rows *sql.Rows) ([]model.MaintenanceTask, error) {
	var tasks []model.MaintenanceTask
	for rows.Next() {
		t, err := scanMaintenanceTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Save persists an edited task. It validates, re-derives next_due from the
// task's own fields, and applies the write only if the row still carries the
// version the caller read; otherwise it returns ErrStaleTask.
func (s *MaintenanceStore) Save(task model.MaintenanceTask) (*model.MaintenanceTask, error) {
	if err := maintenance.ValidateTask(task); err != nil {
		return nil, err
	}
	task, err := maintenance.Recompute(task)
	if err != nil {
		return nil, err
	}

	result, err := s.db.Exec(
		`UPDATE maintenance_tasks SET task_name = ?, description = ?, frequency = ?, interval_days = ?, last_performed = ?, next_due = ?, estimated_duration = ?, difficulty = ?, parts_needed = ?, instructions = ?, is_active = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND version = ?`,
		task.TaskName, task.Description, task.Frequency, nullInt(task.IntervalDays),
		nullTime(task.LastPerformed), nullTime(task.NextDue), nullInt(task.EstimatedDuration),
		task.Difficulty, task.PartsNeeded, task.Instructions, task.IsActive,
		task.ID, task.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("update maintenance task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		existing, err := s.GetByID(task.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, nil
		}
		return nil, ErrStaleTask
	}
	return s.GetByID(task.ID)
}

// MarkComplete records a completion and recomputes the due date in one
// versioned write.
func (s *MaintenanceStore) MarkComplete(id int64, performedOn time.Time) (*model.MaintenanceTask, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	updated, err := maintenance.MarkComplete(*task, performedOn)
	if err != nil {
		return nil, err
	}

	result, err := s.db.Exec(
		`UPDATE maintenance_tasks SET last_performed = ?, next_due = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND version = ?`,
		nullTime(updated.LastPerformed), nullTime(updated.NextDue), id, task.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("mark complete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrStaleTask
	}
	return s.GetByID(id)
}

// Deactivate soft-disables a task. Tasks are never deleted automatically;
// this is the only retirement path short of an explicit Delete.
func (s *MaintenanceStore) Deactivate(id int64) (*model.MaintenanceTask, error) {
	_, err := s.db.Exec(`UPDATE maintenance_tasks SET is_active = 0, version = version + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("deactivate maintenance task: %w", err)
	}
	return s.GetByID(id)
}

func (s *MaintenanceStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM maintenance_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance task: %w", err)
	}
	return nil
}
