package maintenance

import (
	"strings"
	"time"

	"github.com/harryphilip/household-manager/internal/model"
)

// ComputeNextDue returns lastPerformed plus the frequency's interval, as a
// UTC date. It returns nil when lastPerformed is nil or the frequency has no
// interval (as_needed). Calendar-day arithmetic, not business days.
func ComputeNextDue(lastPerformed *time.Time, freq Frequency, customDays *int) (*time.Time, error) {
	interval, err := IntervalDays(freq, customDays)
	if err != nil {
		return nil, err
	}
	if lastPerformed == nil || interval == nil {
		return nil, nil
	}
	due := DateOnly(*lastPerformed).AddDate(0, 0, *interval)
	return &due, nil
}

// Recompute re-derives NextDue from the task's own fields. Every edit that
// touches LastPerformed, Frequency, or IntervalDays must pass through here
// before persisting, so NextDue never drifts from the formula.
func Recompute(task model.MaintenanceTask) (model.MaintenanceTask, error) {
	freq, err := ParseFrequency(task.Frequency)
	if err != nil {
		return task, err
	}
	due, err := ComputeNextDue(task.LastPerformed, freq, task.IntervalDays)
	if err != nil {
		return task, err
	}
	task.NextDue = due
	return task, nil
}

// MarkComplete records a completion on performedOn and recomputes NextDue.
// All other fields are left untouched. Completing twice on the same day
// yields the same result as completing once.
func MarkComplete(task model.MaintenanceTask, performedOn time.Time) (model.MaintenanceTask, error) {
	performed := DateOnly(performedOn)
	task.LastPerformed = &performed
	return Recompute(task)
}

// ValidateTask checks the field-level rules that must hold before a task is
// written: non-empty name, known frequency, positive interval for custom.
func ValidateTask(task model.MaintenanceTask) error {
	if strings.TrimSpace(task.TaskName) == "" {
		return &ValidationError{Field: "task_name", Reason: "must not be empty"}
	}
	if task.ApplianceID == 0 {
		return &ValidationError{Field: "appliance_id", Reason: "is required"}
	}
	freq, err := ParseFrequency(task.Frequency)
	if err != nil {
		return err
	}
	if _, err := IntervalDays(freq, task.IntervalDays); err != nil {
		return err
	}
	return nil
}

// DateOnly truncates t to midnight UTC. Scheduling operates on calendar days.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
