package maintenance

import (
	"time"

	"github.com/harryphilip/household-manager/internal/model"
)

type Status string

const (
	StatusNotScheduled Status = "not_scheduled"
	StatusOverdue      Status = "overdue"
	StatusDueToday     Status = "due_today"
	StatusUpcoming     Status = "upcoming"
)

// Classify maps a task's due date to its display status as of today. Status
// is never persisted; it is recomputed on every read. IsActive is reported
// separately. An inactive task still carries whichever due-state its dates
// imply.
func Classify(task model.MaintenanceTask, today time.Time) Status {
	if task.NextDue == nil {
		return StatusNotScheduled
	}
	due := DateOnly(*task.NextDue)
	day := DateOnly(today)
	switch {
	case due.Before(day):
		return StatusOverdue
	case due.Equal(day):
		return StatusDueToday
	default:
		return StatusUpcoming
	}
}
