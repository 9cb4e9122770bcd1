package model

import "time"

const (
	DifficultyEasy         = "easy"
	DifficultyMedium       = "medium"
	DifficultyHard         = "hard"
	DifficultyProfessional = "professional"
)

// MaintenanceTask is a recurring or one-off maintenance action tied to one
// appliance. NextDue is derived: it is set only through the maintenance
// package so it never drifts from LastPerformed + interval.
type MaintenanceTask struct {
	ID                  int64      `json:"id"`
	ApplianceID         int64      `json:"appliance_id"`
	TaskName            string     `json:"task_name"`
	Description         string     `json:"description"`
	Frequency           string     `json:"frequency"`
	IntervalDays        *int       `json:"interval_days"`
	LastPerformed       *time.Time `json:"last_performed"`
	NextDue             *time.Time `json:"next_due"`
	EstimatedDuration   *int       `json:"estimated_duration"`
	Difficulty          string     `json:"difficulty"`
	PartsNeeded         string     `json:"parts_needed"`
	Instructions        string     `json:"instructions"`
	ExtractedFromManual bool       `json:"extracted_from_manual"`
	IsActive            bool       `json:"is_active"`
	Version             int        `json:"version"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
