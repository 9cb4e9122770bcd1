package reminder

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/harryphilip/household-manager/internal/service"
)

// LogNotifier writes the due summary to the structured log. It is the
// default sink; richer channels can implement Notifier alongside it.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(entries []service.TaskStatus) error {
	n.logger.Info("maintenance due", "count", len(entries))
	for _, entry := range entries {
		attrs := []any{
			"task_id", entry.Task.ID,
			"task_name", entry.Task.TaskName,
			"appliance_id", entry.Task.ApplianceID,
			"status", entry.Status,
		}
		if entry.Task.NextDue != nil {
			attrs = append(attrs, "due", humanize.Time(*entry.Task.NextDue))
		}
		n.logger.Info("maintenance task due", attrs...)
	}
	return nil
}
