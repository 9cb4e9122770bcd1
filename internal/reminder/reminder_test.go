package reminder

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/harryphilip/household-manager/internal/database"
	"github.com/harryphilip/household-manager/internal/extract"
	"github.com/harryphilip/household-manager/internal/maintenance"
	"github.com/harryphilip/household-manager/internal/manual"
	"github.com/harryphilip/household-manager/internal/model"
	"github.com/harryphilip/household-manager/internal/service"
	"github.com/harryphilip/household-manager/internal/store"
)

type fakeNotifier struct {
	calls   int
	entries []service.TaskStatus
}

func (f *fakeNotifier) Notify(entries []service.TaskStatus) error {
	f.calls++
	f.entries = entries
	return nil
}

func setupScheduler(t *testing.T) (*Scheduler, *fakeNotifier, *store.MaintenanceStore, int64) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	appliances := store.NewApplianceStore(db)
	tasks := store.NewMaintenanceStore(db)
	appliance, err := appliances.Create(model.Appliance{
		Name: "Water heater", ApplianceType: model.ApplianceTypeWaterHeater,
	})
	if err != nil {
		t.Fatalf("create appliance: %v", err)
	}

	extractor, err := extract.New("pattern", extract.DefaultOptions())
	if err != nil {
		t.Fatalf("create extractor: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewMaintenanceService(tasks, appliances, extractor, manual.NewStoreSource(appliances), logger)

	notifier := &fakeNotifier{}
	sched := NewScheduler("0 8 * * *", time.UTC, svc, notifier, logger)
	return sched, notifier, tasks, appliance.ID
}

func TestScanNotifiesDueTasks(t *testing.T) {
	sched, notifier, tasks, applianceID := setupScheduler(t)

	overdue := time.Now().UTC().AddDate(0, 0, -30)
	if _, err := tasks.Create(model.MaintenanceTask{
		ApplianceID: applianceID, TaskName: "Flush tank",
		Frequency: string(maintenance.Weekly), LastPerformed: &overdue, IsActive: true,
	}); err != nil {
		t.Fatalf("create overdue task: %v", err)
	}
	if _, err := tasks.Create(model.MaintenanceTask{
		ApplianceID: applianceID, TaskName: "Check pressure valve",
		Frequency: string(maintenance.AsNeeded), IsActive: true,
	}); err != nil {
		t.Fatalf("create unscheduled task: %v", err)
	}

	sched.Scan()

	if notifier.calls != 1 {
		t.Fatalf("notifier called %d times, want 1", notifier.calls)
	}
	if len(notifier.entries) != 1 {
		t.Fatalf("got %d due entries, want 1", len(notifier.entries))
	}
	if notifier.entries[0].Task.TaskName != "Flush tank" {
		t.Errorf("due task = %q, want %q", notifier.entries[0].Task.TaskName, "Flush tank")
	}
	if notifier.entries[0].Status != maintenance.StatusOverdue {
		t.Errorf("status = %q, want overdue", notifier.entries[0].Status)
	}
}

func TestScanSkipsNotifierWhenNothingDue(t *testing.T) {
	sched, notifier, tasks, applianceID := setupScheduler(t)

	recent := time.Now().UTC().AddDate(0, 0, -1)
	if _, err := tasks.Create(model.MaintenanceTask{
		ApplianceID: applianceID, TaskName: "Inspect anode rod",
		Frequency: string(maintenance.Annual), LastPerformed: &recent, IsActive: true,
	}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	sched.Scan()

	if notifier.calls != 0 {
		t.Errorf("notifier called %d times, want 0", notifier.calls)
	}
}
