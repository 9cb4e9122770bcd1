package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/harryphilip/household-manager/internal/config"
	"github.com/harryphilip/household-manager/internal/database"
	"github.com/harryphilip/household-manager/internal/extract"
	"github.com/harryphilip/household-manager/internal/logging"
	"github.com/harryphilip/household-manager/internal/maintenance"
	"github.com/harryphilip/household-manager/internal/manual"
	"github.com/harryphilip/household-manager/internal/model"
	"github.com/harryphilip/household-manager/internal/reminder"
	"github.com/harryphilip/household-manager/internal/service"
	"github.com/harryphilip/household-manager/internal/store"
)

const usage = `Usage: household <command> [arguments]

Commands:
  init                              create the database
  add-room <name> <type> [floor]    add a room
  rooms                             list rooms
  add-appliance <name> <type> [room-id]   add an appliance
  appliances                        list appliances
  extract <appliance-id> [file]   load manual text and extract tasks
  tasks <appliance-id>              list an appliance's maintenance tasks
  complete <task-id> [YYYY-MM-DD]   record a completion (default today)
  due                               show the due-date report
  remind                            run the reminder scheduler

Configuration is read from config.yaml (override path with HOUSEHOLD_CONFIG).
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	app, err := newApp(db, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "household: %v\n", err)
		os.Exit(1)
	}
	if err := app.run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "household: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg        config.Config
	logger     *slog.Logger
	rooms      *store.RoomStore
	appliances *store.ApplianceStore
	tasks      *store.MaintenanceStore
	svc        *service.MaintenanceService
	extractor  extract.Extractor
}

func newApp(db *sql.DB, cfg config.Config, logger *slog.Logger) (*app, error) {
	extractor, err := extract.New(cfg.Extractor.Backend, extract.Options{
		MinSegmentLength:    cfg.Extractor.MinSegmentLength,
		SimilarityThreshold: cfg.Extractor.SimilarityThreshold,
		MaxCandidates:       cfg.Extractor.MaxCandidates,
		MaxInputBytes:       cfg.Extractor.MaxInputBytes,
	})
	if err != nil {
		return nil, err
	}

	appliances := store.NewApplianceStore(db)
	tasks := store.NewMaintenanceStore(db)
	svc := service.NewMaintenanceService(tasks, appliances, extractor, manual.NewStoreSource(appliances), logger)
	return &app{
		cfg:        cfg,
		logger:     logger,
		rooms:      store.NewRoomStore(db),
		appliances: appliances,
		tasks:      tasks,
		svc:        svc,
		extractor:  extractor,
	}, nil
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "init":
		// Migrations already ran in database.Open.
		fmt.Printf("database ready at %s\n", a.cfg.DBPath)
		return nil
	case "add-room":
		return a.addRoom(args)
	case "rooms":
		return a.listRooms()
	case "add-appliance":
		return a.addAppliance(args)
	case "appliances":
		return a.listAppliances()
	case "extract":
		return a.importManual(args)
	case "tasks":
		return a.listTasks(args)
	case "complete":
		return a.complete(args)
	case "due":
		return a.due()
	case "remind":
		return a.remind()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) addRoom(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("add-room requires a name and a type")
	}
	floor := 1
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid floor %q", args[2])
		}
		floor = n
	}
	room, err := a.rooms.Create(args[0], args[1], floor, nil, "")
	if err != nil {
		return err
	}
	fmt.Printf("added room [%d] %s\n", room.ID, room.Name)
	return nil
}

func (a *app) listRooms() error {
	rooms, err := a.rooms.List()
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		fmt.Println("no rooms")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tFLOOR")
	for _, room := range rooms {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", room.ID, room.Name, room.RoomType, room.Floor)
	}
	return w.Flush()
}

func (a *app) addAppliance(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("add-appliance requires a name and a type")
	}
	appliance := model.Appliance{Name: args[0], ApplianceType: args[1]}
	if len(args) > 2 {
		roomID, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid room id %q", args[2])
		}
		appliance.RoomID = &roomID
	}
	created, err := a.appliances.Create(appliance)
	if err != nil {
		return err
	}
	fmt.Printf("added appliance [%d] %s\n", created.ID, created.Name)
	return nil
}

func (a *app) listAppliances() error {
	appliances, err := a.appliances.List()
	if err != nil {
		return err
	}
	if len(appliances) == 0 {
		fmt.Println("no appliances")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tBRAND\tROOM")
	for _, appliance := range appliances {
		room := "-"
		if appliance.RoomID != nil {
			room = strconv.FormatInt(*appliance.RoomID, 10)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", appliance.ID, appliance.Name, appliance.ApplianceType, appliance.Brand, room)
	}
	return w.Flush()
}

func (a *app) importManual(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("extract requires an appliance id")
	}
	applianceID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid appliance id %q", args[0])
	}

	if len(args) > 1 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read manual file: %w", err)
		}
		if err := a.appliances.SetManualText(applianceID, string(data)); err != nil {
			return err
		}
	}

	created, err := a.svc.ImportFromManual(context.Background(), applianceID)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Println("no new maintenance tasks found")
		return nil
	}
	fmt.Printf("created %d maintenance tasks:\n", len(created))
	for _, task := range created {
		fmt.Printf("  [%d] %s (%s)\n", task.ID, task.TaskName, task.Frequency)
	}
	return nil
}

func (a *app) listTasks(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("tasks requires an appliance id")
	}
	applianceID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid appliance id %q", args[0])
	}

	tasks, err := a.tasks.ListByAppliance(applianceID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("no maintenance tasks")
		return nil
	}

	today := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTASK\tFREQUENCY\tNEXT DUE\tSTATUS")
	for _, task := range tasks {
		due := "-"
		if task.NextDue != nil {
			due = fmt.Sprintf("%s (%s)", task.NextDue.Format("2006-01-02"), humanize.Time(*task.NextDue))
		}
		status := maintenance.Classify(task, today)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", task.ID, task.TaskName, task.Frequency, due, status)
	}
	return w.Flush()
}

func (a *app) complete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("complete requires a task id")
	}
	taskID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	performedOn := time.Now()
	if len(args) > 1 {
		performedOn, err = time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", args[1])
		}
	}

	task, err := a.svc.Complete(taskID, performedOn)
	if err != nil {
		return err
	}
	if task.NextDue != nil {
		fmt.Printf("%s completed; next due %s (%s)\n",
			task.TaskName, task.NextDue.Format("2006-01-02"), humanize.Time(*task.NextDue))
	} else {
		fmt.Printf("%s completed\n", task.TaskName)
	}
	return nil
}

func (a *app) due() error {
	report, err := a.svc.DueReport(time.Now())
	if err != nil {
		return err
	}
	if len(report) == 0 {
		fmt.Println("no active maintenance tasks")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tTASK\tAPPLIANCE\tNEXT DUE")
	for _, entry := range report {
		due := "-"
		if entry.Task.NextDue != nil {
			due = fmt.Sprintf("%s (%s)", entry.Task.NextDue.Format("2006-01-02"), humanize.Time(*entry.Task.NextDue))
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", entry.Status, entry.Task.TaskName, entry.Task.ApplianceID, due)
	}
	return w.Flush()
}

func (a *app) remind() error {
	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}
	sched := reminder.NewScheduler(a.cfg.ReminderSpec, loc, a.svc, reminder.NewLogNotifier(a.logger), a.logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// First scan immediately so a freshly started process reports today.
	sched.Scan()

	if err := sched.Start(ctx); err != nil {
		return err
	}
	sched.Stop()
	return nil
}
