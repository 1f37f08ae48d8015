package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/shiftsync/internal/client/iocli"
	syncsvc "github.com/iudanet/shiftsync/internal/client/sync"
	"github.com/iudanet/shiftsync/internal/client/tasks"
	"github.com/iudanet/shiftsync/internal/models"
)

//go:generate moq -out tasks_mock.go . TaskService

// TaskService определяет операции над задачами, доступные из CLI.
type TaskService interface {
	Create(ctx context.Context, input tasks.CreateInput) (*models.Record, error)
	Update(ctx context.Context, resourceID string, changes map[string]any) (*models.Record, error)
	Complete(ctx context.Context, resourceID string) (*models.Record, error)
	Start(ctx context.Context, resourceID string) (*models.Record, error)
	Delete(ctx context.Context, resourceID string) error
	Get(ctx context.Context, resourceID string) (*models.Record, error)
	List(ctx context.Context, includeDeleted bool) ([]*models.Record, error)
}

//go:generate moq -out sync_mock.go . SyncService

// SyncService определяет операции синхронизации, доступные из CLI.
type SyncService interface {
	Initialize(ctx context.Context, nodeID, deviceType, userID string) error
	Sync(ctx context.Context) (*syncsvc.Result, error)
	Status(ctx context.Context) (*syncsvc.Status, error)
}

type Cli struct {
	io    iocli.IO
	tasks TaskService
	sync  SyncService
}

func New(io iocli.IO, taskService TaskService, syncService SyncService) *Cli {
	return &Cli{
		io:    io,
		tasks: taskService,
		sync:  syncService,
	}
}

// Run выполняет одну команду CLI.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "init":
		return c.runInit(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "start":
		return c.runStart(ctx, args)
	case "done":
		return c.runDone(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "status":
		return c.runStatus(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Println("ShiftSync Client")
	fmt.Println()
	fmt.Println("Offline-first task tracker for shift teams. Changes are stored")
	fmt.Println("locally and merged with the server on 'sync'.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shiftsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: shiftsync-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init                       Register this device on the server")
	fmt.Println("  add [--sync]               Add new task")
	fmt.Println("  list [--all]               List tasks (--all includes deleted)")
	fmt.Println("  get <id>                   Show full task details")
	fmt.Println("  update <id> <field> <val>  Update task field (title, description,")
	fmt.Println("                             assigned_to, priority, status, due_at)")
	fmt.Println("  start <id>                 Move task to IN_PROGRESS")
	fmt.Println("  done <id>                  Move task to COMPLETED")
	fmt.Println("  delete <id>                Delete task (tombstone, propagates on sync)")
	fmt.Println("  sync                       Synchronize local changes with server")
	fmt.Println("  status                     Show node ID and pending changes")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  shiftsync init")
	fmt.Println("  shiftsync add")
	fmt.Println("  shiftsync list")
	fmt.Println("  shiftsync update b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 priority high")
	fmt.Println("  shiftsync done b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  shiftsync --server https://sync.example.com sync")
}
