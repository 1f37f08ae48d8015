package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/shiftsync/internal/client/tasks"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	// Парсим флаг --sync
	syncFlag := false
	for _, arg := range args {
		if arg == "--sync" {
			syncFlag = true
			break
		}
	}

	c.io.Println("=== Add Task ===")
	c.io.Println()
	c.io.Println("Enter task details:")
	c.io.Println()

	title, err := c.io.ReadInput("Title (e.g., 'Restock supply cart'): ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	assignedTo, err := c.io.ReadInput("Assigned to (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read assignee: %w", err)
	}

	priority, err := c.io.ReadInput("Priority (low/normal/high, default normal): ")
	if err != nil {
		return fmt.Errorf("failed to read priority: %w", err)
	}
	if priority == "" {
		priority = "normal"
	}

	dueInput, err := c.io.ReadInput("Due at (RFC3339, optional): ")
	if err != nil {
		return fmt.Errorf("failed to read due date: %w", err)
	}
	var dueAt uint64
	if dueInput != "" {
		due, err := time.Parse(time.RFC3339, dueInput)
		if err != nil {
			return fmt.Errorf("invalid due date, expected RFC3339 (e.g. 2026-01-15T14:00:00Z): %w", err)
		}
		dueAt = uint64(due.UnixMicro())
	}

	rec, err := c.tasks.Create(ctx, tasks.CreateInput{
		Title:       title,
		Description: description,
		AssignedTo:  assignedTo,
		Priority:    priority,
		DueAt:       dueAt,
	})
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Task added successfully!")
	c.io.Printf("ID: %s\n", rec.ResourceID)
	c.io.Printf("Title: %s\n", title)
	c.io.Println()

	if syncFlag {
		c.io.Println("Syncing with server...")
		if err := c.runSync(ctx); err != nil {
			return fmt.Errorf("failed to sync: %w", err)
		}
	} else {
		c.io.Println("Note: Task is stored locally. Run 'shiftsync sync' to sync with server.")
	}
	return nil
}
