package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	includeDeleted := false
	for _, arg := range args {
		if arg == "--all" {
			includeDeleted = true
			break
		}
	}

	records, err := c.tasks.List(ctx, includeDeleted)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	c.io.Println("=== Tasks ===")
	c.io.Println()

	if len(records) == 0 {
		c.io.Println("No tasks found. Run 'shiftsync add' to create one.")
		return nil
	}

	// Заголовок занимает фиксированные колонки, остаток ширины
	// терминала отдаем под название задачи
	titleWidth := c.io.Width() - 44
	if titleWidth < 10 {
		titleWidth = 10
	}

	c.io.Printf("%-10s %-12s %-8s %s\n", "ID", "STATUS", "PRIORITY", "TITLE")
	for _, rec := range records {
		status := fieldString(rec, "status")
		if rec.Deleted {
			status = "DELETED"
		}
		c.io.Printf("%-10s %-12s %-8s %s\n",
			shortID(rec.ResourceID),
			status,
			fieldString(rec, "priority"),
			truncate(fieldString(rec, "title"), titleWidth))
	}

	c.io.Println()
	c.io.Printf("Total: %d task(s)\n", len(records))
	return nil
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task ID. Usage: shiftsync get <id>")
	}

	rec, err := c.tasks.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	c.io.Println("=== Task Details ===")
	c.io.Println()
	c.io.Printf("ID:          %s\n", rec.ResourceID)
	c.io.Printf("Title:       %s\n", fieldString(rec, "title"))
	c.io.Printf("Description: %s\n", fieldString(rec, "description"))
	c.io.Printf("Assigned to: %s\n", fieldString(rec, "assigned_to"))
	c.io.Printf("Priority:    %s\n", fieldString(rec, "priority"))
	c.io.Printf("Status:      %s\n", fieldString(rec, "status"))
	c.io.Printf("Created:     %s\n", formatMicros(rec.CreatedAt))
	c.io.Printf("Updated:     %s\n", formatMicros(rec.UpdatedAt))

	if rec.Deleted {
		c.io.Println()
		c.io.Printf("⚠️  Task was deleted at %s\n", formatMicros(rec.DeletedAt))
	}
	return nil
}
