package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: shiftsync update <id> <field> <value>")
	}

	resourceID := args[0]
	field := args[1]
	value := strings.Join(args[2:], " ")

	changes := map[string]any{field: value}

	// Статусы пользователь вводит в нижнем регистре
	if field == "status" {
		changes[field] = strings.ToUpper(value)
	}

	// Срок задачи вводится как RFC3339, хранится в микросекундах
	if field == "due_at" {
		due, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("invalid due date, expected RFC3339: %w", err)
		}
		changes[field] = uint64(due.UnixMicro())
	}

	rec, err := c.tasks.Update(ctx, resourceID, changes)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	c.io.Println("✓ Task updated.")
	c.io.Printf("ID: %s\n", rec.ResourceID)
	c.io.Printf("%s: %s\n", field, value)
	c.io.Println()
	c.io.Println("Note: Change is stored locally. Run 'shiftsync sync' to sync with server.")
	return nil
}

func (c *Cli) runStart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task ID. Usage: shiftsync start <id>")
	}

	rec, err := c.tasks.Start(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to start task: %w", err)
	}

	c.io.Printf("✓ Task '%s' is now in progress.\n", fieldString(rec, "title"))
	return nil
}

func (c *Cli) runDone(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task ID. Usage: shiftsync done <id>")
	}

	rec, err := c.tasks.Complete(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	c.io.Printf("✓ Task '%s' completed.\n", fieldString(rec, "title"))
	return nil
}
