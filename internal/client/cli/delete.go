package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task ID. Usage: shiftsync delete <id>")
	}
	resourceID := args[0]

	rec, err := c.tasks.Get(ctx, resourceID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	c.io.Printf("Task: %s\n", fieldString(rec, "title"))
	answer, err := c.io.ReadInput("Delete this task? Deletion propagates to all devices. (y/N): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if strings.ToLower(answer) != "y" {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.tasks.Delete(ctx, resourceID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.io.Println("✓ Task deleted.")
	c.io.Println("Note: Deletion is stored locally. Run 'shiftsync sync' to sync with server.")
	return nil
}
