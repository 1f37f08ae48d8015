package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	status, err := c.sync.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	if !status.Initialized {
		c.io.Println("Status: Device not registered")
		c.io.Println()
		c.io.Println("Run 'shiftsync init' to register this device.")
		return nil
	}

	c.io.Printf("Node ID: %s\n", status.NodeID)
	c.io.Printf("Last sync: %s\n", formatMicros(status.LastSyncAt))
	c.io.Println()

	if status.PendingCount > 0 {
		c.io.Printf("⚠️  Pending sync: %d operation(s) waiting to be synchronized\n", status.PendingCount)
		c.io.Println("Run 'shiftsync sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All changes synchronized with server")
	}
	return nil
}
