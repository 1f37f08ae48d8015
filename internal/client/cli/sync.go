package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/shiftsync/internal/client/api"
	"github.com/iudanet/shiftsync/internal/client/storage"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Synchronizing with server...")

	result, err := c.sync.Sync(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotInitialized) || api.IsUnknownNode(err) {
			return fmt.Errorf("device is not registered. Run 'shiftsync init' first")
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println()
	if result.Resynced {
		c.io.Println("⚠️  Local state was replaced by the server snapshot (full resync).")
		c.io.Println("Unsent local changes, if any, were discarded.")
		return nil
	}

	c.io.Println("✓ Sync completed!")
	c.io.Printf("Pushed: %d operation(s)\n", result.Pushed)
	if result.Conflicts > 0 {
		c.io.Printf("⚠️  Conflicts resolved: %d (see server conflict log)\n", result.Conflicts)
	}
	if result.Level != "" && result.Level != "OPTIMAL" {
		c.io.Printf("Server performance level: %s, batches are throttled\n", result.Level)
	}
	return nil
}
