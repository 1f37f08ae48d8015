package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (c *Cli) runInit(ctx context.Context) error {
	c.io.Println("=== Register Device ===")
	c.io.Println()

	status, err := c.sync.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check node status: %w", err)
	}

	// Идентичность узла создается при первом запуске клиента;
	// init лишь регистрирует ее на сервере.
	nodeID := status.NodeID
	if nodeID == "" {
		nodeID = uuid.NewString()
	}

	deviceType, err := c.io.ReadInput("Device type (e.g., 'tablet', 'phone', 'workstation'): ")
	if err != nil {
		return fmt.Errorf("failed to read device type: %w", err)
	}
	if deviceType == "" {
		deviceType = "workstation"
	}

	userID, err := c.io.ReadInput("User ID (e.g., 'nurse-7'): ")
	if err != nil {
		return fmt.Errorf("failed to read user ID: %w", err)
	}
	if userID == "" {
		return fmt.Errorf("user ID cannot be empty")
	}

	if err := c.sync.Initialize(ctx, nodeID, deviceType, userID); err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Device registered successfully!")
	c.io.Printf("Node ID: %s\n", nodeID)
	c.io.Println()
	c.io.Println("Tasks created offline will be merged on 'shiftsync sync'.")
	return nil
}
