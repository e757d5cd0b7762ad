package commands

import (
	"errors"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

// SyncPurchaseOrdersCommand triggers reconciliation of local purchase orders
// against the upstream ERP system. This batch operation registers orders the
// ERP added and refreshes header data on orders still awaiting consolidation.
//
// Example:
//
//	cmd := NewSyncPurchaseOrdersCommand()
//	handler := NewSyncPurchaseOrdersCommandHandler(gateway, uowFactory)
//
//	// Run periodically to keep the portal aligned with the ERP
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("ERP sync failed: %v", err)
//	}
type SyncPurchaseOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrSyncPurchaseOrdersCommandIsNotConstructed = errors.New(
		"SyncPurchaseOrdersCommand must be created via NewSyncPurchaseOrdersCommand constructor",
	)
)

// NewSyncPurchaseOrdersCommand creates a command to trigger an ERP sync.
// This is a parameterless command that reconciles the full submitted set.
func NewSyncPurchaseOrdersCommand() SyncPurchaseOrdersCommand {
	command := SyncPurchaseOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncPurchaseOrdersCommandIsNotConstructed if validation fails.
func (c *SyncPurchaseOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncPurchaseOrdersCommandIsNotConstructed)
}
