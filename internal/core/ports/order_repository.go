// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work and the ERP gateway.
// They enable dependency inversion and testability.
package ports

import (
	"context"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order
// aggregates. Provides methods for storing, retrieving, and querying orders
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPONumber retrieves an order aggregate by its business identifier.
	// Used by the delivery date workflow and the ERP synchronization upsert.
	GetByPONumber(ctx context.Context, poNumber string) (*order.Order, error)

	// GetAllInPendingStatus retrieves every order still awaiting
	// consolidation, in creation order. This is the planner's input snapshot.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves every order regardless of status, in creation order.
	// Used by listing queries and supplier scoring.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
