// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var (
	ErrGetPurchaseOrdersQueryIsNotConstructed = errors.New(
		"GetPurchaseOrdersQuery must be created via NewGetPurchaseOrdersQuery constructor",
	)
)

// GetPurchaseOrdersQuery retrieves purchase orders, optionally filtered by
// lifecycle status.
//
// Example:
//
//	query, err := NewGetPurchaseOrdersQuery("Pending")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetPurchaseOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve purchase orders: %w", err)
//	}
type GetPurchaseOrdersQuery struct {
	status order.Status
	guard  guard.ConstructorGuard
}

// NewGetPurchaseOrdersQuery creates a query to retrieve purchase orders.
// statusFilter may be empty for the full list, or a valid status name to
// restrict the result.
func NewGetPurchaseOrdersQuery(statusFilter string) (GetPurchaseOrdersQuery, error) {
	query := GetPurchaseOrdersQuery{guard: guard.NewConstructorGuard()}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetPurchaseOrdersQuery{}, err
		}
		query.status = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPurchaseOrdersQueryIsNotConstructed if validation fails.
func (q GetPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrdersQueryIsNotConstructed)
}

// Status returns the status filter; order.Unknown means no filter.
func (q GetPurchaseOrdersQuery) Status() order.Status {
	return q.status
}

// GetPurchaseOrdersQueryResponse represents one purchase order in the read
// model.
type GetPurchaseOrdersQueryResponse struct {
	ID                   kernel.UUID
	PONumber             string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	DateChangeCount      int
	SupplierName         string
	Origin               string
	DropLocation         string
	Status               string
	ItemCount            int
}
