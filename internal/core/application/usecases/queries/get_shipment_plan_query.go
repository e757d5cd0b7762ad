package queries

import (
	"errors"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var (
	ErrGetShipmentPlanQueryIsNotConstructed = errors.New(
		"GetShipmentPlanQuery must be created via NewGetShipmentPlanQuery constructor",
	)
)

// GetShipmentPlanQuery computes shipment proposals for the current pending
// order backlog. The plan is advisory: nothing is persisted until a proposal
// is accepted.
//
// Example:
//
//	query := NewGetShipmentPlanQuery()
//	handler := NewGetShipmentPlanQueryHandler(orderRepo, planner, time.Now)
//
//	proposals, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute shipment plan: %w", err)
//	}
type GetShipmentPlanQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentPlanQuery creates a query to compute the shipment plan.
// This is a parameterless query that plans over the full pending backlog.
func NewGetShipmentPlanQuery() GetShipmentPlanQuery {
	return GetShipmentPlanQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentPlanQueryIsNotConstructed if validation fails.
func (q GetShipmentPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentPlanQueryIsNotConstructed)
}
