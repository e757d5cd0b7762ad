package queries

import (
	"context"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/services"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/ports"
)

// GetShipmentPlanQueryHandler computes the consolidation plan over the
// pending order backlog. Unlike the pure read queries it goes through the
// order repository because the planner operates on domain aggregates.
type GetShipmentPlanQueryHandler struct {
	orderRepository ports.OrderRepository
	planner         services.ConsolidationPlanner
	now             func() time.Time
}

// NewGetShipmentPlanQueryHandler creates a handler for shipment planning.
// now supplies the planning date; production wiring passes time.Now, tests
// pass a fixed clock.
func NewGetShipmentPlanQueryHandler(
	orderRepository ports.OrderRepository,
	planner services.ConsolidationPlanner,
	now func() time.Time,
) GetShipmentPlanQueryHandler {
	return GetShipmentPlanQueryHandler{
		orderRepository: orderRepository,
		planner:         planner,
		now:             now,
	}
}

// Handle executes the planning query.
// Loads the pending snapshot and returns one proposal per origin lane, in
// the order lanes first appear in the snapshot.
func (h GetShipmentPlanQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentPlanQuery,
) ([]services.ShipmentProposal, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending, err := h.orderRepository.GetAllInPendingStatus(ctx)
	if err != nil {
		return nil, err
	}

	return h.planner.Plan(pending, h.now())
}
