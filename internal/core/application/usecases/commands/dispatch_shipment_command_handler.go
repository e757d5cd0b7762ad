package commands

import (
	"context"
)

// DispatchShipmentCommandHandler marks a booked shipment as having left its
// origin. The shipment transition and the transition of every member order
// to Dispatched happen in one transaction.
type DispatchShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchShipmentCommandHandler creates a handler for shipment dispatch.
// Requires a cross-aggregate UoWFactory because it modifies both shipments
// and orders.
func NewDispatchShipmentCommandHandler(uowFactory UoWFactory) DispatchShipmentCommandHandler {
	return DispatchShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch confirmation.
// Loads the shipment, transitions it to Dispatched and cascades the
// transition to every member order. Dispatching a shipment twice fails on
// the status transition and rolls back.
func (h *DispatchShipmentCommandHandler) Handle(ctx context.Context, cmd DispatchShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.Dispatch(); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, poID := range aggregate.POIDs() {
		member, getErr := orderRepo.Get(ctx, poID)
		if getErr != nil {
			return getErr
		}

		if err = member.Dispatch(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
