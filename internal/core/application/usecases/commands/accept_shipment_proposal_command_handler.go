package commands

import (
	"context"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/shipment"
)

// AcceptShipmentProposalCommandHandler turns an accepted proposal into a
// persisted shipment. The shipment insert and the consolidation of every
// member order happen in one transaction: either the shipment exists and all
// its members are Consolidated, or nothing changed.
type AcceptShipmentProposalCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptShipmentProposalCommandHandler creates a handler for proposal
// acceptance. Requires a cross-aggregate UoWFactory because it modifies both
// shipments and orders.
func NewAcceptShipmentProposalCommandHandler(uowFactory UoWFactory) AcceptShipmentProposalCommandHandler {
	return AcceptShipmentProposalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the proposal acceptance.
// Builds the shipment aggregate in Proposed status, persists it, then loads
// each member order and transitions it to Consolidated. Any member that is
// no longer eligible (changed status since planning) fails the whole
// transaction.
func (h *AcceptShipmentProposalCommandHandler) Handle(ctx context.Context, cmd AcceptShipmentProposalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	proposal := cmd.Proposal()
	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		proposal.DispatchDate,
		proposal.ExpectedArrivalDate,
		proposal.DistanceKm,
		proposal.Vehicle,
		proposal.TotalWeight,
		proposal.TotalCBM,
		proposal.Recommendation,
		proposal.Origin,
		proposal.Route,
		proposal.POIDs,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, poID := range proposal.POIDs {
		member, getErr := orderRepo.Get(ctx, poID)
		if getErr != nil {
			return getErr
		}

		if err = member.Consolidate(); err != nil {
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
