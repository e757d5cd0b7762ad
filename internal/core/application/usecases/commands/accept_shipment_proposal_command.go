package commands

import (
	"errors"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/services"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var (
	ErrAcceptShipmentProposalCommandIsNotConstructed = errors.New(
		"AcceptShipmentProposalCommand must be created via NewAcceptShipmentProposalCommand constructor",
	)
	ErrProposalHasNoOrders = errors.New("proposal must reference at least one purchase order")
)

// AcceptShipmentProposalCommand represents the coordinator's decision to book
// a planned shipment. Carries the planner's proposal and the identifier the
// new shipment aggregate will be stored under.
type AcceptShipmentProposalCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	proposal   services.ShipmentProposal

	guard guard.ConstructorGuard
}

// NewAcceptShipmentProposalCommand creates a command to accept a shipment
// proposal. Validates that the shipment ID is valid and the proposal
// references at least one purchase order; the proposal's remaining fields are
// validated by the shipment aggregate constructor.
func NewAcceptShipmentProposalCommand(
	shipmentID kernel.UUID,
	proposal services.ShipmentProposal,
) (AcceptShipmentProposalCommand, error) {
	cmd := AcceptShipmentProposalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setProposal(proposal),
	); err != nil {
		return AcceptShipmentProposalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptShipmentProposalCommandIsNotConstructed if validation fails.
func (c AcceptShipmentProposalCommand) Validate() error {
	return c.guard.Validate(ErrAcceptShipmentProposalCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c AcceptShipmentProposalCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Proposal returns the accepted shipment proposal.
func (c AcceptShipmentProposalCommand) Proposal() services.ShipmentProposal {
	proposal := c.proposal
	proposal.POIDs = make([]kernel.UUID, len(c.proposal.POIDs))
	copy(proposal.POIDs, c.proposal.POIDs)
	return proposal
}

func (c *AcceptShipmentProposalCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AcceptShipmentProposalCommand) setProposal(proposal services.ShipmentProposal) error {
	if len(proposal.POIDs) == 0 {
		return ErrProposalHasNoOrders
	}

	c.proposal = proposal
	c.proposal.POIDs = make([]kernel.UUID, len(proposal.POIDs))
	copy(c.proposal.POIDs, proposal.POIDs)
	return nil
}
