package commands

import (
	"errors"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var ErrDispatchShipmentCommandIsNotConstructed = errors.New(
	"DispatchShipmentCommand must be created via NewDispatchShipmentCommand constructor",
)

// DispatchShipmentCommand represents the coordinator's confirmation that a
// booked shipment left its origin.
type DispatchShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchShipmentCommand creates a command to dispatch a shipment.
// Validates that the shipment ID is valid.
func NewDispatchShipmentCommand(shipmentID kernel.UUID) (DispatchShipmentCommand, error) {
	cmd := DispatchShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return DispatchShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchShipmentCommandIsNotConstructed if validation fails.
func (c DispatchShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDispatchShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to dispatch.
func (c DispatchShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DispatchShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
