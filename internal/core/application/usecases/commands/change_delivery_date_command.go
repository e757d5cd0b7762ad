package commands

import (
	"errors"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var (
	ErrChangeDeliveryDateCommandIsNotConstructed = errors.New(
		"ChangeDeliveryDateCommand must be created via NewChangeDeliveryDateCommand constructor",
	)
	ErrNewDeliveryDateIsRequired = errors.New("new delivery date is required")
)

// ChangeDeliveryDateCommand represents a supplier's request to move the
// expected delivery date of a purchase order. The order is addressed by its
// business identifier because that is what suppliers know.
type ChangeDeliveryDateCommand struct { //nolint:recvcheck //using for validation
	poNumber        string
	newDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewChangeDeliveryDateCommand creates a command to move a delivery date.
// Validates that the PO number is set and the new date is non-zero.
func NewChangeDeliveryDateCommand(poNumber string, newDeliveryDate time.Time) (ChangeDeliveryDateCommand, error) {
	cmd := ChangeDeliveryDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPONumber(poNumber),
		cmd.setNewDeliveryDate(newDeliveryDate),
	); err != nil {
		return ChangeDeliveryDateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeDeliveryDateCommandIsNotConstructed if validation fails.
func (c ChangeDeliveryDateCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryDateCommandIsNotConstructed)
}

// PONumber returns the business identifier of the order.
func (c ChangeDeliveryDateCommand) PONumber() string {
	return c.poNumber
}

// NewDeliveryDate returns the requested delivery date.
func (c ChangeDeliveryDateCommand) NewDeliveryDate() time.Time {
	return c.newDeliveryDate
}

func (c *ChangeDeliveryDateCommand) setPONumber(poNumber string) error {
	if poNumber == "" {
		return ErrPONumberIsRequired
	}

	c.poNumber = poNumber
	return nil
}

func (c *ChangeDeliveryDateCommand) setNewDeliveryDate(newDeliveryDate time.Time) error {
	if newDeliveryDate.IsZero() {
		return ErrNewDeliveryDateIsRequired
	}

	c.newDeliveryDate = newDeliveryDate
	return nil
}
