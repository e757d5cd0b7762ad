package commands

import (
	"errors"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPONumberIsRequired     = errors.New("po number is required")
	ErrOrderDateIsRequired    = errors.New("order date is required")
	ErrSupplierNameIsRequired = errors.New("supplier name is required")
	ErrItemsAreRequired       = errors.New("at least one order item is required")
)

// OrderItemInput carries one order line through the command layer as plain
// values. Validation of the figures happens in the domain item constructor.
type OrderItemInput struct {
	ItemCode      string
	ItemName      string
	HSNCode       string
	UOM           string
	Quantity      int
	Rate          float64
	WeightPerUnit float64
	CBMPerUnit    float64
}

// CreateOrderCommand represents a request to register a new purchase order.
// Encapsulates the order header and its item lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "PO-1001", orderDate,
//	    "Acme Forgings", "Mumbai", "", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	poNumber     string
	orderDate    time.Time
	supplierName string
	origin       string
	dropLocation string
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates that the order ID is valid, the PO number, order date and
// supplier name are set, and at least one item is present. Origin may be
// blank; the domain maps it to the unknown region. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	poNumber string,
	orderDate time.Time,
	supplierName string,
	origin string,
	dropLocation string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setPONumber(poNumber),
		orderCommand.setOrderDate(orderDate),
		orderCommand.setSupplierName(supplierName),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.origin = origin
	orderCommand.dropLocation = dropLocation
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PONumber returns the business identifier of the order.
func (c CreateOrderCommand) PONumber() string {
	return c.poNumber
}

// OrderDate returns the date the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// SupplierName returns the supplier fulfilling the order.
func (c CreateOrderCommand) SupplierName() string {
	return c.supplierName
}

// Origin returns the origin region as submitted, possibly blank.
func (c CreateOrderCommand) Origin() string {
	return c.origin
}

// DropLocation returns the optional drop point as submitted, possibly blank.
func (c CreateOrderCommand) DropLocation() string {
	return c.dropLocation
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	result := make([]OrderItemInput, len(c.items))
	copy(result, c.items)
	return result
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPONumber(poNumber string) error {
	if poNumber == "" {
		return ErrPONumberIsRequired
	}

	c.poNumber = poNumber
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}

	c.orderDate = orderDate
	return nil
}

func (c *CreateOrderCommand) setSupplierName(supplierName string) error {
	if supplierName == "" {
		return ErrSupplierNameIsRequired
	}

	c.supplierName = supplierName
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]OrderItemInput, len(items))
	copy(c.items, items)
	return nil
}
