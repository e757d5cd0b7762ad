package commands

import (
	"context"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for purchase order
// registration. New orders start in Pending status with a zero change
// counter.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, "PO-1001", orderDate,
//	    "Acme Forgings", "Mumbai", "", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now registered and eligible for consolidation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command.
// Builds the aggregate from the submitted values and persists it in Pending
// status. Uses a transaction to ensure the order and its items are stored
// atomically or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := mapOrderItems(cmd.Items())
	if err != nil {
		return err
	}

	var dropLocation *kernel.Location
	if cmd.DropLocation() != "" {
		drop := kernel.NewLocation(cmd.DropLocation())
		dropLocation = &drop
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.PONumber(),
		cmd.OrderDate(),
		cmd.SupplierName(),
		kernel.NewLocation(cmd.Origin()),
		dropLocation,
		items,
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// mapOrderItems converts submitted line values into domain items.
func mapOrderItems(inputs []OrderItemInput) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))
	for _, in := range inputs {
		item, err := order.NewItem(in.ItemCode, in.ItemName, in.HSNCode, in.UOM,
			in.Quantity, in.Rate, in.WeightPerUnit, in.CBMPerUnit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
