package commands

import (
	"context"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
)

// ChangeDeliveryDateCommandHandler handles delivery date change requests.
// Each request spends one unit of the order's change allowance; the request
// that exceeds the allowance cancels the order instead of moving the date.
//
// Example:
//
//	handler := NewChangeDeliveryDateCommandHandler(uowFactory)
//	cmd, _ := NewChangeDeliveryDateCommand("PO-1001", newDate)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("date change failed: %w", err)
//	}
//	if result.Cancelled {
//	    // the order was auto-cancelled; the date was not applied
//	}
type ChangeDeliveryDateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeDeliveryDateCommandHandler creates a handler for delivery date
// changes. Requires an OrderUoWFactory for transactional persistence.
func NewChangeDeliveryDateCommandHandler(uowFactory OrderUoWFactory) ChangeDeliveryDateCommandHandler {
	return ChangeDeliveryDateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the date change request.
// Loads the order by PO number, applies the change against the standard
// allowance and persists the outcome. Both the applied-date and the
// auto-cancel outcome are committed; domain rejections (terminal status,
// invalid date) roll back.
func (h *ChangeDeliveryDateCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDeliveryDateCommand,
) (order.DateChangeResult, error) {
	if err := cmd.Validate(); err != nil {
		return order.DateChangeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.DateChangeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByPONumber(ctx, cmd.PONumber())
	if err != nil {
		return order.DateChangeResult{}, err
	}

	result, err := aggregate.ChangeDeliveryDate(cmd.NewDeliveryDate(), order.DefaultDateChangeLimit)
	if err != nil {
		return order.DateChangeResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.DateChangeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.DateChangeResult{}, err
	}

	return result, nil
}
