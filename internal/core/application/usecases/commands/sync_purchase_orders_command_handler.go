package commands

import (
	"context"
	"errors"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/ports"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

// SyncResult summarizes one reconciliation run.
type SyncResult struct {
	Fetched   int
	Created   int
	Refreshed int
	Skipped   int
}

// SyncPurchaseOrdersCommandHandler reconciles local purchase orders against
// the upstream ERP. The ERP is the system of record for order headers and
// lines; the portal owns the lifecycle state. Orders unknown locally are
// registered in Pending status, known Pending orders are refreshed, and
// orders past Pending are left untouched.
type SyncPurchaseOrdersCommandHandler struct {
	erpGateway ports.ErpGateway
	uowFactory OrderUoWFactory
}

// NewSyncPurchaseOrdersCommandHandler creates a handler for ERP
// reconciliation. Requires the ERP gateway and an OrderUoWFactory for
// transactional persistence.
func NewSyncPurchaseOrdersCommandHandler(
	erpGateway ports.ErpGateway,
	uowFactory OrderUoWFactory,
) SyncPurchaseOrdersCommandHandler {
	return SyncPurchaseOrdersCommandHandler{
		erpGateway: erpGateway,
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Fetches the submitted set from the ERP and upserts it by PO number inside
// one transaction, so a failed run leaves local state unchanged.
func (h *SyncPurchaseOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd SyncPurchaseOrdersCommand,
) (SyncResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncResult{}, err
	}

	erpOrders, err := h.erpGateway.FetchPurchaseOrders(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{Fetched: len(erpOrders)}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SyncResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, erpOrder := range erpOrders {
		outcome, upsertErr := h.upsert(ctx, orderRepo, erpOrder)
		if upsertErr != nil {
			return SyncResult{}, upsertErr
		}

		switch outcome {
		case outcomeCreated:
			result.Created++
		case outcomeRefreshed:
			result.Refreshed++
		case outcomeSkipped:
			result.Skipped++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncResult{}, err
	}

	return result, nil
}

type upsertOutcome int

const (
	outcomeCreated upsertOutcome = iota
	outcomeRefreshed
	outcomeSkipped
)

func (h *SyncPurchaseOrdersCommandHandler) upsert(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	erpOrder ports.ErpOrder,
) (upsertOutcome, error) {
	items, err := mapErpItems(erpOrder.Items)
	if err != nil {
		return 0, err
	}

	existing, err := orderRepo.GetByPONumber(ctx, erpOrder.PONumber)
	switch {
	case err == nil:
		if existing.Status() != order.Pending {
			return outcomeSkipped, nil
		}

		if err = existing.RefreshFromSource(erpOrder.OrderDate, erpOrder.SupplierName,
			kernel.NewLocation(erpOrder.Origin), items); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, existing); err != nil {
			return 0, err
		}
		return outcomeRefreshed, nil

	case errors.Is(err, errs.ErrObjectNotFound):
		var dropLocation *kernel.Location
		if erpOrder.DropLocation != "" {
			drop := kernel.NewLocation(erpOrder.DropLocation)
			dropLocation = &drop
		}

		aggregate, newErr := order.NewOrder(
			kernel.NewUUID(),
			erpOrder.PONumber,
			erpOrder.OrderDate,
			erpOrder.SupplierName,
			kernel.NewLocation(erpOrder.Origin),
			dropLocation,
			items,
		)
		if newErr != nil {
			return 0, newErr
		}

		if err = orderRepo.Add(ctx, aggregate); err != nil {
			return 0, err
		}
		return outcomeCreated, nil

	default:
		return 0, err
	}
}

func mapErpItems(erpItems []ports.ErpItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(erpItems))
	for _, in := range erpItems {
		item, err := order.NewItem(in.ItemCode, in.ItemName, in.HSNCode, in.UOM,
			in.Quantity, in.Rate, in.WeightPerUnit, in.CBMPerUnit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
