package ports

import (
	"context"
	"time"
)

// ErpItem is one order line as reported by the ERP system.
type ErpItem struct {
	ItemCode      string
	ItemName      string
	HSNCode       string
	UOM           string
	Quantity      int
	Rate          float64
	WeightPerUnit float64
	CBMPerUnit    float64
}

// ErpOrder is one purchase order as reported by the ERP system.
// PONumber is the upsert key during synchronization.
type ErpOrder struct {
	PONumber     string
	OrderDate    time.Time
	SupplierName string
	Origin       string
	DropLocation string
	Items        []ErpItem
}

// ErpGateway defines the contract for pulling submitted purchase orders from
// the upstream ERP system.
type ErpGateway interface {
	// FetchPurchaseOrders retrieves the current set of submitted purchase
	// orders from the ERP. The result reflects the ERP's state at call time;
	// callers reconcile it against local storage.
	FetchPurchaseOrders(ctx context.Context) ([]ErpOrder, error)
}
