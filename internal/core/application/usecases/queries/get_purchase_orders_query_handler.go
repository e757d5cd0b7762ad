package queries

import (
	"context"
	"database/sql"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPurchaseOrdersQueryHandler retrieves purchase orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrdersQueryHandler creates a handler for purchase order
// retrieval queries. Requires a GORM database connection for query execution.
func NewGetPurchaseOrdersQueryHandler(db *gorm.DB) GetPurchaseOrdersQueryHandler {
	return GetPurchaseOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve purchase orders.
// Returns order read models sorted by PO number, with the item count joined
// in. Converts database types to domain types for consistency.
func (h GetPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrdersQuery,
) ([]GetPurchaseOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			po.id,
			po.po_number,
			po.order_date,
			po.expected_delivery_date,
			po.date_change_count,
			po.supplier_name,
			po.origin,
			po.drop_location,
			po.status,
			COUNT(items.id) AS item_count
		FROM purchase_orders po
		LEFT JOIN purchase_order_items items ON items.purchase_order_id = po.id
	`
	args := make([]any, 0, 1)
	if query.Status() != order.Unknown {
		sqlQuery += ` WHERE po.status = ?`
		args = append(args, int(query.Status()))
	}
	sqlQuery += `
		GROUP BY po.id, po.po_number, po.order_date, po.expected_delivery_date,
			po.date_change_count, po.supplier_name, po.origin, po.drop_location, po.status
		ORDER BY po.po_number
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetPurchaseOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetPurchaseOrdersQueryResponse
		var id uuid.UUID
		var expectedDeliveryDate sql.NullTime
		var dropLocation sql.NullString
		var status int

		err = rows.Scan(
			&id,
			&resp.PONumber,
			&resp.OrderDate,
			&expectedDeliveryDate,
			&resp.DateChangeCount,
			&resp.SupplierName,
			&resp.Origin,
			&dropLocation,
			&status,
			&resp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		if expectedDeliveryDate.Valid {
			date := expectedDeliveryDate.Time.UTC()
			resp.ExpectedDeliveryDate = &date
		}
		if dropLocation.Valid {
			resp.DropLocation = dropLocation.String
		}
		resp.OrderDate = resp.OrderDate.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
