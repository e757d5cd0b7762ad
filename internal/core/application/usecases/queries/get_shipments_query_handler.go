package queries

import (
	"context"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves booked shipments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments.
// Returns shipment read models sorted by dispatch date, with the member
// order count joined in.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.dispatch_date,
			s.expected_arrival_date,
			s.distance_km,
			s.vehicle,
			s.total_weight,
			s.total_cbm,
			s.recommendation,
			s.origin,
			s.route,
			s.status,
			COUNT(members.purchase_order_id) AS order_count
		FROM shipments s
		LEFT JOIN shipment_orders members ON members.shipment_id = s.id
		GROUP BY s.id, s.dispatch_date, s.expected_arrival_date, s.distance_km,
			s.vehicle, s.total_weight, s.total_cbm, s.recommendation,
			s.origin, s.route, s.status
		ORDER BY s.dispatch_date, s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetShipmentsQueryResponse, 0)
	for rows.Next() {
		var resp GetShipmentsQueryResponse
		var id uuid.UUID
		var vehicle, status int

		err = rows.Scan(
			&id,
			&resp.DispatchDate,
			&resp.ExpectedArrivalDate,
			&resp.DistanceKm,
			&vehicle,
			&resp.TotalWeight,
			&resp.TotalCBM,
			&resp.Recommendation,
			&resp.Origin,
			&resp.Route,
			&status,
			&resp.OrderCount,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID
		resp.Vehicle = shipment.VehicleType(vehicle).String()
		resp.Status = shipment.Status(status).String()
		resp.DispatchDate = resp.DispatchDate.UTC()
		resp.ExpectedArrivalDate = resp.ExpectedArrivalDate.UTC()

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
