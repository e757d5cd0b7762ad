package queries

import (
	"errors"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var (
	ErrGetShipmentsQueryIsNotConstructed = errors.New(
		"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
	)
)

// GetShipmentsQuery retrieves all booked shipments.
//
// Example:
//
//	query := NewGetShipmentsQuery()
//	handler := NewGetShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve shipments: %w", err)
//	}
type GetShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query to retrieve all shipments.
// This is a parameterless query that fetches the complete shipment list.
func NewGetShipmentsQuery() GetShipmentsQuery {
	return GetShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentsQueryIsNotConstructed if validation fails.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// GetShipmentsQueryResponse represents one shipment in the read model.
// Vehicle carries the fleet name, Status the lifecycle state name.
type GetShipmentsQueryResponse struct {
	ID                  kernel.UUID
	DispatchDate        time.Time
	ExpectedArrivalDate time.Time
	DistanceKm          int
	Vehicle             string
	TotalWeight         float64
	TotalCBM            float64
	Recommendation      string
	Origin              string
	Route               string
	Status              string
	OrderCount          int
}
