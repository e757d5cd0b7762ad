// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Member purchase orders live in a join table so one order
// belongs to at most one shipment.
type ShipmentDTO struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey"`
	DispatchDate        time.Time          `gorm:"not null"`
	ExpectedArrivalDate time.Time          `gorm:"not null"`
	DistanceKm          int                `gorm:"type:int;not null"`
	Vehicle             int                `gorm:"type:int;not null"`
	TotalWeight         float64            `gorm:"not null"`
	TotalCBM            float64            `gorm:"not null"`
	Recommendation      string             `gorm:"type:text;not null"`
	Origin              string             `gorm:"type:varchar(255);not null"`
	Route               string             `gorm:"type:varchar(255);not null"`
	Status              int                `gorm:"type:int;not null;index"`
	Orders              []ShipmentOrderDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time          `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentOrderDTO links a shipment to one of its member purchase orders.
// Position preserves the planner's member order across round trips.
type ShipmentOrderDTO struct {
	ShipmentID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex"`
	Position        int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for shipment membership rows.
// Overrides GORM's default naming convention to use "shipment_orders".
func (ShipmentOrderDTO) TableName() string {
	return "shipment_orders"
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	shipmentID := aggregate.ID().Bytes()

	members := make([]ShipmentOrderDTO, 0, len(aggregate.POIDs()))
	for i, poID := range aggregate.POIDs() {
		members = append(members, ShipmentOrderDTO{
			ShipmentID:      shipmentID,
			PurchaseOrderID: poID.Bytes(),
			Position:        i + 1,
		})
	}

	return ShipmentDTO{
		ID:                  shipmentID,
		DispatchDate:        aggregate.DispatchDate(),
		ExpectedArrivalDate: aggregate.ExpectedArrivalDate(),
		DistanceKm:          aggregate.DistanceKm(),
		Vehicle:             int(aggregate.Vehicle()),
		TotalWeight:         aggregate.TotalWeight(),
		TotalCBM:            aggregate.TotalCBM(),
		Recommendation:      aggregate.Recommendation(),
		Origin:              aggregate.Origin().Name(),
		Route:               aggregate.Route(),
		Status:              int(aggregate.Status()),
		Orders:              members,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including its member order ids using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	poIDs := make([]kernel.UUID, 0, len(dto.Orders))
	for _, member := range dto.Orders {
		poID, memberErr := kernel.UUIDFromBytes(member.PurchaseOrderID[:])
		if memberErr != nil {
			return nil, memberErr
		}
		poIDs = append(poIDs, poID)
	}

	return shipment.RestoreShipment(
		id,
		dto.DispatchDate.UTC(),
		dto.ExpectedArrivalDate.UTC(),
		dto.DistanceKm,
		shipment.VehicleType(dto.Vehicle),
		dto.TotalWeight,
		dto.TotalCBM,
		dto.Recommendation,
		kernel.NewLocation(dto.Origin),
		dto.Route,
		poIDs,
		shipment.Status(dto.Status),
	)
}
