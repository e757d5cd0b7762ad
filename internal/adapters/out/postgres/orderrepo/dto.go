// Package orderrepo provides data transfer objects and mapping functions for
// purchase order persistence. This package implements the repository pattern
// for the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting purchase order
// aggregates. Maps order domain entities to relational database tables with
// proper indexing for querying by PO number and lifecycle status.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PONumber             string     `gorm:"type:varchar(140);not null;uniqueIndex"`
	OrderDate            time.Time  `gorm:"not null"`
	ExpectedDeliveryDate *time.Time `gorm:""`
	DateChangeCount      int        `gorm:"type:int;not null"`
	SupplierName         string     `gorm:"type:varchar(255);not null"`
	Origin               string     `gorm:"type:varchar(255);not null"`
	DropLocation         *string    `gorm:"type:varchar(255)"`
	Status               int        `gorm:"type:int;not null;index"`
	Items                []ItemDTO  `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for purchase order entities.
// Overrides GORM's default naming convention to use "purchase_orders".
func (OrderDTO) TableName() string {
	return "purchase_orders"
}

// ItemDTO represents the database structure for persisting order lines.
// Links to the purchase order via foreign key; LineNo preserves document
// order across round trips.
type ItemDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	LineNo          int       `gorm:"type:int;not null"`
	ItemCode        string    `gorm:"type:varchar(140);not null"`
	ItemName        string    `gorm:"type:varchar(255);not null"`
	HSNCode         string    `gorm:"type:varchar(16)"`
	UOM             string    `gorm:"type:varchar(32)"`
	Quantity        int       `gorm:"type:int;not null"`
	Rate            float64   `gorm:"not null"`
	WeightPerUnit   float64   `gorm:"not null"`
	CBMPerUnit      float64   `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "purchase_order_items".
func (ItemDTO) TableName() string {
	return "purchase_order_items"
}

// fromDomain converts a purchase order domain aggregate to its database
// representation. Maps all order attributes including the item lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var dropLocation *string
	if loc := aggregate.DropLocation(); loc != nil {
		name := loc.Name()
		dropLocation = &name
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			PurchaseOrderID: orderID,
			LineNo:          i + 1,
			ItemCode:        item.ItemCode(),
			ItemName:        item.ItemName(),
			HSNCode:         item.HSNCode(),
			UOM:             item.UOM(),
			Quantity:        item.Quantity(),
			Rate:            item.Rate(),
			WeightPerUnit:   item.WeightPerUnit(),
			CBMPerUnit:      item.CBMPerUnit(),
		})
	}

	return OrderDTO{
		ID:                   orderID,
		PONumber:             aggregate.PONumber(),
		OrderDate:            aggregate.OrderDate(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		DateChangeCount:      aggregate.DateChangeCount(),
		SupplierName:         aggregate.SupplierName(),
		Origin:               aggregate.Origin().Name(),
		DropLocation:         dropLocation,
		Status:               int(aggregate.Status()),
		Items:                items,
	}
}

// toDomain converts a database DTO to a purchase order domain aggregate.
// Reconstructs the complete aggregate including status, delivery date and
// change counter using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var dropLocation *kernel.Location
	if dto.DropLocation != nil {
		loc := kernel.NewLocation(*dto.DropLocation)
		dropLocation = &loc
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewItem(itemDto.ItemCode, itemDto.ItemName, itemDto.HSNCode,
			itemDto.UOM, itemDto.Quantity, itemDto.Rate, itemDto.WeightPerUnit, itemDto.CBMPerUnit)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var expectedDeliveryDate *time.Time
	if dto.ExpectedDeliveryDate != nil {
		date := dto.ExpectedDeliveryDate.UTC()
		expectedDeliveryDate = &date
	}

	return order.RestoreOrder(
		id,
		dto.PONumber,
		dto.OrderDate.UTC(),
		expectedDeliveryDate,
		dto.DateChangeCount,
		dto.SupplierName,
		kernel.NewLocation(dto.Origin),
		dropLocation,
		items,
		order.Status(dto.Status),
	)
}
