package orderrepo

import (
	"context"
	"errors"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing purchase order to the database.
// Item lines have no identity of their own, so they are replaced wholesale
// to avoid stale rows surviving a line removal.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Where("purchase_order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a purchase order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", itemsInLineOrder).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPONumber retrieves a purchase order by its business identifier.
func (r *GormOrderRepository) GetByPONumber(ctx context.Context, poNumber string) (*order.Order, error) {
	if poNumber == "" {
		return nil, errs.NewValueIsRequiredError("po number")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", itemsInLineOrder).
		First(&dto, "po_number = ?", poNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", poNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPendingStatus retrieves all orders awaiting consolidation, in
// creation order. This is the consolidation planner's input snapshot.
func (r *GormOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Where("status = ?", int(order.Pending)))
}

// GetAll retrieves every order regardless of status, in creation order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, r.db.WithContext(ctx))
}

func (r *GormOrderRepository) findAll(ctx context.Context, db *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := db.WithContext(ctx).
		Preload("Items", itemsInLineOrder).
		Order("created_at, po_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func itemsInLineOrder(db *gorm.DB) *gorm.DB {
	return db.Order("line_no")
}
