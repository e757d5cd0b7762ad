package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// DefaultDateChangeLimit is the number of successful delivery date changes an
// order tolerates. The request after the limit is exhausted auto-cancels the
// order instead of applying the new date.
const DefaultDateChangeLimit = 3

// Order represents a purchase order tracked from registration through
// consolidation into an outbound shipment. It is the aggregate root for the
// order lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty PO number
//   - PO numbers are unique across all orders (enforced by persistence)
//   - Date change count is non-negative and never decreases
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// poNumber is the business identifier of the purchase order
	poNumber string

	// orderDate is the date the purchase order was placed
	orderDate time.Time

	// expectedDeliveryDate is the current promised delivery date (nil if unset)
	expectedDeliveryDate *time.Time

	// dateChangeCount counts delivery date change requests, including the
	// breaching request that triggers auto-cancellation
	dateChangeCount int

	// supplierName identifies the supplier fulfilling the order
	supplierName string

	// origin is the region the goods ship from; drives consolidation grouping
	origin kernel.Location

	// dropLocation is the optional final drop point
	dropLocation *kernel.Location

	// items are the order lines in document order
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// DateChangeResult describes the outcome of a delivery date change request.
//
// When Cancelled is true the requested date was discarded and the order was
// auto-cancelled; NewCount still reflects the incremented change counter.
// Otherwise NewCount and Remaining report the applied change and the
// allowance left before the next request cancels the order.
type DateChangeResult struct {
	Cancelled bool
	NewCount  int
	Remaining int
	Message   string
}

// NewOrder creates a new Order in Pending status with a zero change counter.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - poNumber: business identifier (must be non-empty)
//   - orderDate: date the PO was placed (must be non-zero)
//   - supplierName: supplier fulfilling the order (must be non-empty)
//   - origin: origin region (must be constructed; use kernel.NewLocation)
//   - dropLocation: optional drop point (nil if unset)
//   - items: order lines in document order (each must be constructed)
//
// Returns the created order, or a validation error describing every failed
// precondition.
func NewOrder(
	id kernel.UUID,
	poNumber string,
	orderDate time.Time,
	supplierName string,
	origin kernel.Location,
	dropLocation *kernel.Location,
	items []Item,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPONumber(poNumber),
		order.setOrderDate(orderDate),
		order.setSupplierName(supplierName),
		order.setOrigin(origin),
		order.setDropLocation(dropLocation),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, including its
// status, delivery date and change counter. Used by repositories only;
// application code must go through NewOrder.
func RestoreOrder(
	id kernel.UUID,
	poNumber string,
	orderDate time.Time,
	expectedDeliveryDate *time.Time,
	dateChangeCount int,
	supplierName string,
	origin kernel.Location,
	dropLocation *kernel.Location,
	items []Item,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, poNumber, orderDate, supplierName, origin, dropLocation, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if dateChangeCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("date change count is invalid",
			fmt.Errorf("%d is negative", dateChangeCount))
	}

	if expectedDeliveryDate != nil {
		d := *expectedDeliveryDate
		order.expectedDeliveryDate = &d
	}

	order.dateChangeCount = dateChangeCount
	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PONumber returns the business identifier of the purchase order.
func (o *Order) PONumber() string {
	return o.poNumber
}

// OrderDate returns the date the purchase order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// ExpectedDeliveryDate returns the current promised delivery date,
// or nil if none was ever set.
func (o *Order) ExpectedDeliveryDate() *time.Time {
	if o.expectedDeliveryDate == nil {
		return nil
	}
	d := *o.expectedDeliveryDate
	return &d
}

// DateChangeCount returns how many delivery date change requests the order
// has absorbed, including a breaching one.
func (o *Order) DateChangeCount() int {
	return o.dateChangeCount
}

// SupplierName returns the supplier fulfilling the order.
func (o *Order) SupplierName() string {
	return o.supplierName
}

// Origin returns the region the goods ship from.
func (o *Order) Origin() kernel.Location {
	return o.origin
}

// DropLocation returns the optional drop point, nil if unset.
func (o *Order) DropLocation() *kernel.Location {
	if o.dropLocation == nil {
		return nil
	}
	d := *o.dropLocation
	return &d
}

// Items returns a copy of the order lines in document order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ChangeDeliveryDate applies a delivery date change request under the bounded
// retries rule.
//
// The limit is checked before incrementing: when the current change count has
// already reached the limit, the order is forced to Cancelled, the counter is
// still incremented, and the requested date is discarded. Otherwise the new
// date is applied and the counter incremented.
//
// The read of the counter, the mutation, and the status write happen on the
// in-memory aggregate as one step; callers must persist the result within a
// single transaction keyed by order identity to keep the operation atomic
// under concurrent requests.
//
// Returns:
//   - DateChangeResult describing either the applied change (new count plus
//     remaining allowance) or the automatic cancellation
//   - error if the new date is missing, the limit is negative, or the order
//     is already in a terminal status
func (o *Order) ChangeDeliveryDate(newDate time.Time, limit int) (DateChangeResult, error) {
	if newDate.IsZero() {
		return DateChangeResult{}, errs.NewValueIsRequiredError("new delivery date")
	}

	if limit < 0 {
		return DateChangeResult{}, errs.NewValueIsInvalidErrorWithCause("date change limit is invalid",
			fmt.Errorf("%d is negative", limit))
	}

	if o.status.IsTerminal() {
		return DateChangeResult{}, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is a terminal status and accepts no delivery date changes", o.status.String()),
		)
	}

	if o.dateChangeCount >= limit {
		newStatus, err := o.status.Cancel()
		if err != nil {
			return DateChangeResult{}, err
		}

		o.status = newStatus
		o.dateChangeCount++
		return DateChangeResult{
			Cancelled: true,
			NewCount:  o.dateChangeCount,
			Message: fmt.Sprintf(
				"Order %s auto-cancelled: delivery date change limit of %d exceeded", o.poNumber, limit),
		}, nil
	}

	d := newDate
	o.expectedDeliveryDate = &d
	o.dateChangeCount++
	remaining := limit - o.dateChangeCount
	return DateChangeResult{
		NewCount:  o.dateChangeCount,
		Remaining: remaining,
		Message: fmt.Sprintf(
			"Delivery date for order %s updated; %d change(s) remaining", o.poNumber, remaining),
	}, nil
}

// Consolidate marks the order as accepted into a shipment proposal.
// Only Pending orders may be consolidated.
func (o *Order) Consolidate() error {
	newStatus, err := o.status.Consolidate()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch marks the order's shipment as having left the origin.
// Only Consolidated orders may be dispatched; Dispatched is terminal.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RefreshFromSource replaces the order header and lines with fresh values
// from the system of record (ERP synchronization). Allowed only while the
// order is still Pending so that consolidated or terminal orders are never
// silently rewritten.
func (o *Order) RefreshFromSource(
	orderDate time.Time,
	supplierName string,
	origin kernel.Location,
	items []Item,
) error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order cannot be refreshed from source", o.status.String()),
		)
	}

	return errors.Join(
		o.setOrderDate(orderDate),
		o.setSupplierName(supplierName),
		o.setOrigin(origin),
		o.setItems(items),
	)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPONumber(poNumber string) error {
	if poNumber == "" {
		return errs.NewValueIsRequiredError("po number")
	}
	o.poNumber = poNumber
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setSupplierName(supplierName string) error {
	if supplierName == "" {
		return errs.NewValueIsRequiredError("supplier name")
	}
	o.supplierName = supplierName
	return nil
}

func (o *Order) setOrigin(origin kernel.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setDropLocation(dropLocation *kernel.Location) error {
	if dropLocation == nil {
		o.dropLocation = nil
		return nil
	}
	if err := dropLocation.Validate(); err != nil {
		return err
	}
	d := *dropLocation
	o.dropLocation = &d
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
