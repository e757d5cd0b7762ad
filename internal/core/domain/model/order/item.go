package order

import (
	"errors"
	"fmt"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing one line of a purchase order: what is
// being bought, in which unit, and the per-unit weight and volume used for
// load planning.
//
// WeightPerUnit and CBMPerUnit may legitimately be zero when the source
// document did not carry them. The stored value is never rewritten; the
// consolidation planner substitutes planning defaults at aggregation time
// only.
type Item struct {
	itemCode string
	itemName string
	hsnCode  string
	uom      string

	quantity      int
	rate          float64
	weightPerUnit float64
	cbmPerUnit    float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Quantity, rate, weight per unit and CBM per unit must all be non-negative;
// zero weight and CBM are accepted (missing data, not an error).
func NewItem(
	itemCode string,
	itemName string,
	hsnCode string,
	uom string,
	quantity int,
	rate float64,
	weightPerUnit float64,
	cbmPerUnit float64,
) (Item, error) {
	item := Item{
		itemCode: itemCode,
		itemName: itemName,
		hsnCode:  hsnCode,
		uom:      uom,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setQuantity(quantity),
		item.setRate(rate),
		item.setWeightPerUnit(weightPerUnit),
		item.setCBMPerUnit(cbmPerUnit),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ItemCode returns the catalogue code of the line.
func (i Item) ItemCode() string {
	return i.itemCode
}

// ItemName returns the human-readable item name.
func (i Item) ItemName() string {
	return i.itemName
}

// HSNCode returns the harmonized tax classification code.
func (i Item) HSNCode() string {
	return i.hsnCode
}

// UOM returns the unit of measure.
func (i Item) UOM() string {
	return i.uom
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Rate returns the per-unit price.
func (i Item) Rate() float64 {
	return i.rate
}

// WeightPerUnit returns the per-unit weight in kilograms, zero when unknown.
func (i Item) WeightPerUnit() float64 {
	return i.weightPerUnit
}

// CBMPerUnit returns the per-unit volume in cubic meters, zero when unknown.
func (i Item) CBMPerUnit() float64 {
	return i.cbmPerUnit
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rate is invalid",
			fmt.Errorf("%v is negative", rate))
	}
	i.rate = rate
	return nil
}

func (i *Item) setWeightPerUnit(weightPerUnit float64) error {
	if weightPerUnit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight per unit is invalid",
			fmt.Errorf("%v is negative", weightPerUnit))
	}
	i.weightPerUnit = weightPerUnit
	return nil
}

func (i *Item) setCBMPerUnit(cbmPerUnit float64) error {
	if cbmPerUnit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cbm per unit is invalid",
			fmt.Errorf("%v is negative", cbmPerUnit))
	}
	i.cbmPerUnit = cbmPerUnit
	return nil
}
