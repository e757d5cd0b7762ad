package shipment

import (
	"errors"
	"fmt"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment represents an accepted consolidation proposal: a group of purchase
// orders leaving one origin on one vehicle on one dispatch date. It is the
// aggregate root for the outbound shipment lifecycle.
//
// Shipment follows these invariants:
//   - Must reference at least one member purchase order, with no duplicates
//   - Expected arrival never precedes the dispatch date
//   - Totals are non-negative; distance is positive
//   - Status transitions follow the rules defined on Status
type Shipment struct {
	id                  kernel.UUID
	dispatchDate        time.Time
	expectedArrivalDate time.Time
	distanceKm          int
	vehicle             VehicleType
	totalWeight         float64
	totalCBM            float64
	recommendation      string
	origin              kernel.Location
	route               string
	poIDs               []kernel.UUID
	status              Status

	isConstructed bool
}

// NewShipment creates a Shipment in Proposed status from the fields of an
// accepted consolidation proposal.
func NewShipment(
	id kernel.UUID,
	dispatchDate time.Time,
	expectedArrivalDate time.Time,
	distanceKm int,
	vehicle VehicleType,
	totalWeight float64,
	totalCBM float64,
	recommendation string,
	origin kernel.Location,
	route string,
	poIDs []kernel.UUID,
) (*Shipment, error) {
	shipment := &Shipment{
		status:        Proposed,
		isConstructed: true,
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setDates(dispatchDate, expectedArrivalDate),
		shipment.setDistanceKm(distanceKm),
		shipment.setVehicle(vehicle),
		shipment.setTotals(totalWeight, totalCBM),
		shipment.setRecommendation(recommendation),
		shipment.setOrigin(origin),
		shipment.setRoute(route),
		shipment.setPOIDs(poIDs),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment from persisted state including its
// status. Used by repositories only.
func RestoreShipment(
	id kernel.UUID,
	dispatchDate time.Time,
	expectedArrivalDate time.Time,
	distanceKm int,
	vehicle VehicleType,
	totalWeight float64,
	totalCBM float64,
	recommendation string,
	origin kernel.Location,
	route string,
	poIDs []kernel.UUID,
	status Status,
) (*Shipment, error) {
	shipment, err := NewShipment(id, dispatchDate, expectedArrivalDate, distanceKm, vehicle,
		totalWeight, totalCBM, recommendation, origin, route, poIDs)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	shipment.status = status
	return shipment, nil
}

// Validate ensures the Shipment was properly constructed through a factory method.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// DispatchDate returns the planned dispatch date.
func (s *Shipment) DispatchDate() time.Time {
	return s.dispatchDate
}

// ExpectedArrivalDate returns the estimated arrival at the factory.
func (s *Shipment) ExpectedArrivalDate() time.Time {
	return s.expectedArrivalDate
}

// DistanceKm returns the estimated lane distance in kilometers.
func (s *Shipment) DistanceKm() int {
	return s.distanceKm
}

// Vehicle returns the suggested vehicle tier.
func (s *Shipment) Vehicle() VehicleType {
	return s.vehicle
}

// TotalWeight returns the aggregate load weight in kilograms.
func (s *Shipment) TotalWeight() float64 {
	return s.totalWeight
}

// TotalCBM returns the aggregate load volume in cubic meters.
func (s *Shipment) TotalCBM() float64 {
	return s.totalCBM
}

// Recommendation returns the planning heuristic's advice for this lane.
func (s *Shipment) Recommendation() string {
	return s.recommendation
}

// Origin returns the origin region of the shipment.
func (s *Shipment) Origin() kernel.Location {
	return s.origin
}

// Route returns the lane label of the shipment.
func (s *Shipment) Route() string {
	return s.route
}

// POIDs returns a copy of the member purchase order identifiers.
func (s *Shipment) POIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(s.poIDs))
	copy(ids, s.poIDs)
	return ids
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// Dispatch marks the shipment as having left the origin.
// Only Proposed shipments can be dispatched; Dispatched is terminal.
func (s *Shipment) Dispatch() error {
	newStatus, err := s.status.Dispatch()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setDates(dispatchDate time.Time, expectedArrivalDate time.Time) error {
	if dispatchDate.IsZero() {
		return errs.NewValueIsRequiredError("dispatch date")
	}
	if expectedArrivalDate.IsZero() {
		return errs.NewValueIsRequiredError("expected arrival date")
	}
	if expectedArrivalDate.Before(dispatchDate) {
		return errs.NewValueIsInvalidErrorWithCause("expected arrival date is invalid",
			fmt.Errorf("%s precedes dispatch date %s",
				expectedArrivalDate.Format(time.DateOnly), dispatchDate.Format(time.DateOnly)))
	}
	s.dispatchDate = dispatchDate
	s.expectedArrivalDate = expectedArrivalDate
	return nil
}

func (s *Shipment) setDistanceKm(distanceKm int) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%d is not greater than 0", distanceKm))
	}
	s.distanceKm = distanceKm
	return nil
}

func (s *Shipment) setVehicle(vehicle VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	s.vehicle = vehicle
	return nil
}

func (s *Shipment) setTotals(totalWeight float64, totalCBM float64) error {
	if totalWeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total weight is invalid",
			fmt.Errorf("%v is negative", totalWeight))
	}
	if totalCBM < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total cbm is invalid",
			fmt.Errorf("%v is negative", totalCBM))
	}
	s.totalWeight = totalWeight
	s.totalCBM = totalCBM
	return nil
}

func (s *Shipment) setRecommendation(recommendation string) error {
	if recommendation == "" {
		return errs.NewValueIsRequiredError("recommendation")
	}
	s.recommendation = recommendation
	return nil
}

func (s *Shipment) setOrigin(origin kernel.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setRoute(route string) error {
	if route == "" {
		return errs.NewValueIsRequiredError("route")
	}
	s.route = route
	return nil
}

func (s *Shipment) setPOIDs(poIDs []kernel.UUID) error {
	if len(poIDs) == 0 {
		return errs.NewValueIsRequiredError("po ids")
	}

	seen := make(map[kernel.UUID]struct{}, len(poIDs))
	for _, id := range poIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("po ids are invalid",
				fmt.Errorf("duplicate po id %s", id.String()))
		}
		seen[id] = struct{}{}
	}

	s.poIDs = make([]kernel.UUID, len(poIDs))
	copy(s.poIDs, poIDs)
	return nil
}
