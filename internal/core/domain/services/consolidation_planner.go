package services

import (
	"fmt"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/shipment"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

// Planning defaults substituted for item lines that carry no weight or
// volume. They apply to the aggregate computation only; the stored item is
// never mutated.
const (
	DefaultUnitWeightKg = 2.0
	DefaultUnitCBM      = 0.01
)

// TransitSpeedKmPerDay is the assumed daily road coverage used to turn a lane
// distance into an arrival estimate.
const TransitSpeedKmPerDay = 600

// dispatchWindowDays bounds the forward search for the next dispatch day.
const dispatchWindowDays = 7

// ProposalStatusProposed is the initial status of every emitted proposal.
const ProposalStatusProposed = "Proposed"

// ShipmentProposal is the planner's output for one origin lane: which orders
// to group, what they weigh, which vehicle to book and when to dispatch.
// It is a plain value; accepting it (persisting a shipment and flipping the
// member orders to Consolidated) is the caller's transactional concern.
type ShipmentProposal struct {
	DispatchDate        time.Time
	ExpectedArrivalDate time.Time
	DistanceKm          int
	Vehicle             shipment.VehicleType
	TotalWeight         float64
	TotalCBM            float64
	Recommendation      string
	Origin              kernel.Location
	Route               string
	POIDs               []kernel.UUID
	Status              string
}

// ConsolidationPlanner is a domain service that groups pending purchase
// orders into shipment proposals per origin lane.
//
// Key responsibilities:
//   - Grouping the snapshot by origin region, preserving first-seen order
//   - Aggregating load weight and volume with planning defaults
//   - Picking the twice-weekly dispatch date shared by all groups
//   - Suggesting vehicle tier, route label and a lane recommendation
//
// Plan is a pure function of the snapshot and the planning date: it performs
// no I/O, retains no references to its input, and emits proposals whose po-id
// union is exactly the input id set.
type ConsolidationPlanner struct {
	estimator DistanceEstimator
}

// NewConsolidationPlanner creates a planner using the given distance estimator.
func NewConsolidationPlanner(estimator DistanceEstimator) (ConsolidationPlanner, error) {
	if estimator == nil {
		return ConsolidationPlanner{}, errs.NewValueIsRequiredError("estimator")
	}

	return ConsolidationPlanner{estimator: estimator}, nil
}

// NextDispatchDates returns the upcoming dispatch days after today within the
// planning window. Dispatches leave twice a week, on Tuesday and Friday; the
// search starts the day after today and collects at most two matches in date
// order.
func NextDispatchDates(today time.Time) []time.Time {
	dates := make([]time.Time, 0, 2)
	for i := 1; i <= dispatchWindowDays; i++ {
		future := today.AddDate(0, 0, i)
		if wd := future.Weekday(); wd == time.Tuesday || wd == time.Friday {
			dates = append(dates, future)
			if len(dates) == 2 {
				break
			}
		}
	}
	return dates
}

// laneGroup accumulates one origin lane while grouping the snapshot.
type laneGroup struct {
	origin      kernel.Location
	totalWeight float64
	totalCBM    float64
	poIDs       []kernel.UUID
}

// Plan computes shipment proposals for a snapshot of pending orders.
//
// Parameters:
//   - orders: the snapshot, already filtered to orders in Pending status
//   - today: the planning date; the dispatch date search starts the day after
//
// Returns one proposal per distinct origin region, in the order regions first
// appear in the snapshot. This emission order is observable output ordering
// and is deliberately not sorted. An empty snapshot yields an empty slice.
func (p ConsolidationPlanner) Plan(orders []*order.Order, today time.Time) ([]ShipmentProposal, error) {
	proposals := make([]ShipmentProposal, 0, len(orders))
	if len(orders) == 0 {
		return proposals, nil
	}

	groups := make(map[string]*laneGroup)
	keys := make([]string, 0)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if err := o.Status().ValidateConsolidate(); err != nil {
			return nil, err
		}

		key := o.Origin().Name()
		group, ok := groups[key]
		if !ok {
			group = &laneGroup{origin: o.Origin()}
			groups[key] = group
			keys = append(keys, key)
		}

		weight, cbm := aggregateLoad(o.Items())
		group.totalWeight += weight
		group.totalCBM += cbm
		group.poIDs = append(group.poIDs, o.ID())
	}

	primaryDate := today
	if dates := NextDispatchDates(today); len(dates) > 0 {
		primaryDate = dates[0]
	}
	daysToDispatch := daysBetween(today, primaryDate)

	for _, key := range keys {
		group := groups[key]

		distanceKm := p.estimator.DistanceKm(group.origin)
		transitDays := (distanceKm + TransitSpeedKmPerDay - 1) / TransitSpeedKmPerDay

		proposals = append(proposals, ShipmentProposal{
			DispatchDate:        primaryDate,
			ExpectedArrivalDate: primaryDate.AddDate(0, 0, transitDays),
			DistanceKm:          distanceKm,
			Vehicle:             shipment.SuggestVehicle(group.totalWeight),
			TotalWeight:         group.totalWeight,
			TotalCBM:            group.totalCBM,
			Recommendation:      recommendLane(group.origin, group.totalWeight, daysToDispatch),
			Origin:              group.origin,
			Route:               routeLabel(group.origin),
			POIDs:               group.poIDs,
			Status:              ProposalStatusProposed,
		})
	}

	return proposals, nil
}

// aggregateLoad sums one order's lines into planning weight and volume,
// substituting DefaultUnitWeightKg / DefaultUnitCBM for lines that carry no
// per-unit figures.
func aggregateLoad(items []order.Item) (weight float64, cbm float64) {
	for _, item := range items {
		w := item.WeightPerUnit()
		if w <= 0 {
			w = DefaultUnitWeightKg
		}
		c := item.CBMPerUnit()
		if c <= 0 {
			c = DefaultUnitCBM
		}

		qty := float64(item.Quantity())
		weight += w * qty
		cbm += c * qty
	}
	return weight, cbm
}

// Recommendation heuristic thresholds, in kilograms.
const (
	lowLoadWeightKg  = 500.0
	highLoadWeightKg = 5000.0
)

// recommendLane produces the lane advice for one group. The three bands are
// mutually exclusive: a light load with slack before dispatch asks for more
// consolidation, a heavy load asks for priority transit, everything else is
// a neutral optimized lane.
func recommendLane(origin kernel.Location, totalWeight float64, daysToDispatch int) string {
	switch {
	case totalWeight < lowLoadWeightKg && daysToDispatch > 1:
		return fmt.Sprintf("Low load for %s. Consolidating more orders to reduce freight cost per unit.",
			origin.Name())
	case totalWeight > highLoadWeightKg:
		return fmt.Sprintf("Strategic volume for %s. Priority transit recommended.", origin.Name())
	default:
		return fmt.Sprintf("Optimized for %s logistics lane.", origin.Name())
	}
}

// routeLabel builds the lane label: a local haul for factory-region origins,
// an inbound long-haul lane for everything else.
func routeLabel(origin kernel.Location) string {
	if IsLocalRegion(origin) {
		return fmt.Sprintf("LOCAL %s → %s FACTORY", origin.Upper(), FactoryRegion)
	}
	return fmt.Sprintf("%s → %s FACTORY", origin.Upper(), FactoryRegion)
}

// daysBetween counts whole days from a to b, assuming both carry the same
// time-of-day (planning dates are midnight-normalized).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
