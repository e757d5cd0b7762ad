// Package shipment implements the outbound shipment aggregate and the fixed
// vehicle tier table used for load planning.
//
// A Shipment is born when the coordinator accepts a consolidation proposal
// for one origin lane; it carries the planned dispatch date, the estimated
// arrival, the aggregate load, the suggested vehicle and the member purchase
// orders, and moves from Proposed to Dispatched.
package shipment
