// Package services contains domain services: logic that spans several
// aggregates or needs collaborators and therefore does not belong to a single
// aggregate.
//
// ConsolidationPlanner groups pending purchase orders into shipment proposals
// per origin lane. SupplierScorer rates suppliers by delivery discipline.
// DistanceEstimator is the port through which the planner obtains lane
// distances; LookupDistanceEstimator is its deterministic table-backed
// implementation.
package services
