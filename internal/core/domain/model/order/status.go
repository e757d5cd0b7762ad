package order

import (
	"fmt"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the fulfillment workflow.
//
// State transitions driven by this core:
//
//	Pending ──> Consolidated ──> Dispatched
//	   │             │
//	   └─────────────┴──> Cancelled (date-change limit breach)
//
// Confirmed, InProduction and Completed are reached by external collaborators
// (ERP synchronization, operational tooling); the core accepts them as input
// states but never transitions into them. Completed, Dispatched and Cancelled
// are terminal: no further transitions are accepted once an order reaches one.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly registered purchase order.
	// Only Pending orders qualify for shipment consolidation.
	Pending

	// Confirmed indicates the supplier has acknowledged the order.
	Confirmed

	// InProduction indicates the supplier is manufacturing the order.
	InProduction

	// Completed indicates fulfillment finished outside the shipment flow.
	// Terminal.
	Completed

	// Consolidated indicates the order was accepted into a shipment proposal.
	Consolidated

	// Dispatched indicates the consolidated shipment left the origin.
	// Terminal.
	Dispatched

	// Cancelled indicates the order was cancelled, in this core only by
	// breaching the delivery date change limit. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Pending:      "Pending",
		Confirmed:    "Confirmed",
		InProduction: "InProduction",
		Completed:    "Completed",
		Consolidated: "Consolidated",
		Dispatched:   "Dispatched",
		Cancelled:    "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "Pending",
		Confirmed:    "Confirmed",
		InProduction: "InProduction",
		Completed:    "Completed",
		Consolidated: "Consolidated",
		Dispatched:   "Dispatched",
		Cancelled:    "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Used when restoring persisted state and when accepting status filters.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
// Completed, Dispatched and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Dispatched || s == Cancelled
}

// ValidateConsolidate checks if the status allows consolidation without
// performing the transition. Only Pending orders qualify for a shipment
// proposal.
func (s Status) ValidateConsolidate() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to consolidate", s.String()),
		)
	}
	return nil
}

// Consolidate transitions the status to Consolidated.
//
// Valid transitions:
//   - Pending -> Consolidated (order accepted into a shipment proposal)
//
// Returns:
//   - (Consolidated, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Consolidate() (Status, error) {
	if err := s.ValidateConsolidate(); err != nil {
		return 0, err
	}

	return Consolidated, nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Consolidated -> Dispatched (shipment left the origin)
//
// Returns:
//   - (Dispatched, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Dispatch() (Status, error) {
	if s != Consolidated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}

	return Dispatched, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - any non-terminal status -> Cancelled
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the current status is terminal
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is a terminal status and cannot be cancelled", s.String()),
		)
	}

	return Cancelled, nil
}
