package shipment

import (
	"fmt"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

// Status represents the lifecycle state of an outbound shipment.
//
// State transitions:
//
//	Proposed ──> Dispatched
//
// A shipment is born Proposed when the coordinator accepts a consolidation
// proposal; Dispatched is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Proposed is the initial status of an accepted shipment proposal.
	Proposed

	// Dispatched indicates the shipment left the origin. Terminal.
	Dispatched
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Proposed:   "Proposed",
		Dispatched: "Dispatched",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Proposed:   "Proposed",
		Dispatched: "Dispatched",
	}
}

// StatusFromString parses a status from its string representation.
// Used when restoring persisted state.
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
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Dispatch transitions the status to Dispatched.
// Only Proposed shipments can be dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != Proposed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}

	return Dispatched, nil
}
