package shipment

import (
	"fmt"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

// Weight thresholds for vehicle selection, in kilograms.
// Boundaries are inclusive on the lower tier: exactly 750 kg still fits the
// small tier, exactly 1500 kg the medium tier.
const (
	SmallTierMaxWeightKg  = 750.0
	MediumTierMaxWeightKg = 1500.0
)

// VehicleType identifies the vehicle tier suggested for a shipment.
// The fleet names follow the regional carrier classes the coordinator books.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleTataAce is the small tier, up to 750 kg.
	VehicleTataAce

	// VehiclePickup is the medium tier, up to 1500 kg.
	VehiclePickup

	// VehicleTruck is the large tier for anything heavier.
	VehicleTruck
)

func getVehicleStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown: "Unknown",
		VehicleTataAce: "Tata Ace",
		VehiclePickup:  "Pickup",
		VehicleTruck:   "Truck",
	}
}

// SuggestVehicle picks the vehicle tier for an aggregate shipment weight.
func SuggestVehicle(totalWeightKg float64) VehicleType {
	switch {
	case totalWeightKg <= SmallTierMaxWeightKg:
		return VehicleTataAce
	case totalWeightKg <= MediumTierMaxWeightKg:
		return VehiclePickup
	default:
		return VehicleTruck
	}
}

// VehicleFromString parses a vehicle type from its fleet name.
// Used when restoring persisted state and when accepting proposals over the
// wire.
func VehicleFromString(value string) (VehicleType, error) {
	for vehicle, str := range getVehicleStrings() {
		if vehicle != VehicleUnknown && str == value {
			return vehicle, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid",
		fmt.Errorf("%q is not a valid vehicle type", value))
}

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if v != VehicleTataAce && v != VehiclePickup && v != VehicleTruck {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the fleet name of the vehicle.
func (v VehicleType) String() string {
	if str, ok := getVehicleStrings()[v]; ok {
		return str
	}
	return "Unknown"
}

// Tier returns the capacity tier label of the vehicle.
func (v VehicleType) Tier() string {
	switch v {
	case VehicleTataAce:
		return "small"
	case VehiclePickup:
		return "medium"
	case VehicleTruck:
		return "large"
	default:
		return "unknown"
	}
}
