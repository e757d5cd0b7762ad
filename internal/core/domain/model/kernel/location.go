package kernel

import (
	"strings"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

// UnknownRegion is the grouping key substituted for orders whose origin
// location is missing or blank. Orders without a usable origin still have
// to land in exactly one consolidation group.
const UnknownRegion = "Unknown Region"

// ErrLocationIsNotConstructed indicates that a Location was not created through NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("Location must be created via NewLocation")

// Location is a value object representing a free-text region name used for
// lane planning: an order's origin (where the supplier ships from) or its
// optional drop point.
//
// Location normalizes its input once at construction: surrounding whitespace
// is trimmed and a blank name becomes UnknownRegion. Group-key equality is an
// exact string match on the normalized name; no fuzzy matching happens here.
//
// Example usage:
//
//	origin := kernel.NewLocation("  Mumbai ")
//	origin.Name()  // "Mumbai"
//	origin.Upper() // "MUMBAI"
//
//	blank := kernel.NewLocation("")
//	blank.IsUnknown() // true
type Location struct {
	name string

	guard guard.ConstructorGuard
}

// NewLocation creates a Location from a raw region name.
// The name is trimmed; an empty result falls back to UnknownRegion,
// so a constructed Location always carries a non-empty name.
func NewLocation(name string) Location {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnknownRegion
	}

	return Location{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the Location was created via NewLocation.
// Returns ErrLocationIsNotConstructed for zero values.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Name returns the normalized region name.
func (l Location) Name() string {
	return l.name
}

// Upper returns the region name in upper case, the form used for route labels
// and distance lookups.
func (l Location) Upper() string {
	return strings.ToUpper(l.name)
}

// IsUnknown reports whether this location is the UnknownRegion fallback.
func (l Location) IsUnknown() bool {
	return l.name == UnknownRegion
}

// IsEqual compares two locations by exact normalized name.
func (l Location) IsEqual(other Location) bool {
	return l.name == other.name
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return l.name
}
