package services

import (
	"strings"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
)

// FactoryRegion is the region the factory sits in; every inbound lane
// terminates there.
const FactoryRegion = "BIHAR"

// localRegionAliases are the uppercased region names treated as local to the
// factory. Orders originating here travel a short local lane instead of an
// inbound long-haul lane.
var localRegionAliases = map[string]struct{}{
	"BIHAR":   {},
	"PATNA":   {},
	"HAJIPUR": {},
}

// IsLocalRegion reports whether the location is local to the factory.
// Matching is an exact comparison against a small fixed alias set on the
// uppercased name.
func IsLocalRegion(location kernel.Location) bool {
	_, ok := localRegionAliases[location.Upper()]
	return ok
}

// DistanceEstimator estimates the lane distance in kilometers from an origin
// region to the factory. Implementations must be deterministic so that
// planning runs are reproducible; the estimate is only used for vehicle
// transit-time math, not for billing.
type DistanceEstimator interface {
	DistanceKm(origin kernel.Location) int
}

// Distances used by LookupDistanceEstimator when no hub matches, in km.
// The previous behavior randomized these fallbacks per run, which made plans
// impossible to reproduce; fixed midpoints replace it.
const (
	localFallbackKm = 40
	farFallbackKm   = 1200
)

// hubDistance pairs a known hub name with its road distance to the factory.
type hubDistance struct {
	hub string
	km  int
}

// knownHubs is checked in order with a substring match on the uppercased
// origin, so "NAVI MUMBAI" resolves through the MUMBAI entry.
var knownHubs = []hubDistance{
	{"RANCHI", 330},
	{"LUCKNOW", 520},
	{"KOLKATA", 580},
	{"KANPUR", 600},
	{"DELHI", 1050},
	{"HYDERABAD", 1450},
	{"PUNE", 1600},
	{"MUMBAI", 1700},
	{"BANGALORE", 1850},
	{"CHENNAI", 2000},
}

// LookupDistanceEstimator is the production DistanceEstimator: local regions
// get a short fixed distance, known hubs resolve through a fixed lookup
// table, and unknown far origins fall back to a fixed long-haul constant.
type LookupDistanceEstimator struct{}

// NewLookupDistanceEstimator creates the production distance estimator.
func NewLookupDistanceEstimator() LookupDistanceEstimator {
	return LookupDistanceEstimator{}
}

// DistanceKm implements DistanceEstimator.
func (LookupDistanceEstimator) DistanceKm(origin kernel.Location) int {
	if IsLocalRegion(origin) {
		return localFallbackKm
	}

	upper := origin.Upper()
	for _, h := range knownHubs {
		if strings.Contains(upper, h.hub) {
			return h.km
		}
	}

	return farFallbackKm
}
