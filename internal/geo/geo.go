// Package geo implements the proximity-search distance math.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"rentnest/server/internal/apperrors"
)

// Point is a location in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Constants of the equirectangular approximation. They are part of the
// search contract: existing clients are calibrated against these values,
// so they must not be swapped for an exact great-circle formula.
const (
	milesPerDegreeLat = 69.1
	degreesPerRadian  = 57.3 // ~180/pi
	kmPerMile         = 1.60934
)

// Distance returns the approximate distance in kilometers between ref and
// the point at (lat, lon). Planar projection, adequate for the short
// ranges of a city apartment search.
func Distance(ref Point, lat, lon float64) float64 {
	dx := milesPerDegreeLat * (lat - ref.Latitude)
	dy := milesPerDegreeLat * (ref.Longitude - lon) * math.Cos(lat/degreesPerRadian)
	return math.Sqrt(dx*dx+dy*dy) * kmPerMile
}

// ValidateSearch rejects non-finite coordinates and negative or non-finite
// radii before they reach the store.
func ValidateSearch(ref Point, radiusKm float64) error {
	if !isFinite(ref.Latitude) || !isFinite(ref.Longitude) {
		return apperrors.InvalidArgument("reference coordinates must be finite numbers")
	}
	if !isFinite(radiusKm) {
		return apperrors.InvalidArgument("radius must be a finite number")
	}
	if radiusKm < 0 {
		return apperrors.InvalidArgumentf("radius must be non-negative, got %v", radiusKm)
	}
	return nil
}

// SearchBound returns a bounding box around ref that is guaranteed to
// contain every point whose approximate distance is within radiusKm. The
// box is padded well past the radius because it is only a coarse row
// prefilter; the authoritative cut is Distance itself.
func SearchBound(ref Point, radiusKm float64) orb.Bound {
	padMeters := (radiusKm*1.5 + 5) * 1000
	return orbgeo.NewBoundAroundPoint(orb.Point{ref.Longitude, ref.Latitude}, padMeters)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
