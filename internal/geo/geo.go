package geo

import (
	"math"

	"opeec-backend/internal/domain"
)

// Tolerance is the coordinate equality threshold used when comparing stored
// coordinates against lat/lng.
const Tolerance = 1e-6

// Normalize derives the GeoJSON point from lat/lng, longitude first. Locations
// without both lat and lng keep whatever coordinates they had.
func Normalize(loc domain.GeoPoint) domain.GeoPoint {
	if !loc.HasLatLng() {
		return loc
	}
	loc.Coordinates = domain.NewGeoJSONPoint(*loc.Lng, *loc.Lat)
	return loc
}

// IsConsistent reports whether coordinates already equal [lng, lat]. Locations
// without lat/lng are trivially consistent.
func IsConsistent(loc domain.GeoPoint) bool {
	if !loc.HasLatLng() {
		return true
	}
	c := loc.Coordinates
	if c == nil || c.Type != domain.GeoJSONPointType || len(c.Coordinates) != 2 {
		return false
	}
	return approx(c.Coordinates[0], *loc.Lng) && approx(c.Coordinates[1], *loc.Lat)
}

// IsWrongOrdered detects the [lat, lng] corruption: the stored pair equals
// lat/lng in the wrong order.
func IsWrongOrdered(loc domain.GeoPoint) bool {
	if !loc.HasLatLng() || loc.Coordinates == nil || len(loc.Coordinates.Coordinates) != 2 {
		return false
	}
	c := loc.Coordinates.Coordinates
	swapped := approx(c[0], *loc.Lat) && approx(c[1], *loc.Lng)
	return swapped && !(approx(c[0], *loc.Lng) && approx(c[1], *loc.Lat))
}

// Repair rewrites inconsistent coordinates and reports whether anything changed.
func Repair(loc domain.GeoPoint) (domain.GeoPoint, bool) {
	if IsConsistent(loc) {
		return loc, false
	}
	return Normalize(loc), true
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}
