package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/wael7705/movo-project/internal/pkg/errs"
	"github.com/wael7705/movo-project/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used for great-circle distances.
	earthRadiusKm = 6371.0

	// jitterDegrees bounds the synthetic offset applied by NewJitteredGeoPoint.
	jitterDegrees = 0.01
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint or
// NewJitteredGeoPoint to ensure coordinate validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or NewJitteredGeoPoint constructors")

// GeoPoint represents a WGS84 coordinate pair with validated bounds.
// GeoPoint is an immutable value object; the zero value is invalid and fails
// validation - use the constructors to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(33.5138, 36.2765)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(33.513800,36.276500)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must lie within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]. Returns an error if either is out of bounds.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// NewJitteredGeoPoint creates a GeoPoint randomly displaced by at most
// ±0.01 degrees on each axis around the given origin. It is used as a
// placeholder position for captains with no known telemetry; the result is
// clamped to valid coordinate bounds.
func NewJitteredGeoPoint(origin GeoPoint) (GeoPoint, error) {
	if err := origin.Validate(); err != nil {
		return GeoPoint{}, err
	}

	lat := clamp(origin.latitude+randomOffset(), LatitudeMin, LatitudeMax)
	lng := clamp(origin.longitude+randomOffset(), LongitudeMin, LongitudeMax)
	return NewGeoPoint(lat, lng)
}

// Validate checks if the GeoPoint was properly constructed using a constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation in the format
// "GeoPoint(lat,lng)". This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the great-circle (haversine) distance to another point
// in kilometers. Both points must be properly constructed for the calculation
// to succeed.
//
// Example:
//
//	restaurant, _ := kernel.NewGeoPoint(33.5138, 36.2765)
//	captain, _ := kernel.NewGeoPoint(33.5150, 36.2780)
//
//	distance, err := restaurant.DistanceKm(captain)
//	// distance ≈ 0.19, err = nil
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := radians(other.latitude - p.latitude)
	dLng := radians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(p.latitude))*math.Cos(radians(other.latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a)), nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so private setters can enforce business requirements during
// object construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so private setters can enforce business requirements during
// object construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func randomOffset() float64 {
	return rand.Float64()*2*jitterDegrees - jitterDegrees //nolint:gosec // not security sensitive
}

func clamp(v, minValue, maxValue float64) float64 {
	return math.Min(math.Max(v, minValue), maxValue)
}
