package domain

import "fmt"

// Location is an immutable geographic position used for topocentric
// calculations such as rise and set times.
type Location struct {
	// Latitude in degrees, positive north, range [-90, 90].
	Latitude float64

	// Longitude in degrees, positive east, range [-180, 180].
	Longitude float64

	// ElevationM is the observer elevation above sea level in meters.
	ElevationM float64
}

// Validate checks the coordinate ranges. It returns ErrInvalidCoordinate
// (wrapped with the offending value) if either coordinate is out of range.
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %.4f outside [-90, 90]", ErrInvalidCoordinate, l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %.4f outside [-180, 180]", ErrInvalidCoordinate, l.Longitude)
	}
	return nil
}
