// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180]")
)

// GeoPoint is a validated geographic position in degrees.
type GeoPoint struct {
	lat, lon float64
}

// NewGeoPoint validates both coordinates and reports every violation at once.
// Out of range values are never clamped.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	errs := errors.M{}
	// Written as negated ranges so NaN is rejected too.
	if !(lat >= -90 && lat <= 90) {
		errs.Append(fmt.Errorf("%w: got %v", ErrInvalidLatitude, lat))
	}
	if !(lon >= -180 && lon <= 180) {
		errs.Append(fmt.Errorf("%w: got %v", ErrInvalidLongitude, lon))
	}
	if err := errs.Err(); err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{lat: lat, lon: lon}, nil
}

// MustGeoPoint is like NewGeoPoint but panics on invalid input.
// Intended for package level variables and tests.
func MustGeoPoint(lat, lon float64) GeoPoint {
	p, err := NewGeoPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}

func (p GeoPoint) Latitude() float64 {
	return p.lat
}

func (p GeoPoint) Longitude() float64 {
	return p.lon
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.lat, p.lon)
}
