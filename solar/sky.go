// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// Position is the Sun's place in the sky: altitude above the horizon and
// azimuth clockwise from north, both in degrees.
type Position struct {
	Altitude float64
	Azimuth  float64
}

// PositionAt evaluates the Sun's position at t for p.
func PositionAt(t time.Time, p GeoPoint) Position {
	pos := suncalc.GetPosition(t, p.lat, p.lon)
	return Position{
		Altitude: radToDeg(pos.Altitude),
		Azimuth:  NorthAzimuth(pos.Azimuth),
	}
}

// NorthAzimuth converts suncalc's south-based azimuth in radians to degrees
// clockwise from north in [0, 360).
func NorthAzimuth(southRadians float64) float64 {
	return math.Mod(radToDeg(southRadians)+540, 360)
}

// StateAt classifies the sky at t for p.
func StateAt(t time.Time, p GeoPoint) (TwilightState, MagicHour, bool) {
	alt := PositionAt(t, p).Altitude
	mh, ok := ClassifyMagicHour(alt)
	return Classify(alt), mh, ok
}
