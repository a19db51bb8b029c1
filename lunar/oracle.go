// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package lunar

import (
	"time"

	"github.com/GetSky/TwilightBTA/solar"
	"github.com/sixdouglas/suncalc"
)

// Observation is what an Oracle reports for a body at one instant.
type Observation struct {
	// Rise and Set are the crossings on the UTC calendar day of the
	// observed instant; either may be absent.
	Rise solar.Instant
	Set  solar.Instant

	// Altitude and Azimuth in degrees, azimuth clockwise from north.
	Altitude float64
	Azimuth  float64

	IlluminatedFraction float64
	// PhaseAngle in degrees: 0 new, 90 first quarter, 180 full, 270 third
	// quarter.
	PhaseAngle float64
}

// Oracle supplies positions and horizon crossings of a body. Implementations
// must be safe for concurrent use.
type Oracle interface {
	Observe(t time.Time, p solar.GeoPoint) Observation
}

// SunCalc observes the Moon with the suncalc ephemeris.
type SunCalc struct{}

func (SunCalc) Observe(t time.Time, p solar.GeoPoint) Observation {
	t = t.UTC()
	lat, lon := p.Latitude(), p.Longitude()
	times := suncalc.GetMoonTimes(t, lat, lon, true)
	pos := suncalc.GetMoonPosition(t, lat, lon)
	illum := suncalc.GetMoonIllumination(t)

	return Observation{
		Rise:                optional(times.Rise),
		Set:                 optional(times.Set),
		Altitude:            deg(pos.Altitude),
		Azimuth:             solar.NorthAzimuth(pos.Azimuth),
		IlluminatedFraction: illum.Fraction,
		PhaseAngle:          illum.Phase * 360,
	}
}

func optional(t time.Time) solar.Instant {
	if t.IsZero() {
		return solar.Instant{}
	}
	return solar.At(t.UTC())
}
