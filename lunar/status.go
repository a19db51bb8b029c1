// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package lunar

import (
	"time"

	"github.com/GetSky/TwilightBTA/solar"
)

// MoonState tells whether the Moon is above the horizon.
type MoonState int

const (
	Set MoonState = iota
	Risen
)

func (s MoonState) String() string {
	if s == Risen {
		return "risen"
	}
	return "set"
}

// Status is the combined state of the sky at one instant.
type Status struct {
	Solar solar.TwilightState
	// MagicHour is meaningful only when InMagicHour is true.
	MagicHour   solar.MagicHour
	InMagicHour bool

	Moon             MoonState
	MoonIllumination float64
	MoonPhase        Phase
}

// Current reports the sky at t for the observer at p.
func Current(t time.Time, p solar.GeoPoint, moon Oracle) Status {
	state, magic, ok := solar.StateAt(t, p)
	obs := moon.Observe(t, p)

	s := Status{
		Solar:            state,
		MagicHour:        magic,
		InMagicHour:      ok,
		MoonIllumination: obs.IlluminatedFraction,
		MoonPhase:        PhaseFor(Age(t)),
	}
	if obs.Altitude > 0 {
		s.Moon = Risen
	}
	return s
}
