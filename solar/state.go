// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import "fmt"

// TwilightState describes the sky according to the Sun's altitude.
type TwilightState int

const (
	Night TwilightState = iota
	AstronomicalTwilight
	NauticalTwilight
	CivilTwilight
	Daylight
)

var twilightNames = [...]string{
	Night:                "night",
	AstronomicalTwilight: "astronomicalTwilight",
	NauticalTwilight:     "nauticalTwilight",
	CivilTwilight:        "civilTwilight",
	Daylight:             "daylight",
}

func (s TwilightState) String() string {
	if s < 0 || int(s) >= len(twilightNames) {
		return fmt.Sprintf("TwilightState(%d)", int(s))
	}
	return twilightNames[s]
}

// MagicHour is one of the photographers' light bands.
type MagicHour int

const (
	BlueHour MagicHour = iota
	GoldenHour
)

func (m MagicHour) String() string {
	if m == BlueHour {
		return "blueHour"
	}
	return "goldenHour"
}

// Classify maps a solar altitude in degrees to a twilight state. Bands include
// their lower bound.
func Classify(altitude float64) TwilightState {
	switch {
	case altitude < -18:
		return Night
	case altitude < -12:
		return AstronomicalTwilight
	case altitude < -6:
		return NauticalTwilight
	case altitude < -0.833:
		return CivilTwilight
	default:
		return Daylight
	}
}

// ClassifyMagicHour reports the magic hour band for a solar altitude, if any.
func ClassifyMagicHour(altitude float64) (MagicHour, bool) {
	switch {
	case altitude >= -6 && altitude < -4:
		return BlueHour, true
	case altitude >= -4 && altitude < 6:
		return GoldenHour, true
	default:
		return 0, false
	}
}
