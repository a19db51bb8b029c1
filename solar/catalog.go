// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"errors"
	"fmt"
)

// Direction tells whether a threshold is crossed by the rising or the setting Sun.
type Direction int

const (
	Rise Direction = iota
	Set
)

func (d Direction) String() string {
	if d == Rise {
		return "rise"
	}
	return "set"
}

// Zenith angles, in degrees from the point overhead.
const (
	ZenithGoldenHour   = 84.0
	ZenithOfficial     = 90.833
	ZenithBlueHour     = 94.0
	ZenithCivil        = 96.0
	ZenithNautical     = 102.0
	ZenithAstronomical = 108.0
)

// EventKind names one of the Sun's threshold crossings.
type EventKind int

const (
	Sunrise EventKind = iota
	Sunset
	CivilDawn
	CivilDusk
	NauticalDawn
	NauticalDusk
	AstronomicalDawn
	AstronomicalDusk
	BlueHourDawnEnd
	BlueHourDuskStart
	GoldenHourDawnEnd
	GoldenHourDuskStart
)

type eventDef struct {
	name      string
	zenith    float64
	direction Direction
}

var catalog = [...]eventDef{
	Sunrise:             {"sunrise", ZenithOfficial, Rise},
	Sunset:              {"sunset", ZenithOfficial, Set},
	CivilDawn:           {"civilDawn", ZenithCivil, Rise},
	CivilDusk:           {"civilDusk", ZenithCivil, Set},
	NauticalDawn:        {"nauticalDawn", ZenithNautical, Rise},
	NauticalDusk:        {"nauticalDusk", ZenithNautical, Set},
	AstronomicalDawn:    {"astronomicalDawn", ZenithAstronomical, Rise},
	AstronomicalDusk:    {"astronomicalDusk", ZenithAstronomical, Set},
	BlueHourDawnEnd:     {"blueHourDawnEnd", ZenithBlueHour, Rise},
	BlueHourDuskStart:   {"blueHourDuskStart", ZenithBlueHour, Set},
	GoldenHourDawnEnd:   {"goldenHourDawnEnd", ZenithGoldenHour, Rise},
	GoldenHourDuskStart: {"goldenHourDuskStart", ZenithGoldenHour, Set},
}

var ErrUnknownEventKind = errors.New("unknown event kind")

// Kinds returns every event kind in catalog order.
func Kinds() []EventKind {
	kinds := make([]EventKind, len(catalog))
	for i := range catalog {
		kinds[i] = EventKind(i)
	}
	return kinds
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(name string) (EventKind, error) {
	for i, def := range catalog {
		if def.name == name {
			return EventKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventKind, name)
}

func (k EventKind) Valid() bool {
	return k >= 0 && int(k) < len(catalog)
}

func (k EventKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return catalog[k].name
}

// Zenith returns the zenith angle of the threshold in degrees.
func (k EventKind) Zenith() float64 {
	return catalog[k].zenith
}

// Altitude returns the solar altitude of the threshold in degrees.
func (k EventKind) Altitude() float64 {
	return 90 - catalog[k].zenith
}

func (k EventKind) Direction() Direction {
	return catalog[k].direction
}
