// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"slices"
	"time"
)

// Event is one occurrence of an event kind.
type Event struct {
	Kind EventKind
	Time time.Time
	// Azimuth of the Sun at Time, degrees clockwise from north.
	Azimuth float64
}

func (e Event) Direction() Direction {
	return e.Kind.Direction()
}

// Next returns the first sunrise or sunset strictly after now, looking at
// now's local day and the following one. It reports false when neither day
// has a sunrise or sunset, as in polar night.
func Next(now time.Time, p GeoPoint, loc *time.Location) (Event, bool) {
	today := DayWindow(now, loc)
	y, m, d := today.Start.Date()
	tomorrow := DayWindow(time.Date(y, m, d+1, 0, 0, 0, 0, loc), loc)

	var events []Event
	for _, w := range [...]Window{today, tomorrow} {
		for _, kind := range [...]EventKind{Sunrise, Sunset} {
			if at, ok := ResolveWindow(w, kindCandidates(p, kind)).Get(); ok {
				events = append(events, Event{Kind: kind, Time: at})
			}
		}
	}
	slices.SortStableFunc(events, compareEvents)
	for _, e := range events {
		if e.Time.After(now) {
			e.Azimuth = PositionAt(e.Time, p).Azimuth
			return e, true
		}
	}
	return Event{}, false
}

func compareEvents(a, b Event) int {
	if c := a.Time.Compare(b.Time); c != 0 {
		return c
	}
	return int(a.Kind) - int(b.Kind)
}
