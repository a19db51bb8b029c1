// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package lunar

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/GetSky/TwilightBTA/solar"
)

// EventKind is a horizon crossing of the Moon or the galactic center.
type EventKind int

const (
	Moonrise EventKind = iota
	Moonset
	GalacticCenterRise
	GalacticCenterSet
)

var kindNames = [...]string{
	Moonrise:           "moonrise",
	Moonset:            "moonset",
	GalacticCenterRise: "galacticCenterVisibilityStart",
	GalacticCenterSet:  "galacticCenterVisibilityEnd",
}

var ErrUnknownEventKind = errors.New("unknown lunar event kind")

func (k EventKind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

func (k EventKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return kindNames[k]
}

func (k EventKind) Direction() solar.Direction {
	if k == Moonrise || k == GalacticCenterRise {
		return solar.Rise
	}
	return solar.Set
}

// ParseEventKind looks a kind up by name.
func ParseEventKind(name string) (EventKind, error) {
	for i, n := range kindNames {
		if n == name {
			return EventKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventKind, name)
}

// Event is one occurrence of a lunar event kind.
type Event struct {
	Kind    EventKind
	Time    time.Time
	Azimuth float64
}

func candidates(p solar.GeoPoint, o Oracle, dir solar.Direction) solar.CandidateFunc {
	return func(base time.Time) solar.Instant {
		obs := o.Observe(base, p)
		at := obs.Rise
		if dir == solar.Set {
			at = obs.Set
		}
		if !at.Valid {
			return at
		}
		return solar.At(at.Time.Round(time.Minute))
	}
}

// RiseSet returns the moonrise and moonset within date's local day in loc.
func RiseSet(date time.Time, p solar.GeoPoint, loc *time.Location, moon Oracle) (rise, set solar.Instant) {
	w := solar.DayWindow(date, loc)
	return solar.ResolveWindow(w, candidates(p, moon, solar.Rise)),
		solar.ResolveWindow(w, candidates(p, moon, solar.Set))
}

// EventsInRange lists every occurrence of the given kinds inside w ordered by
// time. Moon kinds are observed through moon; galactic center kinds use
// GalacticCenter. A day without a moonrise or moonset does not end the
// enumeration.
func EventsInRange(w solar.Window, p solar.GeoPoint, moon Oracle, kinds ...EventKind) ([]Event, error) {
	var events []Event
	seen := make(map[EventKind]bool, len(kinds))
	for _, kind := range kinds {
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEventKind, kind)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true

		o := moon
		if kind == GalacticCenterRise || kind == GalacticCenterSet {
			o = GalacticCenter{}
		}
		cands := candidates(p, o, kind.Direction())
		times, err := solar.EnumerateAcrossGaps(w, func(sub solar.Window) solar.Instant {
			return solar.ResolveWindow(sub, cands)
		})
		if err != nil {
			return nil, fmt.Errorf("%v: %w", kind, err)
		}
		for _, t := range times {
			events = append(events, Event{Kind: kind, Time: t, Azimuth: o.Observe(t, p).Azimuth})
		}
	}
	slices.SortStableFunc(events, func(a, b Event) int {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		return int(a.Kind) - int(b.Kind)
	})
	return events, nil
}
