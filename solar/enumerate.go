// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrCursorStalled is returned when an enumeration fails to make progress.
// It indicates a broken resolver, never a property of the input.
var ErrCursorStalled = errors.New("enumeration cursor did not advance")

// enumerationStep is how far past a found occurrence the search resumes.
const enumerationStep = time.Minute

// Enumerate returns every time resolve finds inside w, in order. resolve is
// asked for the first occurrence in [cursor, w.End) and must only return
// instants inside the window it was given. Enumeration stops at the first
// cursor for which resolve finds nothing.
func Enumerate(w Window, resolve func(Window) Instant) ([]time.Time, error) {
	return enumerate(w, resolve, false)
}

// EnumerateAcrossGaps is Enumerate that keeps going when resolve finds
// nothing: while more than a day of w remains the cursor skips a day.
// Crossings can pause for weeks at high latitude.
func EnumerateAcrossGaps(w Window, resolve func(Window) Instant) ([]time.Time, error) {
	return enumerate(w, resolve, true)
}

func enumerate(w Window, resolve func(Window) Instant, skipGaps bool) ([]time.Time, error) {
	var found []time.Time
	cursor := w.Start
	for cursor.Before(w.End) {
		at, ok := resolve(Window{Start: cursor, End: w.End}).Get()
		if !ok {
			if skipGaps && cursor.Add(day).Before(w.End) {
				cursor = cursor.Add(day)
				continue
			}
			break
		}
		next := at.Add(enumerationStep)
		if at.Before(cursor) || !next.After(cursor) {
			return found, fmt.Errorf("%w: cursor %v, found %v", ErrCursorStalled, cursor, at)
		}
		found = append(found, at)
		cursor = next
	}
	return found, nil
}

// EventsInRange lists every occurrence of the given kinds inside w ordered by
// time. Duplicate kinds are ignored. Each kind stops at its first gap, see
// Enumerate.
func EventsInRange(w Window, p GeoPoint, kinds ...EventKind) ([]Event, error) {
	return eventsInRange(w, p, Enumerate, kinds)
}

// EventsAcrossGaps is EventsInRange for intervals that span polar day or
// night: enumeration resumes once the crossings return.
func EventsAcrossGaps(w Window, p GeoPoint, kinds ...EventKind) ([]Event, error) {
	return eventsInRange(w, p, EnumerateAcrossGaps, kinds)
}

type enumerator func(Window, func(Window) Instant) ([]time.Time, error)

func eventsInRange(w Window, p GeoPoint, enum enumerator, kinds []EventKind) ([]Event, error) {
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
		candidates := kindCandidates(p, kind)
		times, err := enum(w, func(sub Window) Instant {
			return ResolveWindow(sub, candidates)
		})
		if err != nil {
			return nil, fmt.Errorf("%v: %w", kind, err)
		}
		for _, t := range times {
			events = append(events, Event{Kind: kind, Time: t, Azimuth: PositionAt(t, p).Azimuth})
		}
	}
	slices.SortStableFunc(events, compareEvents)
	return events, nil
}
