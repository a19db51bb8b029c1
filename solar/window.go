// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"fmt"
	"time"
)

// Window is the half-open span [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the caller's local day containing date: 24 hours from
// local midnight in loc.
func DayWindow(date time.Time, loc *time.Location) Window {
	start := MidnightLocal(date, loc)
	return Window{Start: start, End: start.Add(day)}
}

// MidnightLocal returns the start of date's calendar day in loc.
func MidnightLocal(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// CandidateFunc computes the crossing anchored to the UTC calendar day of base.
type CandidateFunc func(base time.Time) Instant

// ResolveWindow evaluates candidate for the days before, of and after
// w.Start and returns the earliest candidate that lies inside w.
func ResolveWindow(w Window, candidate CandidateFunc) Instant {
	var found Instant
	for _, offset := range [...]time.Duration{-day, 0, day} {
		c := candidate(w.Start.Add(offset))
		if !c.Valid || !w.Contains(c.Time) {
			continue
		}
		if !found.Valid || c.Time.Before(found.Time) {
			found = c
		}
	}
	return found
}

func kindCandidates(p GeoPoint, kind EventKind) CandidateFunc {
	zenith, dir := kind.Zenith(), kind.Direction()
	return func(base time.Time) Instant {
		return crossing(base, p, zenith, dir)
	}
}

// First returns the earliest occurrence of kind inside w, which may span at
// most a day. An unknown kind is never found.
func First(w Window, p GeoPoint, kind EventKind) Instant {
	if !kind.Valid() {
		return Instant{}
	}
	return ResolveWindow(w, kindCandidates(p, kind))
}

// Resolve returns the occurrence of kind within date's local day in loc.
func Resolve(date time.Time, p GeoPoint, loc *time.Location, kind EventKind) Instant {
	return ResolveWindow(DayWindow(date, loc), kindCandidates(p, kind))
}
