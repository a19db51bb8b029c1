// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"fmt"
	"time"
)

// Instant is a point in time that may be absent. The zero value is absent,
// which is how a threshold the Sun never reaches on a given day is reported.
type Instant struct {
	Time  time.Time
	Valid bool
}

// At returns a present Instant.
func At(t time.Time) Instant {
	return Instant{Time: t, Valid: true}
}

// Get returns the time and whether it is present.
func (i Instant) Get() (time.Time, bool) {
	return i.Time, i.Valid
}

// In returns the instant with its time set to loc. Absent stays absent.
func (i Instant) In(loc *time.Location) Instant {
	if !i.Valid {
		return i
	}
	return At(i.Time.In(loc))
}

func (i Instant) String() string {
	if !i.Valid {
		return "none"
	}
	return i.Time.Format(time.RFC3339)
}

// Interval is a closed span between two instants. It is Valid only when both
// endpoints were present; Start never follows End.
type Interval struct {
	Start time.Time
	End   time.Time
	Valid bool
}

// NewInterval builds an interval from two optional endpoints. A missing
// endpoint yields an absent interval. Endpoints given in reverse order are
// swapped.
func NewInterval(start, end Instant) Interval {
	if !start.Valid || !end.Valid {
		return Interval{}
	}
	if end.Time.Before(start.Time) {
		start, end = end, start
	}
	return Interval{Start: start.Time, End: end.Time, Valid: true}
}

// Contains reports whether t lies within the interval, endpoints included.
func (iv Interval) Contains(t time.Time) bool {
	return iv.Valid && !t.Before(iv.Start) && !t.After(iv.End)
}

func (iv Interval) Duration() time.Duration {
	if !iv.Valid {
		return 0
	}
	return iv.End.Sub(iv.Start)
}

// Midpoint returns the instant halfway between Start and End, rounded to the
// minute.
func (iv Interval) Midpoint() Instant {
	if !iv.Valid {
		return Instant{}
	}
	return At(roundToMinute(iv.Start.Add(iv.Duration() / 2)))
}

// HoursMinutes splits the duration into whole hours and remaining minutes.
func (iv Interval) HoursMinutes() (hours, minutes int) {
	total := int(iv.Duration() / time.Minute)
	return total / 60, total % 60
}

func (iv Interval) String() string {
	if !iv.Valid {
		return "none"
	}
	return fmt.Sprintf("%s/%s", iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
}

func roundToMinute(t time.Time) time.Time {
	return t.Round(time.Minute)
}
