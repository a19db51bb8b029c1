// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package lunar

import (
	"slices"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonphase"
)

// PhaseEvent is the moment of a principal phase.
type PhaseEvent struct {
	Phase Phase
	Time  time.Time
}

var principal = [...]struct {
	phase Phase
	jde   func(year float64) float64
}{
	{New, moonphase.New},
	{FirstQuarter, moonphase.First},
	{Full, moonphase.Full},
	{ThirdQuarter, moonphase.Last},
}

// NextPrincipalPhases returns the next new moon, first quarter, full moon and
// third quarter strictly after t, ordered by time and rounded to the minute.
// Times are dynamical time; the difference from UTC is about a minute.
func NextPrincipalPhases(t time.Time) []PhaseEvent {
	year := decimalYear(t)
	lunation := SynodicMonth / 365.25

	events := make([]PhaseEvent, 0, len(principal))
	for _, p := range principal {
		var next time.Time
		// moonphase returns the phase nearest the decimal year; scanning a
		// lunation either side finds the first one after t.
		for k := -1.0; k <= 2; k++ {
			at := julian.JDToTime(p.jde(year + k*lunation)).Round(time.Minute)
			if at.After(t) && (next.IsZero() || at.Before(next)) {
				next = at
			}
		}
		events = append(events, PhaseEvent{Phase: p.phase, Time: next.UTC()})
	}
	slices.SortFunc(events, func(a, b PhaseEvent) int {
		return a.Time.Compare(b.Time)
	})
	return events
}

func decimalYear(t time.Time) float64 {
	t = t.UTC()
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return float64(t.Year()) + float64(t.Sub(start))/float64(end.Sub(start))
}
