// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package lunar

import (
	"fmt"
	"runtime"
	"time"

	"github.com/GetSky/TwilightBTA/solar"
	"golang.org/x/sync/errgroup"
)

// Day summarizes the Moon for one local calendar day.
type Day struct {
	Window solar.Window
	Rise   solar.Instant
	Set    solar.Instant
	// Illumination is the illuminated fraction at moonrise, zero when the
	// Moon does not rise that day.
	Illumination float64
	Phase        Phase
	// Altitude of the Moon at the queried instant, degrees.
	Altitude float64
}

// ComputeDay resolves the Moon for the local day containing date.
func ComputeDay(date time.Time, p solar.GeoPoint, loc *time.Location, moon Oracle) Day {
	rise, set := RiseSet(date, p, loc, moon)
	d := Day{
		Window:   solar.DayWindow(date, loc),
		Rise:     rise,
		Set:      set,
		Phase:    PhaseFor(Age(date)),
		Altitude: moon.Observe(date, p).Altitude,
	}
	if at, ok := rise.Get(); ok {
		d.Illumination = moon.Observe(at, p).IlluminatedFraction
	}
	return d
}

// MakeRange computes days consecutive Day records starting at the local
// midnight of from.
func MakeRange(from time.Time, p solar.GeoPoint, loc *time.Location, days int, moon Oracle) ([]Day, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: got %d", solar.ErrInvalidDays, days)
	}
	y, m, d := solar.MidnightLocal(from, loc).Date()
	out := make([]Day, days)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		g.Go(func() error {
			out[i] = ComputeDay(time.Date(y, m, d+i, 0, 0, 0, 0, loc), p, loc, moon)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
