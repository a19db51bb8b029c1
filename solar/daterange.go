// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidDays = errors.New("day count must be positive")

// MakeRange computes days consecutive Day records starting at the local
// midnight of from. Days are independent and computed concurrently; the
// result is ordered by day.
func MakeRange(from time.Time, p GeoPoint, loc *time.Location, days int) ([]Day, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}
	y, m, d := MidnightLocal(from, loc).Date()
	out := make([]Day, days)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		g.Go(func() error {
			out[i] = ComputeDay(time.Date(y, m, d+i, 0, 0, 0, 0, loc), p, loc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
