// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import "math"

type memoKey struct {
	zenith    int64 // millidegrees
	direction Direction
}

// dayQuery resolves event kinds for one window and location. Results are
// memoized by quantized zenith angle and direction for the lifetime of the
// query. A dayQuery is not safe for concurrent use and must not outlive the
// call that created it.
type dayQuery struct {
	point  GeoPoint
	window Window
	memo   map[memoKey]Instant
}

func newDayQuery(p GeoPoint, w Window) *dayQuery {
	return &dayQuery{point: p, window: w, memo: make(map[memoKey]Instant, len(catalog))}
}

func (q *dayQuery) resolve(kind EventKind) Instant {
	key := memoKey{zenith: int64(math.Round(kind.Zenith() * 1000)), direction: kind.Direction()}
	if v, ok := q.memo[key]; ok {
		return v
	}
	v := ResolveWindow(q.window, kindCandidates(q.point, kind))
	q.memo[key] = v
	return v
}
