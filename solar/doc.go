// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

// Package solar computes sunrise, sunset, twilight boundaries and the golden
// and blue hours for a place and a local calendar day.
//
// Crossing times come from the closed-form almanac sunrise equation, which
// works on UTC days. Each query evaluates the previous, current and next UTC
// day and keeps the candidate that lands inside the caller's local day, so
// results follow the caller's calendar rather than UTC's. A threshold the Sun
// does not reach is reported as an absent Instant, not an error.
//
//	loc, _ := solar.LoadTimezone("America/Denver")
//	p, _ := solar.NewGeoPoint(36.148817, -107.980578)
//	d := solar.ComputeDay(time.Now(), p, loc)
//	if rise, ok := d.Dawn.Actual.Get(); ok {
//		fmt.Println("sunrise", rise.In(loc))
//	}
package solar
