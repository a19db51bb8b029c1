// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import "math"

// sunPosition holds the intermediate parameters of the sunrise equation for
// one day and one direction.
type sunPosition struct {
	direction Direction
	t         float64 // day of year plus the approximate event hour, in days
	sinDec    float64
	raHours   float64
	lonHours  float64
}

// positionFor evaluates the almanac sunrise equation for a UTC day of year.
func positionFor(dayOfYear, lon float64, dir Direction) sunPosition {
	lonHours := lon / 15
	approxHour := 6.0
	if dir == Set {
		approxHour = 18.0
	}
	t := dayOfYear + (approxHour-lonHours)/24

	meanAnomaly := 0.9856*t - 3.289
	trueLongitude := normalizeDegrees(meanAnomaly +
		1.916*math.Sin(degToRad(meanAnomaly)) +
		0.020*math.Sin(2*degToRad(meanAnomaly)) +
		282.634)

	ra := normalizeDegrees(radToDeg(math.Atan(0.91764 * math.Tan(degToRad(trueLongitude)))))
	// Right ascension must sit in the same quadrant as the true longitude.
	ra += math.Floor(trueLongitude/90)*90 - math.Floor(ra/90)*90

	return sunPosition{
		direction: dir,
		t:         t,
		sinDec:    0.39782 * math.Sin(degToRad(trueLongitude)),
		raHours:   ra / 15,
		lonHours:  lonHours,
	}
}

func normalizeDegrees(v float64) float64 {
	return normalize(v, 360)
}

func normalizeHours(v float64) float64 {
	return normalize(v, 24)
}

// normalize wraps v into [0, max) with a single correction; inputs never
// stray more than one period.
func normalize(v, max float64) float64 {
	if v < 0 {
		v += max
	}
	if v >= max {
		v -= max
	}
	return v
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
