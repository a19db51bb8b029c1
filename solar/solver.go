// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// crossing computes the instant the Sun crosses zenith for the UTC calendar
// day of base. The result is absent when the Sun never reaches that altitude.
func crossing(base time.Time, p GeoPoint, zenith float64, dir Direction) Instant {
	base = base.UTC()
	pos := positionFor(float64(base.YearDay()), p.lon, dir)

	cosH, ok := hourAngleCosine(pos, zenith, p.lat)
	if !ok {
		return Instant{}
	}
	ut := utcHour(pos, cosH)

	// The day of year above is a UTC day; near the antimeridian the event
	// belongs to the neighbouring UTC date.
	switch {
	case dir == Rise && pos.lonHours > 0 && ut > 12:
		base = base.Add(-day)
	case dir == Set && pos.lonHours < 0 && ut < 12:
		base = base.Add(day)
	}
	return At(roundToMinute(combine(base, ut)))
}

// hourAngleCosine returns cos(H) for the threshold, or false when |cos(H)| > 1.
func hourAngleCosine(pos sunPosition, zenith, lat float64) (float64, bool) {
	cosDec := math.Cos(math.Asin(pos.sinDec))
	cosH := (math.Cos(degToRad(zenith)) - pos.sinDec*math.Sin(degToRad(lat))) /
		(cosDec * math.Cos(degToRad(lat)))
	if cosH > 1 || cosH < -1 {
		return 0, false
	}
	return cosH, true
}

// utcHour converts the local hour angle into an hour of the UTC day.
func utcHour(pos sunPosition, cosH float64) float64 {
	h := radToDeg(math.Acos(cosH))
	if pos.direction == Rise {
		h = 360 - h
	}
	localMeanTime := normalizeHours(h/15 + pos.raHours - 0.06571*pos.t - 6.622)
	return normalizeHours(localMeanTime - pos.lonHours)
}

// combine places hours on the UTC calendar date of base, whole seconds only.
func combine(base time.Time, hours float64) time.Time {
	hour := math.Floor(hours)
	minutes := (hours - hour) * 60
	minute := math.Floor(minutes)
	second := math.Floor((minutes - minute) * 60)
	y, m, d := base.UTC().Date()
	return time.Date(y, m, d, int(hour), int(minute), int(second), 0, time.UTC)
}
