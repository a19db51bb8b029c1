// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package lunar

import (
	"math"
	"time"

	"github.com/GetSky/TwilightBTA/solar"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// Sagittarius A*, J2000.
const (
	galacticCenterRA  = (17 + 45.0/60 + 40.0/3600) * 15 // degrees
	galacticCenterDec = -(29 + 0.0/60 + 28.0/3600)
	// Standard altitude for a point source, refraction included.
	starHorizon = -0.5667

	siderealRate = 360.985647 // degrees of sidereal rotation per solar day
)

// GalacticCenter observes the center of the Milky Way as a fixed star.
// Precession is ignored; it shifts the crossings by about a minute per
// decade.
type GalacticCenter struct{}

func (GalacticCenter) Observe(t time.Time, p solar.GeoPoint) Observation {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	lat, lon := rad(p.Latitude()), p.Longitude()
	dec := rad(galacticCenterDec)

	var obs Observation
	cosH := (math.Sin(rad(starHorizon)) - math.Sin(lat)*math.Sin(dec)) / (math.Cos(lat) * math.Cos(dec))
	if cosH >= -1 && cosH <= 1 {
		h0 := deg(math.Acos(cosH))
		theta0 := greenwichSiderealAngle(midnight)
		at := func(hourAngle float64) solar.Instant {
			// Local sidereal angle grows at siderealRate from midnight.
			m := normalizeDegrees(galacticCenterRA+hourAngle-lon-theta0) / siderealRate
			return solar.At(midnight.Add(time.Duration(m * float64(24*time.Hour))))
		}
		obs.Rise = at(-h0)
		obs.Set = at(h0)
	}

	hourAngle := rad(normalizeDegrees(greenwichSiderealAngle(t) + lon - galacticCenterRA))
	obs.Altitude = deg(math.Asin(math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(hourAngle)))
	south := math.Atan2(math.Sin(hourAngle), math.Cos(hourAngle)*math.Sin(lat)-math.Tan(dec)*math.Cos(lat))
	obs.Azimuth = solar.NorthAzimuth(south)
	return obs
}

// greenwichSiderealAngle returns the mean sidereal time at Greenwich in
// degrees.
func greenwichSiderealAngle(t time.Time) float64 {
	jd := julian.TimeToJD(t)
	c := (jd - 2451545) / 36525
	return normalizeDegrees(280.46061837 + 360.98564736629*(jd-2451545) +
		0.000387933*c*c - c*c*c/38710000)
}

func normalizeDegrees(v float64) float64 {
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v
}

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }
