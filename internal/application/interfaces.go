// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"errors"
	"time"

	"github.com/GetSky/TwilightBTA/lunar"
	"github.com/GetSky/TwilightBTA/solar"
)

// ErrNoNight is returned when the Sun does not reach nautical darkness, as in
// the white nights of high latitudes.
var ErrNoNight = errors.New("no nautical night")

type ScheduleService interface {
	IsWorkNow(now time.Time) (bool, error)
	GetNight(now time.Time) (Night, error)
	GetDaySummary(now time.Time) (DaySummary, error)
	GetSky(now time.Time) (Sky, error)
}

type NotifyService interface {
	SendWorkStarted(night Night) error
	SendUpdate(sky Sky) error
	SendWorkEnded(summary DaySummary) error
}

// Night is one observing session, from nautical dusk to the nautical dawn
// of the following morning.
type Night struct {
	// Start is when the session opens: nautical dusk minus the reserve.
	Start        time.Time
	Nautical     solar.Interval
	Astronomical solar.Interval
	NextSunrise  solar.Instant

	MoonEvents     []lunar.Event
	GalacticCenter []lunar.Event
	Illumination   float64
	Phase          lunar.Phase

	// Forecast starts with this night.
	Forecast []NightForecast
}

type NightForecast struct {
	Date         time.Time
	Nautical     solar.Interval
	Moonrise     solar.Instant
	Illumination float64
	Phase        lunar.Phase
}

// DaySummary is posted when a session ends.
type DaySummary struct {
	Day    solar.Day
	Phases []lunar.PhaseEvent
}

// Sky is the state of the sky at one instant.
type Sky struct {
	Time         time.Time
	Status       lunar.Status
	SunAltitude  float64
	MoonAltitude float64
}
