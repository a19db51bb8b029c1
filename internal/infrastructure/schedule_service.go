// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"github.com/GetSky/TwilightBTA/internal/application"
	"github.com/GetSky/TwilightBTA/lunar"
	"github.com/GetSky/TwilightBTA/solar"
)

type scheduleService struct {
	point        solar.GeoPoint
	loc          *time.Location
	beforeDusk   time.Duration
	forecastDays int
	moon         lunar.Oracle
}

func NewScheduleService(
	point solar.GeoPoint,
	loc *time.Location,
	beforeDusk time.Duration,
	forecastDays int,
	moon lunar.Oracle,
) application.ScheduleService {
	return &scheduleService{
		point:        point,
		loc:          loc,
		beforeDusk:   beforeDusk,
		forecastDays: max(forecastDays, 1),
		moon:         moon,
	}
}

func (n *scheduleService) IsWorkNow(now time.Time) (bool, error) {
	night, err := n.GetNight(now)
	if errors.Is(err, application.ErrNoNight) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !now.Before(night.Start) && now.Before(night.Nautical.End), nil
}

// GetNight returns the session that is running at now or, failing that, the
// one starting this evening.
func (n *scheduleService) GetNight(now time.Time) (application.Night, error) {
	// Until noon the night that began yesterday evening is the current one.
	ref := now.Add(-12 * time.Hour)
	nautical, astronomical := n.nightAfter(ref)
	if !nautical.Valid {
		return application.Night{}, fmt.Errorf("scheduleService → %w on %s", application.ErrNoNight,
			ref.In(n.loc).Format(time.DateOnly))
	}

	w := solar.Window{Start: nautical.Start, End: nautical.End}
	moonEvents, err := lunar.EventsInRange(w, n.point, n.moon, lunar.Moonrise, lunar.Moonset)
	if err != nil {
		return application.Night{}, fmt.Errorf("scheduleService → %w", err)
	}
	galactic, err := lunar.EventsInRange(w, n.point, n.moon, lunar.GalacticCenterRise, lunar.GalacticCenterSet)
	if err != nil {
		return application.Night{}, fmt.Errorf("scheduleService → %w", err)
	}

	forecast, err := n.forecast(ref)
	if err != nil {
		return application.Night{}, err
	}

	return application.Night{
		Start:          nautical.Start.Add(-n.beforeDusk),
		Nautical:       nautical,
		Astronomical:   astronomical,
		NextSunrise:    solar.First(solar.Window{Start: nautical.End, End: nautical.End.Add(24 * time.Hour)}, n.point, solar.Sunrise),
		MoonEvents:     moonEvents,
		GalacticCenter: galactic,
		Illumination:   n.moon.Observe(nautical.Start, n.point).IlluminatedFraction,
		Phase:          lunar.PhaseFor(lunar.Age(nautical.Start)),
		Forecast:       forecast,
	}, nil
}

// nightAfter returns the first nautical night whose dusk comes after local
// noon of date. In summer at mid-high latitudes that dusk falls past
// midnight, on the next calendar day.
func (n *scheduleService) nightAfter(date time.Time) (nautical, astronomical solar.Interval) {
	y, m, d := date.In(n.loc).Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, n.loc)

	dusk := solar.First(solar.Window{Start: noon, End: noon.Add(24 * time.Hour)}, n.point, solar.NauticalDusk)
	if !dusk.Valid {
		return
	}
	dawn := solar.First(solar.Window{Start: dusk.Time, End: dusk.Time.Add(24 * time.Hour)}, n.point, solar.NauticalDawn)
	nautical = solar.NewInterval(dusk, dawn)
	if !nautical.Valid {
		return
	}

	w := solar.Window{Start: nautical.Start, End: nautical.End}
	astronomical = solar.NewInterval(
		solar.First(w, n.point, solar.AstronomicalDusk),
		solar.First(w, n.point, solar.AstronomicalDawn),
	)
	return
}

func (n *scheduleService) forecast(ref time.Time) ([]application.NightForecast, error) {
	moons, err := lunar.MakeRange(ref, n.point, n.loc, n.forecastDays, n.moon)
	if err != nil {
		return nil, fmt.Errorf("scheduleService → %w", err)
	}

	date := solar.MidnightLocal(ref, n.loc)
	out := make([]application.NightForecast, n.forecastDays)
	for i := range out {
		day := date.AddDate(0, 0, i)
		nautical, _ := n.nightAfter(day)
		f := application.NightForecast{
			Date:     day,
			Nautical: nautical,
			Moonrise: moons[i].Rise,
			Phase:    moons[i].Phase,
		}
		if nautical.Valid {
			f.Illumination = n.moon.Observe(nautical.Start, n.point).IlluminatedFraction
		}
		out[i] = f
	}
	return out, nil
}

func (n *scheduleService) GetDaySummary(now time.Time) (application.DaySummary, error) {
	return application.DaySummary{
		Day:    solar.ComputeDay(now, n.point, n.loc),
		Phases: lunar.NextPrincipalPhases(now),
	}, nil
}

func (n *scheduleService) GetSky(now time.Time) (application.Sky, error) {
	return application.Sky{
		Time:         now,
		Status:       lunar.Current(now, n.point, n.moon),
		SunAltitude:  solar.PositionAt(now, n.point).Altitude,
		MoonAltitude: n.moon.Observe(now, n.point).Altitude,
	}, nil
}
