// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"testing"
	"time"

	"github.com/GetSky/TwilightBTA/internal/application"
	"github.com/GetSky/TwilightBTA/lunar"
	"github.com/GetSky/TwilightBTA/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bta = solar.MustGeoPoint(43.649329, 41.426829)

type fakeMoon struct {
	altitude, fraction float64
}

func (f fakeMoon) Observe(time.Time, solar.GeoPoint) lunar.Observation {
	return lunar.Observation{Altitude: f.altitude, IlluminatedFraction: f.fraction}
}

func utc(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return v
}

func newBTASchedule(t *testing.T) application.ScheduleService {
	t.Helper()
	loc, err := solar.LoadTimezone("Europe/Moscow")
	require.NoError(t, err)
	return NewScheduleService(bta, loc, 2*time.Hour, 3, fakeMoon{altitude: 10, fraction: 0.5})
}

func TestGetNight(t *testing.T) {
	srv := newBTASchedule(t)

	night, err := srv.GetNight(utc(t, "2025-01-22T15:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, utc(t, "2025-01-22T15:18:00Z"), night.Nautical.Start.UTC())
	assert.Equal(t, utc(t, "2025-01-23T03:34:00Z"), night.Nautical.End.UTC())
	assert.Equal(t, utc(t, "2025-01-22T13:18:00Z"), night.Start.UTC())
	assert.Equal(t, utc(t, "2025-01-22T15:52:00Z"), night.Astronomical.Start.UTC())
	assert.Equal(t, utc(t, "2025-01-23T03:00:00Z"), night.Astronomical.End.UTC())
	assert.Equal(t, solar.At(utc(t, "2025-01-23T04:40:00Z")), night.NextSunrise)
	assert.Equal(t, 0.5, night.Illumination)
	assert.Empty(t, night.MoonEvents)

	for _, e := range night.GalacticCenter {
		assert.True(t, night.Nautical.Contains(e.Time), e.Kind.String())
	}

	require.Len(t, night.Forecast, 3)
	assert.Equal(t, night.Nautical, night.Forecast[0].Nautical)
	for i, f := range night.Forecast {
		assert.Equal(t, 22+i, f.Date.Day())
		assert.True(t, f.Nautical.Valid)
	}
	assert.Equal(t, utc(t, "2025-01-23T15:19:00Z"), night.Forecast[1].Nautical.Start.UTC())
}

func TestGetNightKeepsRunningSessionUntilNoon(t *testing.T) {
	srv := newBTASchedule(t)

	// 06:00 in Moscow still belongs to the night that began yesterday.
	night, err := srv.GetNight(utc(t, "2025-01-23T03:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, utc(t, "2025-01-22T15:18:00Z"), night.Nautical.Start.UTC())

	// 12:30 looks ahead to the coming evening.
	night, err = srv.GetNight(utc(t, "2025-01-23T09:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, utc(t, "2025-01-23T15:19:00Z"), night.Nautical.Start.UTC())
}

func TestIsWorkNow(t *testing.T) {
	srv := newBTASchedule(t)
	for _, tc := range []struct {
		now  string
		work bool
	}{
		{"2025-01-22T13:00:00Z", false},
		{"2025-01-22T13:18:00Z", true},
		{"2025-01-22T15:00:00Z", true},
		{"2025-01-23T03:00:00Z", true},
		{"2025-01-23T03:34:00Z", false},
		{"2025-01-23T09:30:00Z", false},
	} {
		work, err := srv.IsWorkNow(utc(t, tc.now))
		require.NoError(t, err)
		assert.Equal(t, tc.work, work, tc.now)
	}
}

func TestShortSummerNightsAfterMidnight(t *testing.T) {
	loc, err := solar.LoadTimezone("Europe/Moscow")
	require.NoError(t, err)
	srv := NewScheduleService(solar.MustGeoPoint(55.75, 37.62), loc, 2*time.Hour, 2, fakeMoon{})

	// Nautical dusk drifts across local midnight between the 11th and the 13th.
	for _, tc := range []struct {
		now        string
		dusk, dawn string
	}{
		{"2025-07-11T20:00:00+03:00", "2025-07-12T00:12:00+03:00", "2025-07-12T01:03:00+03:00"},
		{"2025-07-12T20:00:00+03:00", "2025-07-13T00:03:00+03:00", "2025-07-13T01:10:00+03:00"},
		{"2025-07-13T20:00:00+03:00", "2025-07-13T23:57:00+03:00", "2025-07-14T01:17:00+03:00"},
	} {
		night, err := srv.GetNight(utc(t, tc.now))
		require.NoError(t, err, tc.now)
		assert.True(t, night.Nautical.Start.Equal(utc(t, tc.dusk)), tc.now)
		assert.True(t, night.Nautical.End.Equal(utc(t, tc.dawn)), tc.now)
		assert.Less(t, night.Nautical.Duration(), 2*time.Hour, tc.now)
		assert.False(t, night.Astronomical.Valid, tc.now)
		require.Len(t, night.Forecast, 2)
		assert.Equal(t, night.Nautical, night.Forecast[0].Nautical)
		assert.True(t, night.Forecast[1].Nautical.Start.After(night.Nautical.End), tc.now)
	}

	for _, tc := range []struct {
		now  string
		work bool
	}{
		{"2025-07-13T12:00:00+03:00", false},
		{"2025-07-13T15:00:00+03:00", false},
		{"2025-07-13T18:00:00+03:00", false},
		{"2025-07-13T21:56:00+03:00", false},
		{"2025-07-13T21:57:00+03:00", true},
		{"2025-07-14T01:00:00+03:00", true},
		{"2025-07-14T01:17:00+03:00", false},
		{"2025-07-14T11:00:00+03:00", false},
	} {
		work, err := srv.IsWorkNow(utc(t, tc.now))
		require.NoError(t, err)
		assert.Equal(t, tc.work, work, tc.now)
	}
}

func TestNoNightAtMidnightSun(t *testing.T) {
	loc, err := solar.LoadTimezone("Arctic/Longyearbyen")
	require.NoError(t, err)
	srv := NewScheduleService(solar.MustGeoPoint(78.227458, 15.778451), loc, time.Hour, 1, fakeMoon{})

	now := utc(t, "2025-06-21T22:00:00Z")
	_, err = srv.GetNight(now)
	assert.ErrorIs(t, err, application.ErrNoNight)

	work, err := srv.IsWorkNow(now)
	require.NoError(t, err)
	assert.False(t, work)
}

func TestGetDaySummaryAndSky(t *testing.T) {
	srv := newBTASchedule(t)
	now := utc(t, "2025-01-23T03:40:00Z")

	summary, err := srv.GetDaySummary(now)
	require.NoError(t, err)
	assert.Equal(t, solar.At(utc(t, "2025-01-23T04:40:00Z")), summary.Day.Dawn.Actual)
	require.Len(t, summary.Phases, 4)

	sky, err := srv.GetSky(now)
	require.NoError(t, err)
	assert.Equal(t, solar.NauticalTwilight, sky.Status.Solar)
	assert.Equal(t, lunar.Risen, sky.Status.Moon)
	assert.Equal(t, 10.0, sky.MoonAltitude)
	assert.Less(t, sky.SunAltitude, -6.0)
}
