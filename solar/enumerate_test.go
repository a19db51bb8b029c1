// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar_test

import (
	"testing"
	"time"

	"github.com/GetSky/TwilightBTA/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wantEvent struct {
	kind solar.EventKind
	at   string
}

func assertEvents(t *testing.T, want []wantEvent, got []solar.Event) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.kind, got[i].Kind, "event %d", i)
		assert.Equal(t, w.at, got[i].Time.UTC().Format(time.RFC3339), "event %d (%v)", i, w.kind)
	}
}

func TestEventsInRangeSunriseSunset(t *testing.T) {
	start := utc(t, "2025-01-22T19:00:00Z")
	w := solar.Window{Start: start, End: start.Add(72 * time.Hour)}

	events, err := solar.EventsInRange(w, alienThrone, solar.Sunrise, solar.Sunset)
	require.NoError(t, err)
	assertEvents(t, []wantEvent{
		{solar.Sunset, "2025-01-23T00:28:00Z"},
		{solar.Sunrise, "2025-01-23T14:19:00Z"},
		{solar.Sunset, "2025-01-24T00:29:00Z"},
		{solar.Sunrise, "2025-01-24T14:19:00Z"},
		{solar.Sunset, "2025-01-25T00:30:00Z"},
		{solar.Sunrise, "2025-01-25T14:18:00Z"},
	}, events)

	assert.InDelta(t, 246, events[0].Azimuth, 1)
	assert.InDelta(t, 114, events[1].Azimuth, 1)
	assert.Equal(t, solar.Set, events[0].Direction())
	assert.Equal(t, solar.Rise, events[1].Direction())
}

func TestEventsInRangeWholeCatalog(t *testing.T) {
	start := utc(t, "2025-01-22T06:00:00Z")
	w := solar.Window{Start: start, End: start.Add(24 * time.Hour)}

	events, err := solar.EventsInRange(w, alienThrone, solar.Kinds()...)
	require.NoError(t, err)
	assertEvents(t, []wantEvent{
		{solar.AstronomicalDawn, "2025-01-22T12:50:00Z"},
		{solar.NauticalDawn, "2025-01-22T13:21:00Z"},
		{solar.CivilDawn, "2025-01-22T13:52:00Z"},
		{solar.BlueHourDawnEnd, "2025-01-22T14:03:00Z"},
		{solar.Sunrise, "2025-01-22T14:20:00Z"},
		{solar.GoldenHourDawnEnd, "2025-01-22T14:58:00Z"},
		{solar.GoldenHourDuskStart, "2025-01-22T23:50:00Z"},
		{solar.Sunset, "2025-01-23T00:28:00Z"},
		{solar.BlueHourDuskStart, "2025-01-23T00:45:00Z"},
		{solar.CivilDusk, "2025-01-23T00:56:00Z"},
		{solar.NauticalDusk, "2025-01-23T01:27:00Z"},
		{solar.AstronomicalDusk, "2025-01-23T01:57:00Z"},
	}, events)
}

func TestEventsInRangeStopsAtPolarNight(t *testing.T) {
	w := solar.Window{Start: utc(t, "2025-02-10T00:00:00Z"), End: utc(t, "2025-02-25T00:00:00Z")}

	events, err := solar.EventsInRange(w, longyear, solar.Sunrise, solar.Sunset)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventsAcrossGapsSkipsPolarNight(t *testing.T) {
	w := solar.Window{Start: utc(t, "2025-02-10T00:00:00Z"), End: utc(t, "2025-02-25T00:00:00Z")}

	events, err := solar.EventsAcrossGaps(w, longyear, solar.Sunrise, solar.Sunset)
	require.NoError(t, err)
	require.Len(t, events, 18)
	assert.Equal(t, solar.Sunrise, events[0].Kind)
	assert.Equal(t, "2025-02-16T10:32:00Z", events[0].Time.UTC().Format(time.RFC3339))
	assert.Equal(t, solar.Sunset, events[17].Kind)
	assert.Equal(t, "2025-02-24T14:05:00Z", events[17].Time.UTC().Format(time.RFC3339))
	for i, e := range events {
		want := solar.Sunrise
		if i%2 == 1 {
			want = solar.Sunset
		}
		assert.Equal(t, want, e.Kind, "event %d", i)
	}
}

func TestEventsInRangeDedupesKinds(t *testing.T) {
	start := utc(t, "2025-03-20T00:00:00Z")
	w := solar.Window{Start: start, End: start.Add(48 * time.Hour)}

	once, err := solar.EventsInRange(w, greenwich, solar.Sunrise)
	require.NoError(t, err)
	twice, err := solar.EventsInRange(w, greenwich, solar.Sunrise, solar.Sunrise)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
}

func TestEventsInRangeUnknownKind(t *testing.T) {
	w := solar.DayWindow(utc(t, "2025-03-20T00:00:00Z"), time.UTC)
	_, err := solar.EventsInRange(w, greenwich, solar.Sunrise, solar.EventKind(42))
	assert.ErrorIs(t, err, solar.ErrUnknownEventKind)
}

func TestEnumerateStalls(t *testing.T) {
	start := utc(t, "2025-01-01T00:00:00Z")
	w := solar.Window{Start: start, End: start.Add(48 * time.Hour)}

	found, err := solar.Enumerate(w, func(solar.Window) solar.Instant {
		return solar.At(start)
	})
	assert.ErrorIs(t, err, solar.ErrCursorStalled)
	assert.Equal(t, []time.Time{start}, found)
}

func TestEnumerateEmpty(t *testing.T) {
	start := utc(t, "2025-01-01T00:00:00Z")
	w := solar.Window{Start: start, End: start.Add(72 * time.Hour)}

	var cursors []time.Time
	resolve := func(sub solar.Window) solar.Instant {
		cursors = append(cursors, sub.Start)
		assert.Equal(t, w.End, sub.End)
		return solar.Instant{}
	}

	found, err := solar.Enumerate(w, resolve)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, []time.Time{start}, cursors)

	cursors = nil
	found, err = solar.EnumerateAcrossGaps(w, resolve)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, []time.Time{start, start.Add(24 * time.Hour), start.Add(48 * time.Hour)}, cursors)
}

func TestEnumerateStopsAtGap(t *testing.T) {
	start := utc(t, "2025-01-01T00:00:00Z")
	w := solar.Window{Start: start, End: start.Add(72 * time.Hour)}
	late := start.Add(30 * time.Hour)

	// Nothing during the first day, one occurrence on the second.
	resolve := func(sub solar.Window) solar.Instant {
		if sub.Start.Before(start.Add(24*time.Hour)) || sub.Start.After(late) {
			return solar.Instant{}
		}
		return solar.At(late)
	}

	found, err := solar.Enumerate(w, resolve)
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = solar.EnumerateAcrossGaps(w, resolve)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{late}, found)
}

func TestEnumerateEmptyWindow(t *testing.T) {
	start := utc(t, "2025-01-01T00:00:00Z")
	found, err := solar.Enumerate(solar.Window{Start: start, End: start}, func(solar.Window) solar.Instant {
		t.Fatal("resolver called for an empty window")
		return solar.Instant{}
	})
	require.NoError(t, err)
	assert.Empty(t, found)
}
