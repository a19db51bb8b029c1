// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import "time"

// Twilight groups the rise-side (dawn) or set-side (dusk) events of one day.
type Twilight struct {
	// Actual is the sunrise or sunset itself.
	Actual       Instant
	Civil        Instant
	Nautical     Instant
	Astronomical Instant

	BlueHour   Interval
	GoldenHour Interval
	// Wide runs from first light to the end of the golden hour at dawn, and
	// from the start of the golden hour to astronomical dusk.
	Wide Interval
}

// Day is everything known about the Sun for one local calendar day.
type Day struct {
	Window    Window
	Dawn      Twilight
	Dusk      Twilight
	Daylight  Interval
	SolarNoon Instant
	// Position is the Sun's position at the queried instant.
	Position Position
}

// ComputeDay resolves all events of the local day containing date.
func ComputeDay(date time.Time, p GeoPoint, loc *time.Location) Day {
	q := newDayQuery(p, DayWindow(date, loc))
	daylight := NewInterval(q.resolve(Sunrise), q.resolve(Sunset))
	return Day{
		Window:    q.window,
		Dawn:      composeDawn(q),
		Dusk:      composeDusk(q),
		Daylight:  daylight,
		SolarNoon: daylight.Midpoint(),
		Position:  PositionAt(date, p),
	}
}

func composeDawn(q *dayQuery) Twilight {
	civil := q.resolve(CivilDawn)
	astronomical := q.resolve(AstronomicalDawn)
	blueEnd := q.resolve(BlueHourDawnEnd)
	goldenEnd := q.resolve(GoldenHourDawnEnd)
	return Twilight{
		Actual:       q.resolve(Sunrise),
		Civil:        civil,
		Nautical:     q.resolve(NauticalDawn),
		Astronomical: astronomical,
		BlueHour:     NewInterval(civil, blueEnd),
		GoldenHour:   NewInterval(blueEnd, goldenEnd),
		Wide:         NewInterval(astronomical, goldenEnd),
	}
}

func composeDusk(q *dayQuery) Twilight {
	civil := q.resolve(CivilDusk)
	astronomical := q.resolve(AstronomicalDusk)
	blueStart := q.resolve(BlueHourDuskStart)
	goldenStart := q.resolve(GoldenHourDuskStart)
	return Twilight{
		Actual:       q.resolve(Sunset),
		Civil:        civil,
		Nautical:     q.resolve(NauticalDusk),
		Astronomical: astronomical,
		BlueHour:     NewInterval(blueStart, civil),
		GoldenHour:   NewInterval(goldenStart, blueStart),
		Wide:         NewInterval(goldenStart, astronomical),
	}
}
