// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/GetSky/TwilightBTA/internal/application"
	"github.com/GetSky/TwilightBTA/lunar"
	"github.com/GetSky/TwilightBTA/solar"
)

var startMessageTemplate = `🔭 *Observing session*
Nautical night from *%s* to *%s*.
Astronomical night: %s.
Next sunrise: %s.

🌙 Moon: %s, %d%% lit.
%s`

var skyMessageTemplate = `Sky: *%s*%s
Sun altitude: %.1f°
Moon: %s, %.1f°, %d%% lit, %s
Updated at %s`

var endMessageTemplate = `☀️ *Observing session ended*
Sunrise *%s*, sunset *%s*.
Daylight %s, solar noon %s.
Golden hour from %s.

*Moon phases*
%s`

const none = "n/a"

func formatNight(n application.Night, loc *time.Location) string {
	var extra strings.Builder
	for _, e := range n.MoonEvents {
		fmt.Fprintf(&extra, "%s %s\n", capitalize(humanize(e.Kind.String())), clock(e.Time, loc))
	}
	for _, e := range n.GalacticCenter {
		verb := "rises"
		if e.Kind == lunar.GalacticCenterSet {
			verb = "sets"
		}
		fmt.Fprintf(&extra, "Galactic center %s %s, azimuth %.0f°\n", verb, clock(e.Time, loc), e.Azimuth)
	}
	if len(n.Forecast) > 0 {
		extra.WriteString("\n*Forecast*\n")
		for _, f := range n.Forecast {
			fmt.Fprintf(&extra, "%s: %s, moon %d%% %s\n",
				f.Date.In(loc).Format("Mon 02 Jan"), interval(f.Nautical, loc), percent(f.Illumination), humanize(f.Phase.String()))
		}
	}

	return fmt.Sprintf(startMessageTemplate,
		clock(n.Nautical.Start, loc), clock(n.Nautical.End, loc),
		interval(n.Astronomical, loc),
		instant(n.NextSunrise, loc),
		humanize(n.Phase.String()), percent(n.Illumination),
		extra.String(),
	)
}

func formatSky(sky application.Sky, loc *time.Location) string {
	magic := ""
	if sky.Status.InMagicHour {
		magic = " (" + humanize(sky.Status.MagicHour.String()) + ")"
	}
	return fmt.Sprintf(skyMessageTemplate,
		humanize(sky.Status.Solar.String()), magic,
		sky.SunAltitude,
		sky.Status.Moon, sky.MoonAltitude, percent(sky.Status.MoonIllumination), humanize(sky.Status.MoonPhase.String()),
		clock(sky.Time, loc),
	)
}

func formatSummary(s application.DaySummary, loc *time.Location) string {
	daylight := none
	if s.Day.Daylight.Valid {
		h, m := s.Day.Daylight.HoursMinutes()
		daylight = fmt.Sprintf("%dh %dm", h, m)
	}

	var phases strings.Builder
	for _, p := range s.Phases {
		fmt.Fprintf(&phases, "%s: %s\n", humanize(p.Phase.String()), p.Time.In(loc).Format("Mon 02 Jan 15:04 MST"))
	}

	return fmt.Sprintf(endMessageTemplate,
		instant(s.Day.Dawn.Actual, loc), instant(s.Day.Dusk.Actual, loc),
		daylight, instant(s.Day.SolarNoon, loc),
		instant(solar.Instant{Time: s.Day.Dusk.GoldenHour.Start, Valid: s.Day.Dusk.GoldenHour.Valid}, loc),
		phases.String(),
	)
}

func clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04 MST")
}

func instant(i solar.Instant, loc *time.Location) string {
	if !i.Valid {
		return none
	}
	return clock(i.Time, loc)
}

func interval(iv solar.Interval, loc *time.Location) string {
	if !iv.Valid {
		return none
	}
	return clock(iv.Start, loc) + " to " + clock(iv.End, loc)
}

func percent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// humanize turns "waxingGibbous" into "waxing gibbous".
func humanize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
