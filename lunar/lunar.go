// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package lunar

import (
	"fmt"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.53058867

// newMoonEpoch is the Julian day of the new moon of 2000-01-06 18:14 UTC.
const newMoonEpoch = 2451550.26

// Quarter boundaries in days of lunar age.
const (
	firstQuarterAge = SynodicMonth / 4
	fullAge         = SynodicMonth / 2
	thirdQuarterAge = firstQuarterAge * 3
)

// Phase names a lunar phase. The four principal phases are instants; the
// other four are the spans between them.
type Phase int

const (
	New Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	Full
	WaningGibbous
	ThirdQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	New:            "new",
	WaxingCrescent: "waxingCrescent",
	FirstQuarter:   "firstQuarter",
	WaxingGibbous:  "waxingGibbous",
	Full:           "full",
	WaningGibbous:  "waningGibbous",
	ThirdQuarter:   "thirdQuarter",
	WaningCrescent: "waningCrescent",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Age returns the days elapsed since the last mean new moon, in
// [0, SynodicMonth).
func Age(t time.Time) float64 {
	age := math.Mod(julian.TimeToJD(t.UTC())-newMoonEpoch, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	return age
}

// PhaseFor classifies a lunar age into one of the four spans between the
// principal phases.
func PhaseFor(age float64) Phase {
	switch {
	case age < firstQuarterAge:
		return WaxingCrescent
	case age < fullAge:
		return WaxingGibbous
	case age < thirdQuarterAge:
		return WaningGibbous
	default:
		return WaningCrescent
	}
}
