// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/GetSky/TwilightBTA/internal/metrics"
	"github.com/GetSky/TwilightBTA/lunar"
)

type TurnOnState struct {
	tracker     *SessionTracker
	scheduleSrv ScheduleService
	notifySrv   NotifyService

	lastStatus lunar.Status
	reported   bool
}

func NewTurnOnState(schedule ScheduleService, notify NotifyService) *TurnOnState {
	return &TurnOnState{
		scheduleSrv: schedule,
		notifySrv:   notify,
	}
}

func (t *TurnOnState) SetTracker(tracker *SessionTracker) {
	t.tracker = tracker
}

func (t *TurnOnState) check(now time.Time) error {
	isWorkTime, err := t.scheduleSrv.IsWorkNow(now)
	if err != nil {
		return fmt.Errorf("turnOn → %w", err)
	}

	if !isWorkTime {
		return t.end(now)
	}
	return t.checkSky(now)
}

func (t *TurnOnState) end(now time.Time) error {
	summary, err := t.scheduleSrv.GetDaySummary(now)
	if err != nil {
		return fmt.Errorf("turnOn → %w", err)
	}

	err = t.notifySrv.SendWorkEnded(summary)
	metrics.Notified("ended", err)
	if err != nil {
		return fmt.Errorf("turnOn → %w", err)
	}

	slog.Info("session ended", "component", "tracker")
	metrics.SessionActive.Set(0)
	t.reported = false
	t.tracker.switchState(t.tracker.turnedOff)
	return nil
}

// checkSky posts an update whenever the twilight stage, magic hour or the
// Moon's state changes.
func (t *TurnOnState) checkSky(now time.Time) error {
	sky, err := t.scheduleSrv.GetSky(now)
	if err != nil {
		return fmt.Errorf("turnOn → %w", err)
	}
	metrics.SunAltitude.Set(sky.SunAltitude)
	metrics.MoonIllumination.Set(sky.Status.MoonIllumination)

	if t.reported && !changed(t.lastStatus, sky.Status) {
		return nil
	}

	err = t.notifySrv.SendUpdate(sky)
	metrics.Notified("update", err)
	if err != nil {
		return fmt.Errorf("turnOn → %w", err)
	}

	slog.Debug("sky changed", "component", "tracker",
		"sun", sky.Status.Solar, "moon", sky.Status.Moon)
	t.lastStatus = sky.Status
	t.reported = true
	return nil
}

func changed(a, b lunar.Status) bool {
	return a.Solar != b.Solar ||
		a.InMagicHour != b.InMagicHour ||
		(a.InMagicHour && a.MagicHour != b.MagicHour) ||
		a.Moon != b.Moon
}
