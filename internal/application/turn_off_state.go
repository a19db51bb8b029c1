// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/GetSky/TwilightBTA/internal/metrics"
)

type TurnOffState struct {
	tracker     *SessionTracker
	scheduleSrv ScheduleService
	notifySrv   NotifyService
}

func NewTurnOffState(schedule ScheduleService, notify NotifyService) *TurnOffState {
	return &TurnOffState{
		scheduleSrv: schedule,
		notifySrv:   notify,
	}
}

func (t *TurnOffState) SetTracker(tracker *SessionTracker) {
	t.tracker = tracker
}

func (t *TurnOffState) check(now time.Time) error {
	isWorkTime, err := t.scheduleSrv.IsWorkNow(now)
	if err != nil {
		return fmt.Errorf("turnOff → %w", err)
	}
	if !isWorkTime {
		return nil
	}

	night, err := t.scheduleSrv.GetNight(now)
	if err != nil {
		return fmt.Errorf("turnOff → %w", err)
	}

	err = t.notifySrv.SendWorkStarted(night)
	metrics.Notified("started", err)
	if err != nil {
		return fmt.Errorf("turnOff → %w", err)
	}

	slog.Info("session started", "component", "tracker",
		"dusk", night.Nautical.Start, "dawn", night.Nautical.End)
	metrics.SessionsStarted.Inc()
	metrics.SessionActive.Set(1)

	t.tracker.switchState(t.tracker.turnedOn)
	return t.tracker.turnedOn.check(now)
}
