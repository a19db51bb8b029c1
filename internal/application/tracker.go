// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"log/slog"
	"time"
)

type State interface {
	check(now time.Time) error
	SetTracker(tracker *SessionTracker)
}

type SessionTracker struct {
	turnedOn  State
	turnedOff State

	currentState State
	clock        func() time.Time
	log          *slog.Logger
}

func NewSessionTracker(turnedOn State, turnedOff State) *SessionTracker {
	t := &SessionTracker{
		turnedOn:  turnedOn,
		turnedOff: turnedOff,
		clock:     time.Now,
		log:       slog.Default().With("component", "tracker"),
	}
	turnedOn.SetTracker(t)
	turnedOff.SetTracker(t)
	t.switchState(turnedOff)
	return t
}

// WithClock replaces the time source.
func (t *SessionTracker) WithClock(clock func() time.Time) *SessionTracker {
	t.clock = clock
	return t
}

func (t *SessionTracker) switchState(s State) {
	t.currentState = s
}

// Active reports whether a session is running.
func (t *SessionTracker) Active() bool {
	return t.currentState == t.turnedOn
}

func (t *SessionTracker) Check() {
	if err := t.currentState.check(t.clock()); err != nil {
		t.log.Error("check failed", "err", err)
	}
}

// Run checks once immediately and then every interval until ctx is done.
func (t *SessionTracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.Check()
	for {
		select {
		case <-ctx.Done():
			t.log.Info("stopped")
			return
		case <-ticker.C:
			t.Check()
		}
	}
}
