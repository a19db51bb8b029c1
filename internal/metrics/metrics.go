// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

// Package metrics exposes the tracker's Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "twilight",
		Subsystem: "session",
		Name:      "started_total",
		Help:      "Observing sessions started",
	})

	SessionActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "twilight",
		Subsystem: "session",
		Name:      "active",
		Help:      "1 while an observing session is running",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "twilight",
		Subsystem: "notify",
		Name:      "sent_total",
		Help:      "Notifications delivered, by kind",
	}, []string{"kind"})

	NotificationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "twilight",
		Subsystem: "notify",
		Name:      "errors_total",
		Help:      "Notifications that failed, by kind",
	}, []string{"kind"})

	SunAltitude = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "twilight",
		Subsystem: "sky",
		Name:      "sun_altitude_degrees",
		Help:      "Altitude of the Sun at the last check",
	})

	MoonIllumination = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "twilight",
		Subsystem: "sky",
		Name:      "moon_illumination_ratio",
		Help:      "Illuminated fraction of the Moon at the last check",
	})
)

// Notified records the outcome of one notification.
func Notified(kind string, err error) {
	if err != nil {
		NotificationErrors.WithLabelValues(kind).Inc()
		return
	}
	NotificationsSent.WithLabelValues(kind).Inc()
}

// Serve exposes /metrics on addr until ctx is done. An empty addr disables it.
func Serve(ctx context.Context, addr string) error {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	slog.Info("metrics listening", "component", "metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
