// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GetSky/TwilightBTA/config"
	"github.com/GetSky/TwilightBTA/internal/application"
	"github.com/GetSky/TwilightBTA/internal/infrastructure"
	"github.com/GetSky/TwilightBTA/internal/logger"
	"github.com/GetSky/TwilightBTA/internal/metrics"
	"github.com/GetSky/TwilightBTA/lunar"
	"github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("exit", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cnf, err := config.NewConf()
	if err != nil {
		return err
	}
	logger.Setup(cnf.LogLevel, cnf.LogFormat)

	point, loc, err := cnf.Location()
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cnf.BotToken)
	if err != nil {
		return err
	}
	notifySrv, err := infrastructure.NewTelegramNotifyService(bot, cnf.TelegramChat, loc)
	if err != nil {
		return err
	}
	scheduleSrv := infrastructure.NewScheduleService(point, loc, cnf.TimeReserveBeforeDusk, cnf.ForecastDays, lunar.SunCalc{})

	tracker := application.NewSessionTracker(
		application.NewTurnOnState(scheduleSrv, notifySrv),
		application.NewTurnOffState(scheduleSrv, notifySrv),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("tracker started", "component", "main",
		"point", point.String(), "timezone", loc.String(), "poll", cnf.PollInterval)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return metrics.Serve(ctx, cnf.MetricsAddr)
	})
	g.Go(func() error {
		tracker.Run(ctx, cnf.PollInterval)
		return nil
	})
	return g.Wait()
}
