// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package config

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
	"github.com/GetSky/TwilightBTA/solar"
	"github.com/caarlos0/env/v11"
)

type Conf struct {
	// BTA telescope by default.
	Latitude  float64 `env:"LATITUDE" envDefault:"43.649329"`
	Longitude float64 `env:"LONGITUDE" envDefault:"41.426829"`
	Timezone  string  `env:"TIMEZONE" envDefault:"Europe/Moscow"`

	BotToken     string `env:"BOT_TOKEN,required,notEmpty"`
	TelegramChat string `env:"TELEGRAM_CHAT_ID,required,notEmpty"`

	PollInterval          time.Duration `env:"POLL_INTERVAL" envDefault:"1m"`
	TimeReserveBeforeDusk time.Duration `env:"RESERVE_TIME_BEFORE_DUSK_IN_MINUTES" envDefault:"120m"`
	ForecastDays          int           `env:"FORECAST_DAYS" envDefault:"3"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`
}

func NewConf() (*Conf, error) {
	cnf := &Conf{}
	if err := env.Parse(cnf); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cnf, nil
}

// Location validates the observer's coordinates and timezone, reporting every
// problem at once.
func (c *Conf) Location() (solar.GeoPoint, *time.Location, error) {
	errs := errors.M{}
	p, err := solar.NewGeoPoint(c.Latitude, c.Longitude)
	errs.Append(err)
	loc, err := solar.LoadTimezone(c.Timezone)
	errs.Append(err)
	if c.ForecastDays < 1 {
		errs.Append(fmt.Errorf("%w: FORECAST_DAYS=%d", solar.ErrInvalidDays, c.ForecastDays))
	}
	if err := errs.Err(); err != nil {
		return solar.GeoPoint{}, nil, err
	}
	return p, loc, nil
}
