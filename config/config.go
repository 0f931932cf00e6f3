// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides a YAML configuration for generating candle
// lighting, Havdalah and fast times for a location.
//
// An example configuration is:
//
//	location:
//	  name: Jerusalem
//	  latitude: 31.76904
//	  longitude: 35.21633
//	  timezone: Asia/Jerusalem
//	  time_format: 24h
//	candle_lighting_mins: 40
//	havdalah_mins: 42
//	locale: he
//
// A missing or zero candle_lighting_mins or havdalah_mins selects
// nightfall at havdalah_deg degrees (8.5 by default) instead.
package config

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/hebcal/candles"
	"cloudeng.io/hebcal/locale"
	"cloudeng.io/hebcal/zmanim"
	"cloudeng.io/logging/ctxlog"
)

// ErrInvalid is returned by Validate for an invalid configuration.
var ErrInvalid = errors.New("invalid configuration")

// Location is the configuration of a location.
type Location struct {
	Name       string  `yaml:"name"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	Timezone   string  `yaml:"timezone"`
	TimeFormat string  `yaml:"time_format"`
}

// Config represents the YAML configuration.
type Config struct {
	Location           Location `yaml:"location"`
	CandleLightingMins int      `yaml:"candle_lighting_mins"`
	HavdalahMins       int      `yaml:"havdalah_mins"`
	HavdalahDeg        float64  `yaml:"havdalah_deg"`
	Locale             string   `yaml:"locale"`
	// Concurrency bounds the number of days that are generated
	// concurrently, zero means one per CPU.
	Concurrency int `yaml:"concurrency"`
}

// Parse parses the YAML configuration in spec. Unknown fields are
// reported as errors, as are invalid values.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if err := decodeStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseString is like Parse but for a string.
func ParseString(spec string) (Config, error) {
	return Parse([]byte(spec))
}

// ParseFile reads and parses the named configuration file from fsys.
func ParseFile(ctx context.Context, fsys fs.FS, name string) (Config, error) {
	if len(name) == 0 {
		return Config{}, fmt.Errorf("no config file specified")
	}
	spec, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(spec)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	ctxlog.Logger(ctx).Debug("config", "file", name, "location", cfg.Location.Name, "locale", cfg.Locale)
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate returns all of the problems with the configuration.
func (c Config) Validate() error {
	errs := &errors.M{}
	l := c.Location
	if l.Latitude < -90 || l.Latitude > 90 {
		errs.Append(invalid("latitude %v is not in the range -90 to 90", l.Latitude))
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		errs.Append(invalid("longitude %v is not in the range -180 to 180", l.Longitude))
	}
	if _, err := time.LoadLocation(l.Timezone); err != nil {
		errs.Append(invalid("timezone %q: %v", l.Timezone, err))
	}
	if _, err := zmanim.ParseTimeFormat(l.TimeFormat); err != nil {
		errs.Append(invalid("%v", err))
	}
	if c.CandleLightingMins < 0 {
		errs.Append(invalid("candle_lighting_mins %v must not be negative", c.CandleLightingMins))
	}
	if c.HavdalahMins < 0 {
		errs.Append(invalid("havdalah_mins %v must not be negative", c.HavdalahMins))
	}
	if c.HavdalahDeg < 0 || c.HavdalahDeg >= 90 {
		errs.Append(invalid("havdalah_deg %v is not in the range 0 to 90", c.HavdalahDeg))
	}
	if c.Concurrency < 0 {
		errs.Append(invalid("concurrency %v must not be negative", c.Concurrency))
	}
	if len(c.Locale) > 0 && !slices.Contains(locale.Locales(), c.Locale) {
		errs.Append(invalid("locale %q is not supported, use one of %v", c.Locale, locale.Locales()))
	}
	return errs.Err()
}

// ZmanimLocation returns the zmanim.Location for the configuration.
func (c Config) ZmanimLocation() (zmanim.Location, error) {
	tz, err := time.LoadLocation(c.Location.Timezone)
	if err != nil {
		return zmanim.Location{}, err
	}
	tf, err := zmanim.ParseTimeFormat(c.Location.TimeFormat)
	if err != nil {
		return zmanim.Location{}, err
	}
	return zmanim.Location{
		Name:         c.Location.Name,
		Latitude:     c.Location.Latitude,
		Longitude:    c.Location.Longitude,
		TimeLocation: tz,
		TimeFormat:   tf,
	}, nil
}

// Options returns the candles.Options for the configuration. Zero
// minutes are treated as unset so that nightfall is used instead.
func (c Config) Options() candles.Options {
	opts := candles.Options{HavdalahDeg: c.HavdalahDeg}
	if c.CandleLightingMins != 0 {
		opts.CandleLighting = candles.SunsetMinutes(c.CandleLightingMins)
	}
	if c.HavdalahMins != 0 {
		opts.Havdalah = candles.SunsetMinutes(c.HavdalahMins)
	}
	return opts
}
