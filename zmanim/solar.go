// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"time"

	"cloudeng.io/hebcal/hdate"
	"github.com/nathan-osman/go-sunrise"
)

const (
	// DuskDegrees is the solar depression of civil dusk.
	DuskDegrees = 6.0
	// AlotHaShacharDegrees is the solar depression of dawn.
	AlotHaShacharDegrees = 16.1
	// DefaultTzeitDegrees is the solar depression used for nightfall
	// when none is specified.
	DefaultTzeitDegrees = 8.5
)

// Provider computes the times of solar events on a civil date at the
// specified latitude and longitude. Events that do not occur yield an
// undefined Instant.
type Provider interface {
	Sunset(date hdate.Date, lat, long float64) Instant
	Dusk(date hdate.Date, lat, long float64) Instant
	AlotHaShachar(date hdate.Date, lat, long float64) Instant
	SunsetOffset(date hdate.Date, lat, long float64, minutes int) Instant
	Tzeit(date hdate.Date, lat, long float64, degrees float64) Instant
}

// Solar implements Provider using github.com/nathan-osman/go-sunrise.
// All returned times are in UTC.
type Solar struct{}

func fromSunrise(t time.Time) Instant {
	if t.IsZero() {
		return Undefined()
	}
	return Defined(t.UTC())
}

// SunRiseAndSet returns the times of sunrise and sunset.
func (Solar) SunRiseAndSet(date hdate.Date, lat, long float64) (rise, set Instant) {
	r, s := sunrise.SunriseSunset(lat, long, date.Year, date.TimeMonth(), date.Day)
	return fromSunrise(r), fromSunrise(s)
}

func (s Solar) Sunset(date hdate.Date, lat, long float64) Instant {
	_, set := s.SunRiseAndSet(date, lat, long)
	return set
}

// elevation returns the morning and evening times at which the sun is
// degrees below the horizon.
func elevation(date hdate.Date, lat, long, degrees float64) (morning, evening Instant) {
	m, e := sunrise.TimeOfElevation(lat, long, -degrees, date.Year, date.TimeMonth(), date.Day)
	return fromSunrise(m), fromSunrise(e)
}

func (Solar) Dusk(date hdate.Date, lat, long float64) Instant {
	_, evening := elevation(date, lat, long, DuskDegrees)
	return evening
}

func (Solar) AlotHaShachar(date hdate.Date, lat, long float64) Instant {
	morning, _ := elevation(date, lat, long, AlotHaShacharDegrees)
	return morning
}

// SunsetOffset returns sunset, truncated to the minute, offset by the
// specified number of minutes. Positive offsets are rounded up by a
// minute when sunset is 30 or more seconds past the minute so that times
// after sunset are never early.
func (s Solar) SunsetOffset(date hdate.Date, lat, long float64, minutes int) Instant {
	t, ok := s.Sunset(date, lat, long).Time()
	if !ok {
		return Undefined()
	}
	if minutes > 0 && t.Second() >= 30 {
		minutes++
	}
	return Defined(t.Truncate(time.Minute).Add(time.Duration(minutes) * time.Minute))
}

// Tzeit returns nightfall, the time at which the sun is the specified
// number of degrees below the horizon. DefaultTzeitDegrees is used if
// degrees is zero.
func (Solar) Tzeit(date hdate.Date, lat, long float64, degrees float64) Instant {
	if degrees == 0 {
		degrees = DefaultTzeitDegrees
	}
	_, evening := elevation(date, lat, long, degrees)
	return evening
}
