// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zmanim provides the halachic times of day, such as sunset,
// dusk and nightfall, for a date and location. The astronomical
// calculations are delegated to a Provider.
package zmanim

import "cloudeng.io/hebcal/hdate"

// Zmanim provides the times of day for a single date and location.
type Zmanim struct {
	provider Provider
	date     hdate.Date
	lat      float64
	long     float64
}

// New returns a Zmanim for date at loc. Solar is used if p is nil.
func New(p Provider, date hdate.Date, loc Location) Zmanim {
	if p == nil {
		p = Solar{}
	}
	return Zmanim{provider: p, date: date, lat: loc.Latitude, long: loc.Longitude}
}

// Date returns the civil date that z was created for.
func (z Zmanim) Date() hdate.Date {
	return z.date
}

func (z Zmanim) Sunset() Instant {
	return z.provider.Sunset(z.date, z.lat, z.long)
}

// Dusk returns the end of civil twilight.
func (z Zmanim) Dusk() Instant {
	return z.provider.Dusk(z.date, z.lat, z.long)
}

// AlotHaShachar returns dawn.
func (z Zmanim) AlotHaShachar() Instant {
	return z.provider.AlotHaShachar(z.date, z.lat, z.long)
}

// SunsetOffset returns sunset offset by minutes, which are negative
// for times before sunset.
func (z Zmanim) SunsetOffset(minutes int) Instant {
	return z.provider.SunsetOffset(z.date, z.lat, z.long, minutes)
}

// Tzeit returns nightfall at the specified solar depression.
func (z Zmanim) Tzeit(degrees float64) Instant {
	return z.provider.Tzeit(z.date, z.lat, z.long, degrees)
}
