// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat determines how times are displayed for a Location.
type TimeFormat int

const (
	// Clock12 displays times as 6:42pm.
	Clock12 TimeFormat = iota
	// Clock24 displays times as 18:42.
	Clock24
)

// ParseTimeFormat parses "12h" or "24h".
func ParseTimeFormat(val string) (TimeFormat, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "", "12h", "12":
		return Clock12, nil
	case "24h", "24":
		return Clock24, nil
	}
	return Clock12, fmt.Errorf("invalid time format: %q", val)
}

func (f TimeFormat) String() string {
	if f == Clock24 {
		return "24h"
	}
	return "12h"
}

// Location represents a place on the earth and the conventions used for
// displaying times there.
type Location struct {
	Name         string
	Latitude     float64
	Longitude    float64
	TimeLocation *time.Location
	TimeFormat   TimeFormat
}

// In returns t in the location's time zone, UTC if none is set.
func (l Location) In(t time.Time) time.Time {
	if l.TimeLocation == nil {
		return t.UTC()
	}
	return t.In(l.TimeLocation)
}

// Format returns t as a clock time in the location's time zone and
// time format.
func (l Location) Format(t time.Time) string {
	t = l.In(t)
	if l.TimeFormat == Clock24 {
		return t.Format("15:04")
	}
	return t.Format("3:04pm")
}

func (l Location) String() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("%.4f,%.4f", l.Latitude, l.Longitude)
}
