// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package candles

import (
	"fmt"
	"strconv"

	"cloudeng.io/hebcal/zmanim"
)

type offsetKind uint8

const (
	offsetUnset offsetKind = iota
	offsetMinutes
	offsetDegrees
)

// Offset determines how a candle lighting or Havdalah time is derived:
// either as a number of minutes relative to sunset or as nightfall at a
// given solar depression. The zero value is unset.
type Offset struct {
	kind    offsetKind
	minutes int
	degrees float64
}

// SunsetMinutes returns an Offset of n minutes from sunset. The direction,
// before or after sunset, is determined by the rule that uses it.
// SunsetMinutes(0) is sunset itself; use the zero Offset, or
// TzeitDegrees, for nightfall.
func SunsetMinutes(n int) Offset {
	return Offset{kind: offsetMinutes, minutes: n}
}

// TzeitDegrees returns an Offset for nightfall at the specified degrees
// of solar depression.
func TzeitDegrees(d float64) Offset {
	return Offset{kind: offsetDegrees, degrees: d}
}

// IsSet returns false for the zero value.
func (o Offset) IsSet() bool {
	return o.kind != offsetUnset
}

// Minutes returns the number of minutes and true for a SunsetMinutes offset.
func (o Offset) Minutes() (int, bool) {
	return o.minutes, o.kind == offsetMinutes
}

// Degrees returns the solar depression and true for a TzeitDegrees offset.
func (o Offset) Degrees() (float64, bool) {
	return o.degrees, o.kind == offsetDegrees
}

func (o Offset) String() string {
	switch o.kind {
	case offsetMinutes:
		return strconv.Itoa(o.minutes) + " min"
	case offsetDegrees:
		return fmt.Sprintf("tzeit %v°", o.degrees)
	}
	return "unset"
}

// Options configures candle lighting and Havdalah times.
type Options struct {
	// CandleLighting is normally the number of minutes before sunset
	// at which candles are lit, eg. SunsetMinutes(18).
	CandleLighting Offset
	// Havdalah is either the number of minutes after sunset, eg.
	// SunsetMinutes(42), or nightfall, eg. TzeitDegrees(8.5).
	Havdalah Offset
	// HavdalahDeg is the solar depression used for either time when
	// the corresponding offset is unset. zmanim.DefaultTzeitDegrees is
	// used if it is zero.
	HavdalahDeg float64
}

// offset returns the Offset to use for the Havdalah or candle lighting
// rule, resolving an unset offset to nightfall.
func (o Options) offset(havdalah bool) Offset {
	off := o.CandleLighting
	if havdalah {
		off = o.Havdalah
	}
	if off.IsSet() {
		return off
	}
	if o.HavdalahDeg != 0 {
		return TzeitDegrees(o.HavdalahDeg)
	}
	return TzeitDegrees(zmanim.DefaultTzeitDegrees)
}

// havdalahMins returns the number of minutes after sunset used for
// Havdalah, or zero if nightfall is used instead.
func (o Options) havdalahMins() int {
	m, _ := o.Havdalah.Minutes()
	return m
}
