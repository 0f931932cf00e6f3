// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import "time"

// Instant is the result of an astronomical computation. It is undefined
// when the event does not occur for the date and location requested, eg.
// there is no sunset above the arctic circle in midsummer.
type Instant struct {
	t       time.Time
	defined bool
}

// Defined returns a defined Instant for t.
func Defined(t time.Time) Instant {
	return Instant{t: t, defined: true}
}

// Undefined returns an undefined Instant, as is the zero value.
func Undefined() Instant {
	return Instant{}
}

// Time returns the time of the instant and true if it is defined.
func (i Instant) Time() (time.Time, bool) {
	return i.t, i.defined
}

// IsDefined returns true if the instant is defined.
func (i Instant) IsDefined() bool {
	return i.defined
}

// Add returns the instant offset by d. An undefined instant stays undefined.
func (i Instant) Add(d time.Duration) Instant {
	if !i.defined {
		return i
	}
	return Defined(i.t.Add(d))
}

// Round returns the instant rounded to the nearest minute as per RoundTime.
func (i Instant) Round() Instant {
	if !i.defined {
		return i
	}
	return Defined(RoundTime(i.t))
}

func (i Instant) String() string {
	if !i.defined {
		return "undefined"
	}
	return i.t.Format(time.RFC3339)
}

// RoundTime rounds t to the nearest whole minute, with 30 seconds
// rounding up.
func RoundTime(t time.Time) time.Time {
	return t.Round(time.Minute)
}
