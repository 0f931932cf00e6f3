// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zmanimtestutil provides a deterministic zmanim.Provider
// for tests.
package zmanimtestutil

import (
	"fmt"
	"sync"
	"time"

	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/zmanim"
)

// Call records a single invocation of a Fixed provider method.
type Call struct {
	Method string
	Date   hdate.Date
	Arg    float64
}

func (c Call) String() string {
	if c.Arg != 0 {
		return fmt.Sprintf("%s(%v, %v)", c.Method, c.Date, c.Arg)
	}
	return fmt.Sprintf("%s(%v)", c.Method, c.Date)
}

// Fixed is a zmanim.Provider that returns the same times for every date
// and location. A zero time is returned as an undefined instant.
// Tzeit is approximated as four minutes after sunset per degree of
// depression.
type Fixed struct {
	SunsetAt time.Time
	DuskAt   time.Time
	DawnAt   time.Time

	mu    sync.Mutex
	calls []Call
}

// NewFixed returns a Fixed provider with the specified sunset, with dusk
// 25 minutes later and dawn 14 hours earlier.
func NewFixed(sunset time.Time) *Fixed {
	return &Fixed{
		SunsetAt: sunset,
		DuskAt:   sunset.Add(25 * time.Minute),
		DawnAt:   sunset.Add(-14 * time.Hour),
	}
}

func (f *Fixed) record(method string, date hdate.Date, arg float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Method: method, Date: date, Arg: arg})
}

// Calls returns the calls made so far.
func (f *Fixed) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Reset clears the recorded calls.
func (f *Fixed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func instant(t time.Time) zmanim.Instant {
	if t.IsZero() {
		return zmanim.Undefined()
	}
	return zmanim.Defined(t)
}

func (f *Fixed) Sunset(date hdate.Date, _, _ float64) zmanim.Instant {
	f.record("Sunset", date, 0)
	return instant(f.SunsetAt)
}

func (f *Fixed) Dusk(date hdate.Date, _, _ float64) zmanim.Instant {
	f.record("Dusk", date, 0)
	return instant(f.DuskAt)
}

func (f *Fixed) AlotHaShachar(date hdate.Date, _, _ float64) zmanim.Instant {
	f.record("AlotHaShachar", date, 0)
	return instant(f.DawnAt)
}

func (f *Fixed) SunsetOffset(date hdate.Date, _, _ float64, minutes int) zmanim.Instant {
	f.record("SunsetOffset", date, float64(minutes))
	return instant(f.SunsetAt).Add(time.Duration(minutes) * time.Minute)
}

func (f *Fixed) Tzeit(date hdate.Date, _, _ float64, degrees float64) zmanim.Instant {
	f.record("Tzeit", date, degrees)
	return instant(f.SunsetAt).Add(time.Duration(degrees * 4 * float64(time.Minute)))
}
