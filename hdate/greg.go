// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hdate

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// rdEpochJD is the Julian Day at the midnight that starts Rata Die day 0,
// ie. 31 December 1 BCE (proleptic Gregorian).
const rdEpochJD = 1721424.5

// Date represents a Gregorian civil date, ie. one without a time of day
// or a location. Dates are always in the proleptic Gregorian calendar,
// including those prior to the Gregorian reform of October 1582.
type Date datetime.CalendarDate

// NewDate returns a Date for the specified year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: datetime.Month(month), Day: day}
}

// DateFromCalendarDate returns the Date for cd.
func DateFromCalendarDate(cd datetime.CalendarDate) Date {
	return Date(cd)
}

// DateFromTime returns the civil date of t in t's location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// DateFromRD returns the Gregorian date for the specified Rata Die day
// number.
func DateFromRD(rd int64) Date {
	return DateFromTime(time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(rd-1)))
}

// RD returns the Rata Die day number of d, ie. the number of days since
// 31 December 1 BCE in the proleptic Gregorian calendar.
func (d Date) RD() int64 {
	jd := julian.CalendarGregorianToJD(d.Year, int(d.Month), float64(d.Day))
	return int64(math.Round(jd - rdEpochJD))
}

// CalendarDate returns d as a datetime.CalendarDate.
func (d Date) CalendarDate() datetime.CalendarDate {
	return datetime.CalendarDate(d)
}

// TimeMonth returns the month of d as a time.Month.
func (d Date) TimeMonth() time.Month {
	return time.Month(d.Month)
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return weekday(d.RD())
}

// weekday returns the day of the week of a Rata Die day number, day 1
// being a Monday.
func weekday(rd int64) time.Weekday {
	return time.Weekday(((rd % 7) + 7) % 7)
}

// Time returns midnight at the start of d in the specified location.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.TimeMonth(), d.Day, 0, 0, 0, 0, loc)
}

// String returns d in ISO 8601 format, eg. 2024-04-23.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
