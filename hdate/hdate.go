// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hdate provides support for Hebrew calendar dates and for their
// conversion to and from Gregorian dates.
package hdate

import (
	"errors"
	"fmt"
	"time"
)

// HMonth represents a Hebrew month. Months are numbered from Nisan,
// following the Torah, even though the year number changes at Tishrei.
type HMonth int

const (
	Nisan HMonth = iota + 1
	Iyyar
	Sivan
	Tamuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Tevet
	Shvat
	AdarI
	AdarII
)

var monthNames = []string{
	"", "Nisan", "Iyyar", "Sivan", "Tamuz", "Av", "Elul", "Tishrei",
	"Cheshvan", "Kislev", "Tevet", "Sh'vat", "Adar I", "Adar II",
}

// String returns the transliterated name of the month.
func (m HMonth) String() string {
	if m < Nisan || m > AdarII {
		return fmt.Sprintf("HMonth(%d)", int(m))
	}
	return monthNames[m]
}

// ErrDateRange is returned for a date that does not exist in the
// Hebrew calendar.
var ErrDateRange = errors.New("date out of range")

// epoch is the Rata Die day number of the day before 1 Tishrei AM 1.
const epoch int64 = -1373428

// meanYear is the average length of a Hebrew year in days.
const meanYear = 365.24682220597794

// HDate represents a Hebrew date. HDate values are comparable.
type HDate struct {
	year  int
	month HMonth
	day   int
}

// New returns the HDate for the specified year, month and day. Adar II in a
// non-leap year is treated as Adar.
func New(year int, month HMonth, day int) (HDate, error) {
	if month == AdarII && !IsLeapYear(year) {
		month = AdarI
	}
	if year < 1 || month < Nisan || month > MonthsInYear(year) ||
		day < 1 || day > DaysInMonth(month, year) {
		return HDate{}, fmt.Errorf("%w: %d %v %d", ErrDateRange, day, month, year)
	}
	return HDate{year: year, month: month, day: day}, nil
}

// FromRD returns the HDate for the specified Rata Die day number.
func FromRD(rd int64) HDate {
	year := int(float64(rd-epoch) / meanYear)
	for newYear(year) <= rd {
		year++
	}
	year--
	month := Nisan
	if rd < toRD(year, Nisan, 1) {
		month = Tishrei
	}
	for rd > toRD(year, month, DaysInMonth(month, year)) {
		month++
	}
	day := 1 + int(rd-toRD(year, month, 1))
	return HDate{year: year, month: month, day: day}
}

// FromDate returns the HDate for the specified Gregorian date.
func FromDate(d Date) HDate {
	return FromRD(d.RD())
}

// FromGregorian returns the HDate for the specified Gregorian date.
func FromGregorian(year int, month time.Month, day int) HDate {
	return FromDate(NewDate(year, month, day))
}

// FromTime returns the HDate for the civil date of t in t's location.
// The Hebrew day change at sunset is not taken into account.
func FromTime(t time.Time) HDate {
	return FromDate(DateFromTime(t))
}

func (hd HDate) Year() int {
	return hd.year
}

func (hd HDate) Month() HMonth {
	return hd.month
}

func (hd HDate) Day() int {
	return hd.day
}

// IsZero returns true for the zero value of HDate.
func (hd HDate) IsZero() bool {
	return hd.year == 0
}

// RD returns the Rata Die day number for hd.
func (hd HDate) RD() int64 {
	return toRD(hd.year, hd.month, hd.day)
}

// Gregorian returns the Gregorian date that hd falls on.
func (hd HDate) Gregorian() Date {
	return DateFromRD(hd.RD())
}

// Weekday returns the day of the week that hd falls on.
func (hd HDate) Weekday() time.Weekday {
	return weekday(hd.RD())
}

// Add returns the date that is days after hd, days may be negative.
func (hd HDate) Add(days int) HDate {
	return FromRD(hd.RD() + int64(days))
}

// Next returns the following day.
func (hd HDate) Next() HDate {
	return hd.Add(1)
}

// Prev returns the previous day.
func (hd HDate) Prev() HDate {
	return hd.Add(-1)
}

// Before returns true if hd is earlier than o.
func (hd HDate) Before(o HDate) bool {
	return hd.RD() < o.RD()
}

// After returns true if hd is later than o.
func (hd HDate) After(o HDate) bool {
	return hd.RD() > o.RD()
}

// Equal returns true if hd and o are the same date.
func (hd HDate) Equal(o HDate) bool {
	return hd == o
}

// MonthName returns the name of hd's month, Adar I is named Adar in a
// non-leap year.
func (hd HDate) MonthName() string {
	if hd.month == AdarI && !IsLeapYear(hd.year) {
		return "Adar"
	}
	return hd.month.String()
}

// String returns hd in the form "15 Nisan 5784".
func (hd HDate) String() string {
	return fmt.Sprintf("%d %s %d", hd.day, hd.MonthName(), hd.year)
}

// IsLeapYear returns true if year has a thirteenth month.
func IsLeapYear(year int) bool {
	return (1+year*7)%19 < 7
}

// MonthsInYear returns the last month of year, ie. AdarI or AdarII.
func MonthsInYear(year int) HMonth {
	if IsLeapYear(year) {
		return AdarII
	}
	return AdarI
}

// DaysInYear returns the number of days in year.
func DaysInYear(year int) int {
	return int(elapsedDays(year+1) - elapsedDays(year))
}

// LongCheshvan returns true if Cheshvan has 30 days in year.
func LongCheshvan(year int) bool {
	return DaysInYear(year)%10 == 5
}

// ShortKislev returns true if Kislev has 29 days in year.
func ShortKislev(year int) bool {
	return DaysInYear(year)%10 == 3
}

// DaysInMonth returns the number of days in month for year.
func DaysInMonth(month HMonth, year int) int {
	switch month {
	case Iyyar, Tamuz, Elul, Tevet, AdarII:
		return 29
	case AdarI:
		if !IsLeapYear(year) {
			return 29
		}
	case Cheshvan:
		if !LongCheshvan(year) {
			return 29
		}
	case Kislev:
		if ShortKislev(year) {
			return 29
		}
	}
	return 30
}

func newYear(year int) int64 {
	return epoch + elapsedDays(year)
}

// elapsedDays returns the number of days from the epoch to Rosh Hashana
// of year, applying the molad and dechiyot postponements.
func elapsedDays(year int) int64 {
	prev := int64(year - 1)
	months := 235*(prev/19) + 12*(prev%19) + ((prev%19)*7+1)/19
	pElapsed := 204 + 793*(months%1080)
	hElapsed := 5 + 12*months + 793*(months/1080) + pElapsed/1080
	parts := pElapsed%1080 + 1080*(hElapsed%24)
	day := 1 + 29*months + hElapsed/24
	alt := day
	if parts >= 19440 ||
		(day%7 == 2 && parts >= 9924 && !IsLeapYear(year)) ||
		(day%7 == 1 && parts >= 16789 && IsLeapYear(year-1)) {
		alt++
	}
	if alt%7 == 0 || alt%7 == 3 || alt%7 == 5 {
		alt++
	}
	return alt
}

func toRD(year int, month HMonth, day int) int64 {
	days := int64(day)
	if month < Tishrei {
		for m := Tishrei; m <= MonthsInYear(year); m++ {
			days += int64(DaysInMonth(m, year))
		}
		for m := Nisan; m < month; m++ {
			days += int64(DaysInMonth(m, year))
		}
	} else {
		for m := Tishrei; m < month; m++ {
			days += int64(DaysInMonth(m, year))
		}
	}
	return epoch + elapsedDays(year) + days - 1
}
