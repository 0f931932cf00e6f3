// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package omer provides events for the 49 days of counting the Omer
// from the second night of Pesach to Shavuot.
package omer

import (
	"errors"
	"fmt"
	"strconv"

	"cloudeng.io/hebcal/event"
	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/locale"
)

// Days is the number of days in the Omer.
const Days = 49

// ErrOutOfRange is returned for a day that is not part of the Omer.
var ErrOutOfRange = errors.New("not a day of the Omer")

// DayOf returns the day of the Omer, 1 through 49, for hd.
func DayOf(hd hdate.HDate) (int, error) {
	start, err := hdate.New(hd.Year(), hdate.Nisan, 16)
	if err != nil {
		return 0, err
	}
	day := int(hd.RD()-start.RD()) + 1
	if day < 1 || day > Days {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, hd)
	}
	return day, nil
}

// Event represents one day of counting the Omer.
type Event struct {
	*event.Holiday
	day int
}

// New returns the Event for the specified day of the Omer which must
// be in the range 1 to 49.
func New(hd hdate.HDate, day int) (*Event, error) {
	if day < 1 || day > Days {
		return nil, fmt.Errorf("%w: day %d on %v", ErrOutOfRange, day, hd)
	}
	return &Event{
		Holiday: event.New(hd, "Omer "+strconv.Itoa(day), event.OmerCount,
			event.WithAttr("omer", day)),
		day: day,
	}, nil
}

// ForDate returns the Event for hd or an error if hd is not in the Omer.
func ForDate(hd hdate.HDate) (*Event, error) {
	day, err := DayOf(hd)
	if err != nil {
		return nil, err
	}
	return New(hd, day)
}

// Day returns the day of the Omer.
func (oe *Event) Day() int {
	return oe.day
}

// Weeks returns the number of complete weeks and remaining days counted.
func (oe *Event) Weeks() (weeks, days int) {
	return oe.day / 7, oe.day % 7
}

// Render returns eg. "22nd day of the Omer", the number is written in
// Hebrew numerals for the he locale.
func (oe *Event) Render(loc string) string {
	var nth string
	if loc == "he" {
		nth = locale.Gematriya(oe.day)
	} else {
		nth = locale.Ordinal(oe.day, loc)
	}
	return nth + " " + locale.Gettext("day of the Omer", loc)
}

// RenderBrief returns eg. "Omer 22".
func (oe *Event) RenderBrief(loc string) string {
	return locale.Gettext("Omer", loc) + " " + strconv.Itoa(oe.day)
}

func (oe *Event) Clone() event.Event {
	return &Event{Holiday: oe.Copy(), day: oe.day}
}
