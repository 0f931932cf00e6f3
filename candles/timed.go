// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package candles

import (
	"fmt"
	"time"

	"cloudeng.io/hebcal/event"
	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/locale"
	"cloudeng.io/hebcal/zmanim"
)

// Timed is an event.Event that occurs at a specific time of day.
type Timed interface {
	event.Event
	// EventTime returns the time of the event, rounded to the minute,
	// in the time zone of its location.
	EventTime() time.Time
	// EventTimeStr returns EventTime formatted for its location.
	EventTimeStr() string
	Location() zmanim.Location
	// LinkedEvent returns the event that this event was derived from,
	// or nil.
	LinkedEvent() event.Event
}

// TimedEvent is the basic implementation of Timed.
type TimedEvent struct {
	*event.Holiday
	eventTime    time.Time
	eventTimeStr string
	location     zmanim.Location
	linked       event.Event
}

func newTimedEvent(hd hdate.HDate, desc string, flags event.Flags, when time.Time, loc zmanim.Location, linked event.Event) *TimedEvent {
	rounded := zmanim.RoundTime(when)
	return &TimedEvent{
		Holiday:      event.New(hd, desc, flags),
		eventTime:    loc.In(rounded),
		eventTimeStr: loc.Format(rounded),
		location:     loc,
		linked:       linked,
	}
}

// makeTimedEvent returns nil if the instant is undefined.
func makeTimedEvent(hd hdate.HDate, when zmanim.Instant, desc string, linked event.Event, loc zmanim.Location) *TimedEvent {
	t, ok := when.Time()
	if !ok {
		return nil
	}
	return newTimedEvent(hd, desc, linked.Flags(), t, loc, linked)
}

func (te *TimedEvent) EventTime() time.Time {
	return te.eventTime
}

func (te *TimedEvent) EventTimeStr() string {
	return te.eventTimeStr
}

func (te *TimedEvent) Location() zmanim.Location {
	return te.location
}

func (te *TimedEvent) LinkedEvent() event.Event {
	return te.linked
}

// Render returns the translated description followed by the time,
// eg. "Candle lighting: 6:42pm".
func (te *TimedEvent) Render(loc string) string {
	return te.RenderBrief(loc) + ": " + te.eventTimeStr
}

// RenderBrief returns the translated description without the time.
func (te *TimedEvent) RenderBrief(loc string) string {
	return locale.Gettext(te.Desc(), loc)
}

// Emoji returns the emoji of the linked event, if any.
func (te *TimedEvent) Emoji() string {
	if te.linked != nil {
		return te.linked.Emoji()
	}
	return ""
}

func (te *TimedEvent) Clone() event.Event {
	return te.copy()
}

func (te *TimedEvent) copy() *TimedEvent {
	c := *te
	c.Holiday = te.Holiday.Copy()
	return &c
}

func (te *TimedEvent) String() string {
	return fmt.Sprintf("%v %v: %v", te.Date(), te.Desc(), te.eventTimeStr)
}

// CandleLightingEvent represents candle lighting before Shabbat or a
// holiday.
type CandleLightingEvent struct {
	*TimedEvent
}

func newCandleLightingEvent(hd hdate.HDate, flags event.Flags, when time.Time, loc zmanim.Location, linked event.Event) *CandleLightingEvent {
	return &CandleLightingEvent{newTimedEvent(hd, "Candle lighting", flags, when, loc, linked)}
}

func (ce *CandleLightingEvent) Emoji() string {
	return "🕯️"
}

func (ce *CandleLightingEvent) Clone() event.Event {
	return &CandleLightingEvent{ce.copy()}
}

// HavdalahEvent represents Havdalah after Shabbat or a holiday.
type HavdalahEvent struct {
	*TimedEvent
	havdalahMins int
}

func newHavdalahEvent(hd hdate.HDate, flags event.Flags, when time.Time, loc zmanim.Location, havdalahMins int, linked event.Event) *HavdalahEvent {
	return &HavdalahEvent{
		TimedEvent:   newTimedEvent(hd, "Havdalah", flags, when, loc, linked),
		havdalahMins: havdalahMins,
	}
}

// HavdalahMins returns the number of minutes after sunset used for the
// event, or zero if it is at nightfall.
func (he *HavdalahEvent) HavdalahMins() int {
	return he.havdalahMins
}

func (he *HavdalahEvent) Render(loc string) string {
	return he.RenderBrief(loc) + ": " + he.eventTimeStr
}

// RenderBrief returns the translated title, followed by the number of
// minutes after sunset if set, eg. "Havdalah (42 min)".
func (he *HavdalahEvent) RenderBrief(loc string) string {
	s := locale.Gettext(he.Desc(), loc)
	if he.havdalahMins != 0 {
		s += fmt.Sprintf(" (%d %s)", he.havdalahMins, locale.Gettext("min", loc))
	}
	return s
}

func (he *HavdalahEvent) Emoji() string {
	return "✨"
}

func (he *HavdalahEvent) Clone() event.Event {
	return &HavdalahEvent{TimedEvent: he.copy(), havdalahMins: he.havdalahMins}
}
