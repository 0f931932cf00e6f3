// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package candles derives timed ritual events, ie. candle lighting,
// Havdalah, the start and end of fasts and Chanukah candle lighting,
// from calendar events and the times of sunset and nightfall.
package candles

import (
	"strings"
	"time"

	"cloudeng.io/hebcal/event"
	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/zmanim"
)

// TzeitThreeMediumStars is the solar depression at which three medium
// stars are visible, used for the end of a fast.
const TzeitThreeMediumStars = 7.083

// Engine derives timed events using a zmanim.Provider. An Engine has no
// mutable state and may be used concurrently.
type Engine struct {
	provider zmanim.Provider
}

// NewEngine returns an Engine that uses p, or zmanim.Solar if p is nil.
func NewEngine(p zmanim.Provider) *Engine {
	if p == nil {
		p = zmanim.Solar{}
	}
	return &Engine{provider: p}
}

func (e *Engine) zmanim(hd hdate.HDate, loc zmanim.Location) zmanim.Zmanim {
	return zmanim.New(e.provider, hd.Gregorian(), loc)
}

// instant returns the time for off, minutes are before sunset if
// beforeSunset is set and after it otherwise.
func instant(z zmanim.Zmanim, off Offset, beforeSunset bool) zmanim.Instant {
	if mins, ok := off.Minutes(); ok {
		if beforeSunset {
			mins = -mins
		}
		return z.SunsetOffset(mins)
	}
	deg, _ := off.Degrees()
	return z.Tzeit(deg)
}

// CandleEvent returns a candle lighting or Havdalah event for the
// candidate event, which may be nil, on hd as determined by Classify.
// The event links back to the candidate. It returns false if no event
// is to be made or if its time is undefined at loc.
func (e *Engine) CandleEvent(candidate event.Event, hd hdate.HDate, dow time.Weekday, loc zmanim.Location, opts Options) (Timed, bool) {
	caps, flags, ok := Classify(candidate, dow)
	if !ok {
		return nil, false
	}
	useHavdalah := caps.Has(RequiresHavdalahOffset)
	when, ok := instant(e.zmanim(hd, loc), opts.offset(useHavdalah), !useHavdalah).Time()
	if !ok {
		return nil, false
	}
	if caps.Has(RequiresHavdalahTitle) {
		return newHavdalahEvent(hd, flags, when, loc, opts.havdalahMins(), candidate), true
	}
	return newCandleLightingEvent(hd, flags, when, loc, candidate), true
}

// ShabbatCandleLighting returns the candle lighting event for a Friday
// that has no holiday event to link to.
func (e *Engine) ShabbatCandleLighting(hd hdate.HDate, loc zmanim.Location, opts Options) (Timed, bool) {
	when, ok := instant(e.zmanim(hd, loc), opts.offset(false), true).Time()
	if !ok {
		return nil, false
	}
	return newCandleLightingEvent(hd, event.LightCandles, when, loc, nil), true
}

// FastDay is a fast day event together with the times at which the
// fast begins and ends. Either may be nil when it is not observed on
// that day or is undefined at the location.
type FastDay struct {
	event.Event
	StartEvent *TimedEvent
	EndEvent   *TimedEvent
}

// Clone returns a copy whose start and end events link to the copy of
// the fast day event.
func (fd *FastDay) Clone() event.Event {
	c := &FastDay{Event: fd.Event.Clone()}
	if fd.StartEvent != nil {
		c.StartEvent = fd.StartEvent.copy()
		c.StartEvent.linked = c.Event
	}
	if fd.EndEvent != nil {
		c.EndEvent = fd.EndEvent.copy()
		c.EndEvent.linked = c.Event
	}
	return c
}

// FastStartEnd returns a FastDay for the fast day event ev. The
// FastDay wraps a clone of ev and ev itself is not modified. Yom Kippur
// is returned as is since it starts with candle lighting and ends with
// Havdalah.
//
// Erev Tish'a B'Av begins at sunset and Tish'a B'Av ends at nightfall.
// Other fasts begin at dawn and end at nightfall, except on a Friday and
// on the 14th of Nisan for which no end is returned.
func (e *Engine) FastStartEnd(ev event.Event, loc zmanim.Location) event.Event {
	desc := ev.Desc()
	if desc == "Yom Kippur" {
		return ev
	}
	clone := ev.Clone()
	hd := clone.Date()
	z := e.zmanim(hd, loc)
	fd := &FastDay{Event: clone}
	switch {
	case desc == "Erev Tish'a B'Av":
		fd.StartEvent = makeTimedEvent(hd, z.Sunset(), "Fast begins", clone, loc)
	case strings.HasPrefix(desc, "Tish'a B'Av"):
		fd.EndEvent = makeTimedEvent(hd, z.Tzeit(TzeitThreeMediumStars), "Fast ends", clone, loc)
	default:
		fd.StartEvent = makeTimedEvent(hd, z.AlotHaShachar(), "Fast begins", clone, loc)
		if hd.Weekday() != time.Friday && (hd.Day() != 14 || hd.Month() != hdate.Nisan) {
			fd.EndEvent = makeTimedEvent(hd, z.Tzeit(TzeitThreeMediumStars), "Fast ends", clone, loc)
		}
	}
	return fd
}

// WeekdayChanukahCandleLighting returns the Chanukah candle lighting
// event, at dusk, for a night of Chanukah that is not Friday or
// Saturday. It returns false if dusk is undefined at loc.
func (e *Engine) WeekdayChanukahCandleLighting(ev event.Event, hd hdate.HDate, loc zmanim.Location) (Timed, bool) {
	te := makeTimedEvent(hd, e.zmanim(hd, loc).Dusk(), ev.Desc(), ev, loc)
	if te == nil {
		return nil, false
	}
	return te, true
}

var defaultEngine = NewEngine(zmanim.Solar{})

// MakeCandleEvent calls CandleEvent using zmanim.Solar.
func MakeCandleEvent(candidate event.Event, hd hdate.HDate, dow time.Weekday, loc zmanim.Location, opts Options) (Timed, bool) {
	return defaultEngine.CandleEvent(candidate, hd, dow, loc, opts)
}

// MakeFastStartEnd calls FastStartEnd using zmanim.Solar.
func MakeFastStartEnd(ev event.Event, loc zmanim.Location) event.Event {
	return defaultEngine.FastStartEnd(ev, loc)
}

// MakeWeekdayChanukahCandleLighting calls WeekdayChanukahCandleLighting
// using zmanim.Solar.
func MakeWeekdayChanukahCandleLighting(ev event.Event, hd hdate.HDate, loc zmanim.Location) (Timed, bool) {
	return defaultEngine.WeekdayChanukahCandleLighting(ev, hd, loc)
}
