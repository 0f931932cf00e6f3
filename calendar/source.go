// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cloudeng.io/hebcal/event"
	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/omer"
)

// Source returns the events that occur on a Hebrew date. A Source must
// be safe for concurrent use.
type Source func(hd hdate.HDate) []event.Event

// Events returns a Source for a fixed set of events.
func Events(evs ...event.Event) Source {
	byDate := map[hdate.HDate][]event.Event{}
	for _, ev := range evs {
		byDate[ev.Date()] = append(byDate[ev.Date()], ev)
	}
	return func(hd hdate.HDate) []event.Event {
		return byDate[hd]
	}
}

// Omer returns a Source for the days of the Omer.
func Omer() Source {
	return func(hd hdate.HDate) []event.Event {
		ev, err := omer.ForDate(hd)
		if err != nil {
			return nil
		}
		return []event.Event{ev}
	}
}

// Combine returns a Source that returns the events of each of sources
// in turn.
func Combine(sources ...Source) Source {
	return func(hd hdate.HDate) []event.Event {
		var evs []event.Event
		for _, src := range sources {
			if src != nil {
				evs = append(evs, src(hd)...)
			}
		}
		return evs
	}
}
