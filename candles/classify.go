// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package candles

import (
	"strings"
	"time"

	"cloudeng.io/hebcal/event"
)

// Capabilities describes how a candle lighting or Havdalah event is to be
// derived for a candidate event.
type Capabilities uint8

const (
	// RequiresHavdalahOffset selects the Havdalah offset rather than
	// the candle lighting offset.
	RequiresHavdalahOffset Capabilities = 1 << iota
	// RequiresHavdalahTitle selects a Havdalah event rather than a
	// candle lighting event.
	RequiresHavdalahTitle
)

// Has returns true if all of the capabilities in c are set.
func (c Capabilities) Has(o Capabilities) bool {
	return c&o == o
}

func (c Capabilities) String() string {
	var parts []string
	if c.Has(RequiresHavdalahOffset) {
		parts = append(parts, "RequiresHavdalahOffset")
	}
	if c.Has(RequiresHavdalahTitle) {
		parts = append(parts, "RequiresHavdalahTitle")
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// Classify determines whether a candle lighting or Havdalah event is to be
// made for the candidate event, which may be nil, on a day of the week. It
// returns the capabilities and flags of the event to be made and false if
// no event is to be made.
//
// With no candidate only Saturday yields an event: Havdalah flagged
// LightCandlesTzeis. On Friday the candidate always yields candle lighting
// at the candle lighting offset. Otherwise LightCandlesTzeis and
// ChanukahCandles select the Havdalah offset and YomTovEnds selects both
// the Havdalah offset and title; Saturday always uses the Havdalah offset.
func Classify(candidate event.Event, dow time.Weekday) (Capabilities, event.Flags, bool) {
	if candidate == nil {
		if dow != time.Saturday {
			return 0, 0, false
		}
		return RequiresHavdalahOffset | RequiresHavdalahTitle, event.LightCandlesTzeis, true
	}
	flags := candidate.Flags()
	var caps Capabilities
	if dow == time.Saturday {
		caps |= RequiresHavdalahOffset
	}
	if dow != time.Friday {
		switch {
		case flags.Any(event.LightCandlesTzeis | event.ChanukahCandles):
			caps |= RequiresHavdalahOffset
		case flags.Has(event.YomTovEnds):
			caps |= RequiresHavdalahOffset | RequiresHavdalahTitle
		}
	}
	return caps, flags, true
}
