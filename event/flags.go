// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package event

import "strings"

// Flags classifies an event. An event may carry several flags.
type Flags uint32

const (
	// Chag is a major holiday on which work is forbidden.
	Chag Flags = 1 << iota
	// LightCandles marks an event at whose start candles are lit.
	LightCandles
	// YomTovEnds marks the last day of a holiday, followed by Havdalah.
	YomTovEnds
	// ChulOnly marks an event observed only in the Diaspora.
	ChulOnly
	// ILOnly marks an event observed only in Israel.
	ILOnly
	// LightCandlesTzeis marks candle lighting after nightfall, eg. on
	// the second night of a holiday.
	LightCandlesTzeis
	// ChanukahCandles marks a night of Chanukah.
	ChanukahCandles
	RoshChodesh
	MinorFast
	SpecialShabbat
	ParshaHashavua
	DafYomi
	OmerCount
	ModernHoliday
	MajorFast
	ShabbatMevarchim
	Molad
	UserEvent
	HebrewDate
	MinorHoliday
	Erev
	CholHamoed
	MishnaYomi
)

var flagNames = []string{
	"Chag", "LightCandles", "YomTovEnds", "ChulOnly", "ILOnly",
	"LightCandlesTzeis", "ChanukahCandles", "RoshChodesh", "MinorFast",
	"SpecialShabbat", "ParshaHashavua", "DafYomi", "OmerCount",
	"ModernHoliday", "MajorFast", "ShabbatMevarchim", "Molad", "UserEvent",
	"HebrewDate", "MinorHoliday", "Erev", "CholHamoed", "MishnaYomi",
}

// Has returns true if all of the flags in mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Any returns true if any of the flags in mask are set.
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

// String returns the set flags separated by |.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var out strings.Builder
	for i, name := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte('|')
		}
		out.WriteString(name)
	}
	return out.String()
}
