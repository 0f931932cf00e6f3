// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"strconv"

	"golang.org/x/text/language"
)

// Ordinal returns n as an ordinal number, eg. 22nd, for the
// specified locale.
func Ordinal(n int, locale string) string {
	s := strconv.Itoa(n)
	base, _ := language.Make(locale).Base()
	switch base.String() {
	case "und", "en":
		return s + englishSuffix(n)
	case "es":
		return s + "º"
	case "fr":
		if n == 1 {
			return s + "er"
		}
		return s + "e"
	case "he":
		return s
	}
	return s + "."
}

func englishSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

var (
	gemOnes     = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
	gemTens     = []string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	gemHundreds = []string{"", "ק", "ר", "ש", "ת", "תק", "תר", "תש", "תת", "תתק"}
)

const (
	geresh    = "׳"
	gershayim = "״"
)

// Gematriya returns n written in Hebrew numerals, eg. 15 is ט״ו and
// 5784 is ה׳תשפ״ד. Values less than 1 are returned as decimal digits.
func Gematriya(n int) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	var prefix string
	if th := n / 1000; th > 0 {
		prefix = gematriya(th) + geresh
		n %= 1000
		if n == 0 {
			return prefix
		}
	}
	letters := []rune(gematriya(n))
	if len(letters) == 1 {
		return prefix + string(letters) + geresh
	}
	last := len(letters) - 1
	return prefix + string(letters[:last]) + gershayim + string(letters[last])
}

func gematriya(n int) string {
	s := gemHundreds[(n%1000)/100]
	switch rem := n % 100; rem {
	case 15:
		s += "טו"
	case 16:
		s += "טז"
	default:
		s += gemTens[rem/10] + gemOnes[rem%10]
	}
	return s
}
