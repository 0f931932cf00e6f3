// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package candles_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"cloudeng.io/hebcal/candles"
	"cloudeng.io/hebcal/event"
	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/zmanim"
	"cloudeng.io/hebcal/zmanim/zmanimtestutil"
)

var utc = zmanim.Location{Name: "UTC", TimeLocation: time.UTC}

func hebrew(t *testing.T, year int, month hdate.HMonth, day int) hdate.HDate {
	t.Helper()
	hd, err := hdate.New(year, month, day)
	if err != nil {
		t.Fatal(err)
	}
	return hd
}

func clock(hd hdate.HDate, h, m, s int) time.Time {
	d := hd.Gregorian()
	return time.Date(d.Year, d.TimeMonth(), d.Day, h, m, s, 0, time.UTC)
}

func callStrings(f *zmanimtestutil.Fixed) []string {
	var out []string
	for _, c := range f.Calls() {
		out = append(out, c.Method+fmt.Sprintf("(%v)", c.Arg))
	}
	return out
}

var standardOpts = candles.Options{
	CandleLighting: candles.SunsetMinutes(18),
	Havdalah:       candles.SunsetMinutes(42),
}

func TestFridayCandleLighting(t *testing.T) {
	hd := hdate.FromGregorian(2024, time.March, 1)
	if got, want := hd.Weekday(), time.Friday; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	fixed := zmanimtestutil.NewFixed(clock(hd, 19, 0, 0))
	eng := candles.NewEngine(fixed)
	candidate := event.New(hd, "Erev Purim", event.LightCandles|event.Erev)

	ev, ok := eng.CandleEvent(candidate, hd, time.Friday, utc, standardOpts)
	if !ok {
		t.Fatal("expected an event")
	}
	if _, ok := ev.(*candles.CandleLightingEvent); !ok {
		t.Fatalf("unexpected type %T", ev)
	}
	if got, want := ev.EventTime(), clock(hd, 18, 42, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Render(""), "Candle lighting: 6:42pm"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Render("he"), "הדלקת נרות: 6:42pm"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.RenderBrief("en"), "Candle lighting"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.LinkedEvent(), event.Event(candidate); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Flags(), event.LightCandles|event.Erev; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Date(), hd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Emoji(), "🕯️"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := callStrings(fixed), []string{"SunsetOffset(-18)"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	fixed.Reset()
	ev, ok = eng.ShabbatCandleLighting(hd, utc, standardOpts)
	if !ok {
		t.Fatal("expected an event")
	}
	if got, want := ev.Render(""), "Candle lighting: 6:42pm"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if ev.LinkedEvent() != nil {
		t.Errorf("unexpected linked event: %v", ev.LinkedEvent())
	}
	if got, want := ev.Flags(), event.LightCandles; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassify(t *testing.T) {
	const (
		offset = candles.RequiresHavdalahOffset
		title  = candles.RequiresHavdalahTitle
	)
	hd := hdate.FromGregorian(2024, time.March, 1)
	for i, tc := range []struct {
		flags event.Flags
		nilEv bool
		dow   time.Weekday
		caps  candles.Capabilities
		ok    bool
	}{
		{0, true, time.Saturday, offset | title, true},
		{0, true, time.Friday, 0, false},
		{0, true, time.Wednesday, 0, false},
		{event.LightCandles, false, time.Friday, 0, true},
		{event.LightCandles | event.YomTovEnds, false, time.Friday, 0, true},
		{event.ChanukahCandles, false, time.Friday, 0, true},
		{event.YomTovEnds | event.Chag, false, time.Saturday, offset | title, true},
		{event.YomTovEnds | event.Chag, false, time.Tuesday, offset | title, true},
		{event.LightCandlesTzeis | event.Chag, false, time.Sunday, offset, true},
		{event.ChanukahCandles, false, time.Wednesday, offset, true},
		{event.ChanukahCandles, false, time.Saturday, offset, true},
		{event.LightCandles, false, time.Saturday, offset, true},
		{event.LightCandles, false, time.Wednesday, 0, true},
		{event.YomTovEnds | event.LightCandlesTzeis, false, time.Monday, offset, true},
	} {
		var candidate event.Event
		if !tc.nilEv {
			candidate = event.New(hd, "Test", tc.flags)
		}
		caps, flags, ok := candles.Classify(candidate, tc.dow)
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := caps, tc.caps; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if !ok {
			continue
		}
		want := tc.flags
		if tc.nilEv {
			want = event.LightCandlesTzeis
		}
		if got := flags; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if got, want := (offset | title).String(), "RequiresHavdalahOffset|RequiresHavdalahTitle"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestDecisionProperties checks the candle lighting rule against every
// combination of the flags it depends on and every day of the week.
func TestDecisionProperties(t *testing.T) {
	hd := hdate.FromGregorian(2024, time.March, 1)
	fixed := zmanimtestutil.NewFixed(clock(hd, 19, 0, 0))
	eng := candles.NewEngine(fixed)
	relevant := []event.Flags{
		event.LightCandles, event.LightCandlesTzeis, event.ChanukahCandles,
		event.YomTovEnds, event.Chag,
	}
	for subset := 0; subset < 1<<len(relevant); subset++ {
		var mask event.Flags
		for i, f := range relevant {
			if subset&(1<<i) != 0 {
				mask |= f
			}
		}
		for dow := time.Sunday; dow <= time.Saturday; dow++ {
			fixed.Reset()
			candidate := event.New(hd, "Test", mask)
			ev, ok := eng.CandleEvent(candidate, hd, dow, utc, standardOpts)
			if !ok {
				t.Errorf("%v %v: expected an event", mask, dow)
				continue
			}
			if got, want := ev.Flags(), mask; got != want {
				t.Errorf("%v %v: got %v, want %v", mask, dow, got, want)
			}
			if got, want := ev.LinkedEvent(), event.Event(candidate); got != want {
				t.Errorf("%v %v: got %v, want %v", mask, dow, got, want)
			}
			calls := callStrings(fixed)
			_, isHavdalah := ev.(*candles.HavdalahEvent)
			switch {
			case dow == time.Friday:
				if _, ok := ev.(*candles.CandleLightingEvent); !ok {
					t.Errorf("%v %v: unexpected type %T", mask, dow, ev)
				}
				if got, want := calls, []string{"SunsetOffset(-18)"}; !reflect.DeepEqual(got, want) {
					t.Errorf("%v %v: got %v, want %v", mask, dow, got, want)
				}
				if got, want := ev.RenderBrief(""), "Candle lighting"; got != want {
					t.Errorf("%v %v: got %v, want %v", mask, dow, got, want)
				}
			case mask.Has(event.YomTovEnds) && !mask.Any(event.LightCandlesTzeis|event.ChanukahCandles):
				if !isHavdalah {
					t.Errorf("%v %v: unexpected type %T", mask, dow, ev)
				}
				if got, want := calls, []string{"SunsetOffset(42)"}; !reflect.DeepEqual(got, want) {
					t.Errorf("%v %v: got %v, want %v", mask, dow, got, want)
				}
			default:
				if isHavdalah {
					t.Errorf("%v %v: unexpected Havdalah event", mask, dow)
				}
				want := []string{"SunsetOffset(-18)"}
				if dow == time.Saturday || mask.Any(event.LightCandlesTzeis|event.ChanukahCandles) {
					want = []string{"SunsetOffset(42)"}
				}
				if got := calls; !reflect.DeepEqual(got, want) {
					t.Errorf("%v %v: got %v, want %v", mask, dow, got, want)
				}
			}
		}
	}
}

func TestNoCandidate(t *testing.T) {
	hd := hdate.FromGregorian(2024, time.March, 2)
	fixed := zmanimtestutil.NewFixed(clock(hd, 19, 0, 0))
	eng := candles.NewEngine(fixed)
	for dow := time.Sunday; dow <= time.Saturday; dow++ {
		fixed.Reset()
		ev, ok := eng.CandleEvent(nil, hd, dow, utc, standardOpts)
		if dow != time.Saturday {
			if ok || ev != nil {
				t.Errorf("%v: unexpected event: %v", dow, ev)
			}
			if n := len(fixed.Calls()); n != 0 {
				t.Errorf("%v: unexpected calls: %v", dow, fixed.Calls())
			}
			continue
		}
		he, ok := ev.(*candles.HavdalahEvent)
		if !ok {
			t.Fatalf("%v: unexpected type %T", dow, ev)
		}
		if got, want := he.Flags(), event.LightCandlesTzeis; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if he.LinkedEvent() != nil {
			t.Errorf("unexpected linked event")
		}
		if got, want := he.Render(""), "Havdalah (42 min): 7:42pm"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := he.RenderBrief(""), "Havdalah (42 min)"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := he.Render("he"), "הבדלה (42 דקות): 7:42pm"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := he.HavdalahMins(), 42; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := he.Emoji(), "✨"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestTzeitOffsets(t *testing.T) {
	wednesday := hdate.FromGregorian(2024, time.December, 25)
	if got, want := wednesday.Weekday(), time.Wednesday; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	fixed := zmanimtestutil.NewFixed(clock(wednesday, 19, 0, 0))
	eng := candles.NewEngine(fixed)
	chanukah := event.New(wednesday, "Chanukah: 2 Candles", event.ChanukahCandles)

	opts := candles.Options{CandleLighting: candles.SunsetMinutes(18), HavdalahDeg: 8.5}
	ev, ok := eng.CandleEvent(chanukah, wednesday, time.Wednesday, utc, opts)
	if !ok {
		t.Fatal("expected an event")
	}
	if got, want := callStrings(fixed), []string{"Tzeit(8.5)"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.EventTime(), clock(wednesday, 19, 34, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.RenderBrief(""), "Candle lighting"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	saturday := hdate.FromGregorian(2024, time.December, 28)
	for i, tc := range []struct {
		opts  candles.Options
		call  string
		title string
	}{
		{candles.Options{}, "Tzeit(8.5)", "Havdalah: 7:34pm"},
		{candles.Options{HavdalahDeg: 7.5}, "Tzeit(7.5)", "Havdalah: 7:30pm"},
		{candles.Options{Havdalah: candles.TzeitDegrees(6), HavdalahDeg: 7.5}, "Tzeit(6)", "Havdalah: 7:24pm"},
		{candles.Options{Havdalah: candles.SunsetMinutes(50)}, "SunsetOffset(50)", "Havdalah (50 min): 7:50pm"},
		{candles.Options{Havdalah: candles.SunsetMinutes(0)}, "SunsetOffset(0)", "Havdalah: 7:00pm"},
	} {
		fixed.Reset()
		ev, ok := eng.CandleEvent(nil, saturday, time.Saturday, utc, tc.opts)
		if !ok {
			t.Errorf("%v: expected an event", i)
			continue
		}
		if got, want := callStrings(fixed), []string{tc.call}; !reflect.DeepEqual(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := ev.Render(""), tc.title; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	friday := hdate.FromGregorian(2024, time.December, 27)
	fixed.Reset()
	if _, ok := eng.ShabbatCandleLighting(friday, utc, candles.Options{HavdalahDeg: 8.5}); !ok {
		t.Fatal("expected an event")
	}
	if got, want := callStrings(fixed), []string{"Tzeit(8.5)"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOffset(t *testing.T) {
	var unset candles.Offset
	if unset.IsSet() {
		t.Errorf("zero value should be unset")
	}
	if m, ok := candles.SunsetMinutes(0).Minutes(); !ok || m != 0 {
		t.Errorf("got %v, %v", m, ok)
	}
	if !candles.SunsetMinutes(0).IsSet() {
		t.Errorf("zero minutes is sunset, not unset")
	}
	if _, ok := candles.SunsetMinutes(18).Degrees(); ok {
		t.Errorf("minutes are not degrees")
	}
	if d, ok := candles.TzeitDegrees(8.5).Degrees(); !ok || d != 8.5 {
		t.Errorf("got %v, %v", d, ok)
	}
	for i, tc := range []struct {
		off  candles.Offset
		want string
	}{
		{unset, "unset"},
		{candles.SunsetMinutes(18), "18 min"},
		{candles.TzeitDegrees(8.5), "tzeit 8.5°"},
	} {
		if got, want := tc.off.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestUndefinedInstants(t *testing.T) {
	hd := hdate.FromGregorian(2024, time.August, 12)
	fixed := &zmanimtestutil.Fixed{}
	eng := candles.NewEngine(fixed)
	for dow := time.Sunday; dow <= time.Saturday; dow++ {
		for _, candidate := range []event.Event{nil, event.New(hd, "Test", event.LightCandles)} {
			if ev, ok := eng.CandleEvent(candidate, hd, dow, utc, standardOpts); ok || ev != nil {
				t.Errorf("%v: unexpected event %v", dow, ev)
			}
			if ev, ok := eng.CandleEvent(candidate, hd, dow, utc, candles.Options{}); ok || ev != nil {
				t.Errorf("%v: unexpected event %v", dow, ev)
			}
		}
	}
	if ev, ok := eng.ShabbatCandleLighting(hd, utc, standardOpts); ok || ev != nil {
		t.Errorf("unexpected event %v", ev)
	}
	chanukah := event.New(hd, "Chanukah: 1 Candle", event.ChanukahCandles)
	if ev, ok := eng.WeekdayChanukahCandleLighting(chanukah, hd, utc); ok || ev != nil {
		t.Errorf("unexpected event %v", ev)
	}
	for _, desc := range []string{"Erev Tish'a B'Av", "Tish'a B'Av", "Tzom Tammuz"} {
		fd, ok := eng.FastStartEnd(event.New(hd, desc, event.MinorFast), utc).(*candles.FastDay)
		if !ok {
			t.Fatalf("%v: expected a FastDay", desc)
		}
		if fd.StartEvent != nil || fd.EndEvent != nil {
			t.Errorf("%v: unexpected start or end: %v %v", desc, fd.StartEvent, fd.EndEvent)
		}
	}
}

func TestFastStartEnd(t *testing.T) {
	newEngine := func(hd hdate.HDate) (*candles.Engine, *zmanimtestutil.Fixed) {
		fixed := &zmanimtestutil.Fixed{
			SunsetAt: clock(hd, 19, 0, 0),
			DuskAt:   clock(hd, 19, 25, 0),
			DawnAt:   clock(hd, 5, 0, 0),
		}
		return candles.NewEngine(fixed), fixed
	}

	yk := event.New(hebrew(t, 5785, hdate.Tishrei, 10), "Yom Kippur", event.Chag|event.MajorFast)
	eng, fixed := newEngine(yk.Date())
	got := eng.FastStartEnd(yk, utc)
	if got != event.Event(yk) {
		t.Errorf("Yom Kippur should be returned unchanged: %v", got)
	}
	if _, ok := got.(*candles.FastDay); ok {
		t.Errorf("Yom Kippur should not have a start or end")
	}
	if n := len(fixed.Calls()); n != 0 {
		t.Errorf("unexpected calls: %v", fixed.Calls())
	}

	for i, tc := range []struct {
		hd         hdate.HDate
		desc       string
		dow        time.Weekday
		start, end string
	}{
		{hebrew(t, 5784, hdate.Av, 8), "Erev Tish'a B'Av", time.Monday, "Fast begins: 7:00pm", ""},
		{hebrew(t, 5784, hdate.Av, 9), "Tish'a B'Av", time.Tuesday, "", "Fast ends: 7:28pm"},
		{hebrew(t, 5785, hdate.Av, 9), "Tish'a B'Av", time.Sunday, "", "Fast ends: 7:28pm"},
		{hebrew(t, 5782, hdate.Av, 10), "Tish'a B'Av (observed)", time.Sunday, "", "Fast ends: 7:28pm"},
		{hebrew(t, 5784, hdate.Tamuz, 17), "Tzom Tammuz", time.Tuesday, "Fast begins: 5:00am", "Fast ends: 7:28pm"},
		{hebrew(t, 5785, hdate.Tevet, 10), "Asara B'Tevet", time.Friday, "Fast begins: 5:00am", ""},
		{hebrew(t, 5784, hdate.Nisan, 14), "Ta'anit Bechorot", time.Monday, "Fast begins: 5:00am", ""},
	} {
		if got, want := tc.hd.Weekday(), tc.dow; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.hd, got, want)
		}
		eng, _ := newEngine(tc.hd)
		orig := event.New(tc.hd, tc.desc, event.MinorFast, event.WithAttr("fast", true))
		fd, ok := eng.FastStartEnd(orig, utc).(*candles.FastDay)
		if !ok {
			t.Fatalf("%v: expected a FastDay", i)
		}
		if fd.Event == event.Event(orig) {
			t.Errorf("%v: expected a clone", i)
		}
		if got, want := fd.Desc(), tc.desc; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if v, ok := fd.Attr("fast"); !ok || v != true {
			t.Errorf("%v: missing attribute", i)
		}
		for _, sub := range []struct {
			te   *candles.TimedEvent
			want string
		}{{fd.StartEvent, tc.start}, {fd.EndEvent, tc.end}} {
			if len(sub.want) == 0 {
				if sub.te != nil {
					t.Errorf("%v: unexpected event: %v", i, sub.te)
				}
				continue
			}
			if sub.te == nil {
				t.Errorf("%v: missing event: %v", i, sub.want)
				continue
			}
			if got, want := sub.te.Render(""), sub.want; got != want {
				t.Errorf("%v: got %v, want %v", i, got, want)
			}
			if got, want := sub.te.LinkedEvent(), fd.Event; got != want {
				t.Errorf("%v: got %v, want %v", i, got, want)
			}
			if got, want := sub.te.Date(), tc.hd; got != want {
				t.Errorf("%v: got %v, want %v", i, got, want)
			}
			if got, want := sub.te.Flags(), event.MinorFast; got != want {
				t.Errorf("%v: got %v, want %v", i, got, want)
			}
		}
	}
}

func TestFastDayClone(t *testing.T) {
	hd := hebrew(t, 5784, hdate.Tamuz, 17)
	eng := candles.NewEngine(zmanimtestutil.NewFixed(clock(hd, 19, 0, 0)))
	fd := eng.FastStartEnd(event.New(hd, "Tzom Tammuz", event.MinorFast), utc).(*candles.FastDay)
	c := fd.Clone().(*candles.FastDay)
	if c.Event == fd.Event || c.StartEvent == fd.StartEvent || c.EndEvent == fd.EndEvent {
		t.Fatalf("clone shares state with the original")
	}
	if c.StartEvent.LinkedEvent() != c.Event || c.EndEvent.LinkedEvent() != c.Event {
		t.Errorf("clone's start and end should link to the cloned event")
	}
	if got, want := c.StartEvent.Render(""), fd.StartEvent.Render(""); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeekdayChanukah(t *testing.T) {
	hd := hebrew(t, 5785, hdate.Kislev, 26)
	fixed := zmanimtestutil.NewFixed(clock(hd, 16, 40, 10))
	eng := candles.NewEngine(fixed)
	chanukah := event.New(hd, "Chanukah: 3 Candles", event.ChanukahCandles, event.WithEmoji("🕎"))
	ev, ok := eng.WeekdayChanukahCandleLighting(chanukah, hd, utc)
	if !ok {
		t.Fatal("expected an event")
	}
	if got, want := callStrings(fixed), []string{"Dusk(0)"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Render(""), "Chanukah: 3 Candles: 5:05pm"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Render("he"), "חנוכה: ג׳ נרות: 5:05pm"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.LinkedEvent(), event.Event(chanukah); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Flags(), event.ChanukahCandles; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Emoji(), "🕎"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	c := ev.Clone().(*candles.TimedEvent)
	if c == ev || c.LinkedEvent() != ev.LinkedEvent() || c.EventTimeStr() != ev.EventTimeStr() {
		t.Errorf("unexpected clone: %v", c)
	}
}

func TestRounding(t *testing.T) {
	hd := hdate.FromGregorian(2024, time.March, 2)
	for i, tc := range []struct {
		sunset time.Time
		want   string
	}{
		{clock(hd, 18, 32, 29).Add(900 * time.Millisecond), "Havdalah: 6:32pm"},
		{clock(hd, 18, 32, 30).Add(100 * time.Millisecond), "Havdalah: 6:33pm"},
	} {
		eng := candles.NewEngine(zmanimtestutil.NewFixed(tc.sunset))
		ev, ok := eng.CandleEvent(nil, hd, time.Saturday, utc, candles.Options{Havdalah: candles.SunsetMinutes(0)})
		if !ok {
			t.Fatalf("%v: expected an event", i)
		}
		if got, want := ev.Render(""), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if ev.EventTime().Second() != 0 || ev.EventTime().Nanosecond() != 0 {
			t.Errorf("%v: not rounded: %v", i, ev.EventTime())
		}
	}
}

func TestSolarProvider(t *testing.T) {
	jerusalem := zmanim.Location{
		Name:         "Jerusalem",
		Latitude:     31.76904,
		Longitude:    35.21633,
		TimeLocation: time.FixedZone("IST", 2*60*60),
		TimeFormat:   zmanim.Clock24,
	}
	friday := hdate.FromGregorian(2024, time.March, 1)
	candidate := event.New(friday, "Test", event.LightCandles)
	ev, ok := candles.MakeCandleEvent(candidate, friday, time.Friday, jerusalem,
		candles.Options{CandleLighting: candles.SunsetMinutes(40)})
	if !ok {
		t.Fatal("expected an event")
	}
	lower := time.Date(2024, 3, 1, 16, 40, 0, 0, jerusalem.TimeLocation)
	upper := time.Date(2024, 3, 1, 17, 15, 0, 0, jerusalem.TimeLocation)
	if et := ev.EventTime(); et.Before(lower) || et.After(upper) {
		t.Errorf("candle lighting %v is not between %v and %v", et, lower, upper)
	}
	if got, want := ev.EventTimeStr(), ev.EventTime().Format("15:04"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	longyearbyen := zmanim.Location{Name: "Longyearbyen", Latitude: 78.2232, Longitude: 15.6267}
	midsummer := hdate.FromGregorian(2024, time.June, 21)
	if ev, ok := candles.MakeCandleEvent(event.New(midsummer, "Test", event.LightCandles),
		midsummer, time.Friday, longyearbyen, standardOpts); ok {
		t.Errorf("unexpected event: %v", ev)
	}
	erev := hebrew(t, 5784, hdate.Av, 8)
	fd := candles.MakeFastStartEnd(event.New(erev, "Erev Tish'a B'Av", event.MajorFast), longyearbyen).(*candles.FastDay)
	if fd.StartEvent != nil {
		t.Errorf("unexpected start event: %v", fd.StartEvent)
	}
	if ev, ok := candles.MakeWeekdayChanukahCandleLighting(event.New(midsummer, "Test", event.ChanukahCandles),
		midsummer, longyearbyen); ok {
		t.Errorf("unexpected event: %v", ev)
	}
}
