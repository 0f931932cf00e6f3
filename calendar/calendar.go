// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar generates the events for a range of Hebrew dates,
// adding the candle lighting, Havdalah, fast and Chanukah times
// derived by the candles package.
package calendar

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"cloudeng.io/hebcal/candles"
	"cloudeng.io/hebcal/event"
	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/zmanim"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// candleFlags are the flags of the events that candle lighting or
// Havdalah may be derived from.
const candleFlags = event.LightCandles | event.LightCandlesTzeis |
	event.ChanukahCandles | event.YomTovEnds

// Generator generates events for a location.
type Generator struct {
	// Engine is used to derive timed events, a default Engine using
	// zmanim.Solar is used if nil.
	Engine   *candles.Engine
	Location zmanim.Location
	Options  candles.Options
	Source   Source
	// Concurrency bounds the number of days generated concurrently,
	// zero means runtime.GOMAXPROCS(0).
	Concurrency int
}

func (g *Generator) engine() *candles.Engine {
	if g.Engine == nil {
		return candles.NewEngine(nil)
	}
	return g.Engine
}

// Generate returns the events for every day from from to to inclusive,
// in date order.
func (g *Generator) Generate(ctx context.Context, from, to hdate.HDate) ([]event.Event, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: %v is before %v", to, from)
	}
	days := int(to.RD()-from.RD()) + 1
	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	engine := g.engine()
	results := make([][]event.Event, days)
	grp, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, concurrency)
	start := time.Now()

issue:
	for i := range days {
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			break issue
		}
		grp.Go(func() error {
			defer func() { <-sem }()
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = g.day(gctx, engine, from.Add(i))
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []event.Event
	for _, evs := range results {
		out = append(out, evs...)
	}
	ctxlog.Logger(ctx).Debug("generated", "location", g.Location.String(),
		"from", from.String(), "to", to.String(), "events", len(out),
		"duration", time.Since(start))
	return out, nil
}

// Day returns the events for a single day.
func (g *Generator) Day(ctx context.Context, hd hdate.HDate) []event.Event {
	return g.day(ctx, g.engine(), hd)
}

func (g *Generator) day(ctx context.Context, engine *candles.Engine, hd hdate.HDate) []event.Event {
	var src []event.Event
	if g.Source != nil {
		src = g.Source(hd)
	}
	logger := ctxlog.Logger(ctx)
	dow := hd.Weekday()
	var out []event.Event
	var candidate event.Event
	for _, ev := range src {
		flags := ev.Flags()
		if candidate == nil && flags.Any(candleFlags) {
			candidate = ev
		}
		switch {
		case flags.Any(event.MinorFast | event.MajorFast):
			out = append(out, g.fast(ctx, engine, ev)...)
		case flags.Has(event.ChanukahCandles) && dow != time.Friday && dow != time.Saturday:
			if candidate == ev {
				candidate = nil
			}
			te, ok := engine.WeekdayChanukahCandleLighting(ev, hd, g.Location)
			if !ok {
				logger.Debug("chanukah candle lighting undefined", "date", hd.String(), "location", g.Location.String())
				out = append(out, ev)
				continue
			}
			out = append(out, te)
		default:
			out = append(out, ev)
		}
	}
	if te, ok := g.candles(ctx, engine, candidate, hd, dow); ok {
		out = append(out, te)
	}
	return out
}

func (g *Generator) fast(ctx context.Context, engine *candles.Engine, ev event.Event) []event.Event {
	fd, ok := engine.FastStartEnd(ev, g.Location).(*candles.FastDay)
	if !ok {
		return []event.Event{ev}
	}
	var out []event.Event
	if fd.StartEvent != nil {
		out = append(out, fd.StartEvent)
	}
	out = append(out, fd)
	if fd.EndEvent != nil {
		out = append(out, fd.EndEvent)
	}
	if fd.StartEvent == nil && fd.EndEvent == nil {
		ctxlog.Logger(ctx).Debug("fast times omitted", "event", ev.Desc(), "date", ev.Date().String(), "location", g.Location.String())
	}
	return out
}

func (g *Generator) candles(ctx context.Context, engine *candles.Engine, candidate event.Event, hd hdate.HDate, dow time.Weekday) (candles.Timed, bool) {
	var te candles.Timed
	var ok bool
	switch {
	case candidate != nil, dow == time.Saturday:
		te, ok = engine.CandleEvent(candidate, hd, dow, g.Location, g.Options)
	case dow == time.Friday:
		te, ok = engine.ShabbatCandleLighting(hd, g.Location, g.Options)
	default:
		return nil, false
	}
	if !ok {
		desc := "Shabbat"
		if candidate != nil {
			desc = candidate.Desc()
		}
		ctxlog.Logger(ctx).Debug("candle lighting or havdalah undefined", "event", desc, "date", hd.String(), "location", g.Location.String())
	}
	return te, ok
}
