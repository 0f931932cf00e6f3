// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package event provides the calendar event model shared by the
// holiday, candle lighting and other event generators.
package event

import (
	"maps"

	"cloudeng.io/hebcal/hdate"
	"cloudeng.io/hebcal/locale"
)

// Event represents a single calendar event.
type Event interface {
	Date() hdate.HDate
	// Desc returns the untranslated description of the event, which
	// is also its translation key.
	Desc() string
	Flags() Flags
	Attr(key string) (any, bool)
	// Render returns the full title of the event for the specified locale.
	Render(locale string) string
	// RenderBrief returns a shorter title, eg. without a time of day.
	RenderBrief(locale string) string
	Emoji() string
	// Clone returns a copy of the event that shares no mutable state
	// with the original.
	Clone() Event
}

// Holiday is the basic immutable Event.
type Holiday struct {
	date  hdate.HDate
	desc  string
	flags Flags
	emoji string
	attrs map[string]any
}

// Option represents an option to New.
type Option func(*Holiday)

// WithAttr sets an attribute on the event.
func WithAttr(key string, value any) Option {
	return func(h *Holiday) {
		if h.attrs == nil {
			h.attrs = map[string]any{}
		}
		h.attrs[key] = value
	}
}

// WithEmoji sets the emoji for the event.
func WithEmoji(emoji string) Option {
	return func(h *Holiday) {
		h.emoji = emoji
	}
}

// New returns a new Holiday.
func New(date hdate.HDate, desc string, flags Flags, opts ...Option) *Holiday {
	h := &Holiday{date: date, desc: desc, flags: flags}
	for _, fn := range opts {
		fn(h)
	}
	return h
}

func (h *Holiday) Date() hdate.HDate {
	return h.date
}

func (h *Holiday) Desc() string {
	return h.desc
}

func (h *Holiday) Flags() Flags {
	return h.flags
}

func (h *Holiday) Attr(key string) (any, bool) {
	v, ok := h.attrs[key]
	return v, ok
}

// Render returns the translated description.
func (h *Holiday) Render(loc string) string {
	return locale.Gettext(h.desc, loc)
}

// RenderBrief is the same as Render for a Holiday.
func (h *Holiday) RenderBrief(loc string) string {
	return h.Render(loc)
}

func (h *Holiday) Emoji() string {
	return h.emoji
}

// Clone implements Event.
func (h *Holiday) Clone() Event {
	return h.Copy()
}

// Copy returns a copy of h with its own attributes.
func (h *Holiday) Copy() *Holiday {
	c := *h
	c.attrs = maps.Clone(h.attrs)
	return &c
}

func (h *Holiday) String() string {
	return h.date.String() + " " + h.desc
}
