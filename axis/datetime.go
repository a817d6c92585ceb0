// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"time"

	"github.com/aclements/go-axis/ticks"
	"github.com/lestrrat-go/strftime"
)

// ToDouble converts t to a date/time axis value: days since
// 1900-01-01 UTC.
func ToDouble(t time.Time) float64 { return ticks.TimeToDays(t) }

// ToDateTime converts a date/time axis value back to a time in UTC,
// rounded to the millisecond.
func ToDateTime(v float64) time.Time { return ticks.DaysToTime(v) }

// DateTime is the Kind of a calendar axis. Values are days since
// 1900-01-01 UTC, as returned by ToDouble.
type DateTime struct {
	// IntervalType fixes the unit of the major step. For Months and
	// Years the step counts months or years. Auto picks the unit
	// from the range.
	IntervalType ticks.IntervalType

	// MinorIntervalType fixes the unit of the minor step. Auto
	// derives it from the major unit.
	MinorIntervalType ticks.IntervalType

	// Location is the time zone ticks are aligned to and labels are
	// printed in. Nil means UTC. Day, week, month and year ticks
	// fall on local midnights; steps shorter than a day stay on a
	// UTC-aligned grid.
	Location *time.Location

	actual, actualMinor ticks.IntervalType
}

// NewDateTime returns a date/time axis.
func NewDateTime(pos Position) *Axis {
	return New(pos, &DateTime{})
}

func (k *DateTime) PreTransform(x float64) float64         { return x }
func (k *DateTime) PostInverseTransform(x float64) float64 { return x }

// ActualIntervalType returns the major unit chosen by the last
// UpdateIntervals.
func (k *DateTime) ActualIntervalType() ticks.IntervalType { return k.actual }

func (k *DateTime) MajorInterval(a *Axis, availableSize float64) float64 {
	iv, typ, err := ticks.DateInterval(availableSize, a.IntervalLength, a.actualMax-a.actualMin, k.IntervalType)
	k.actual = typ
	if k.actual == ticks.Auto {
		k.actual = ticks.Days
	}
	k.actualMinor = k.MinorIntervalType
	if k.actualMinor == ticks.Auto {
		k.actualMinor = ticks.MinorIntervalType(k.actual)
	}
	if err != nil {
		a.logger().WithError(err).Debug("no date interval")
		return math.NaN()
	}
	return iv
}

// MinorInterval converts the major step into the minor unit: a Years
// step is subdivided in months and a Months step in days.
func (k *DateTime) MinorInterval(a *Axis, major float64) float64 {
	switch k.actual {
	case ticks.Years:
		return math.Max(1, math.Ceil(ticks.MinorInterval(major*12)))
	case ticks.Months:
		return math.Ceil(ticks.MinorInterval(major * ticks.Month))
	}
	return ticks.MinorInterval(major)
}

func (k *DateTime) TickValues(a *Axis) (major, minor []float64, err error) {
	major, err = ticks.Calendar(a.actualMin, a.actualMax, a.majorStep, k.actual, k.Location)
	if err != nil {
		return nil, nil, err
	}
	minor, err = ticks.Calendar(a.actualMin, a.actualMax, a.minorStep, k.actualMinor, k.Location)
	if err != nil {
		return nil, nil, err
	}
	return major, withoutMajor(minor, major, 1e-6*ticks.Second), nil
}

// FormatValue formats x with the strftime pattern StringFormat, or a
// pattern chosen by the major unit.
func (k *DateTime) FormatValue(a *Axis, x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	loc := k.Location
	if loc == nil {
		loc = time.UTC
	}
	p := a.StringFormat
	if p == "" {
		p = defaultDatePattern(k.actual)
	}
	s, err := strftime.Format(p, ToDateTime(x).In(loc), strftime.WithMilliseconds('L'))
	if err != nil {
		a.logger().WithError(err).WithField("pattern", p).Debug("bad date format")
		return ""
	}
	return s
}

func defaultDatePattern(t ticks.IntervalType) string {
	switch t {
	case ticks.Years:
		return "%Y"
	case ticks.Hours, ticks.Minutes:
		return "%H:%M"
	case ticks.Seconds:
		return "%H:%M:%S"
	case ticks.Milliseconds:
		return "%H:%M:%S.%L"
	}
	return "%Y-%m-%d"
}
