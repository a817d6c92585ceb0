// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Date and time values are measured in days since Origin. These are
// the sizes of the calendar units in days; Month and Year are
// averages.
const (
	Year        = 365.25
	Month       = 30.5
	Week        = 7.0
	Day         = 1.0
	Hour        = Day / 24
	Minute      = Hour / 60
	Second      = Minute / 60
	Millisecond = Second / 1000
)

// Origin is the instant represented by date value 0.
var Origin = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// TimeToDays returns the number of days between Origin and t.
func TimeToDays(t time.Time) float64 {
	t = t.UTC()
	secs := t.Unix() - Origin.Unix()
	return float64(secs)/86400 + float64(t.Nanosecond())/86400e9
}

// DaysToTime is the inverse of TimeToDays. The result is in UTC and is
// rounded to the nearest millisecond.
func DaysToTime(days float64) time.Time {
	whole := math.Floor(days)
	ms := math.Round((days - whole) * 86400e3)
	return Origin.AddDate(0, 0, int(whole)).Add(time.Duration(ms) * time.Millisecond)
}

// IntervalType is the calendar unit of a date/time tick interval.
type IntervalType int

const (
	Auto IntervalType = iota
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

var intervalTypeNames = []string{"auto", "milliseconds", "seconds", "minutes", "hours", "days", "weeks", "months", "years"}

func (t IntervalType) String() string {
	if t < 0 || int(t) >= len(intervalTypeNames) {
		return "IntervalType(?)"
	}
	return intervalTypeNames[t]
}

// ParseIntervalType parses the lower-case name of an IntervalType.
func ParseIntervalType(s string) (IntervalType, error) {
	for i, n := range intervalTypeNames {
		if strings.EqualFold(s, n) {
			return IntervalType(i), nil
		}
	}
	return Auto, errors.Errorf("unknown interval type %q", s)
}

// goodDateIntervals are the preferred date/time intervals, in days.
var goodDateIntervals = []float64{
	Millisecond, 2 * Millisecond, 10 * Millisecond, 100 * Millisecond,
	Second, 2 * Second, 5 * Second, 10 * Second, 30 * Second,
	Minute, 2 * Minute, 5 * Minute, 10 * Minute, 30 * Minute,
	Hour, 4 * Hour, 8 * Hour, 12 * Hour,
	Day, 2 * Day, 5 * Day, Week, 2 * Week,
	Month, 2 * Month, 3 * Month, 4 * Month, 6 * Month,
	Year,
}

// DateInterval chooses the major interval for a date/time range of
// rng days. typ fixes the interval unit; if it is Auto, the unit is
// derived from the chosen interval and returned as actual.
//
// For Months and Years the returned interval counts months or years
// rather than days, and is itself a nice 1-2-5 interval of that unit.
func DateInterval(availableSize, maxIntervalSize, rng float64, typ IntervalType) (interval float64, actual IntervalType, err error) {
	if availableSize <= 0 {
		return maxIntervalSize, typ, nil
	}
	if maxIntervalSize == 0 || math.IsNaN(maxIntervalSize) {
		return 0, typ, errors.Wrapf(ErrZeroIntervalSize, "interval size %v", maxIntervalSize)
	}
	rng = math.Abs(rng)

	maxCount := math.Max(math.Floor(availableSize/maxIntervalSize), 2)
	interval = goodDateIntervals[0]
	for _, next := range goodDateIntervals[1:] {
		if rng/interval < maxCount {
			break
		}
		interval = next
	}

	actual = typ
	if typ == Auto {
		actual = Seconds
		if interval >= Minute {
			actual = Minutes
		}
		if interval >= Hour {
			actual = Hours
		}
		if interval >= Day {
			actual = Days
		}
		if interval >= 30 {
			actual = Months
		}
		if rng >= Year {
			actual = Years
		}
	}

	switch actual {
	case Months:
		interval, err = ActualInterval(availableSize, maxIntervalSize, rng/Month)
	case Years:
		interval, err = ActualInterval(availableSize, maxIntervalSize, rng/Year)
	}
	return interval, actual, err
}

// MinorIntervalType returns the default minor unit for a major unit.
func MinorIntervalType(major IntervalType) IntervalType {
	switch major {
	case Years:
		return Months
	case Months, Weeks:
		return Days
	case Days:
		return Hours
	case Hours:
		return Minutes
	}
	return Days
}

// Calendar returns date/time tick values in [min, max], both measured
// in days since Origin.
//
// For Months and Years, step counts months or years: ticks are
// anchored to the first of the month (or January 1st) in loc and
// advance with calendar arithmetic, so they stay on month boundaries
// even though months differ in length. Weeks are anchored to Monday
// and step counts days. Whole-day Days and Weeks steps outside UTC
// are anchored to midnight in loc. For any other unit step counts days; steps of
// at least a month under Auto advance by whole months, and anything
// else is delegated to Linear, which aligns to UTC.
func Calendar(min, max, step float64, typ IntervalType, loc *time.Location) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, errors.Wrapf(ErrInvalidStep, "step %v", step)
	}
	if !(max > min) {
		return nil, errors.Wrapf(ErrInvalidRange, "range [%v, %v]", min, max)
	}
	if loc == nil {
		loc = time.UTC
	}

	var months, days int
	var width float64 // step width in days
	var localDays bool
	switch {
	case typ == Years:
		months = 12 * int(math.Ceil(step))
		width = Year * math.Ceil(step)
	case typ == Months:
		months = int(math.Ceil(step))
		width = Month * math.Ceil(step)
	case typ == Auto && step >= Month:
		months = int(math.Round(step / Month))
		width = Month * float64(months)
	case typ == Weeks && step > 7:
		days = 7 * int(math.Ceil(step/7))
		width = float64(days)
	case (typ == Days || typ == Weeks) && loc != time.UTC && step >= 1 && step == math.Trunc(step):
		days = int(step)
		width = step
		localDays = true
	default:
		return Linear(min, max, step)
	}

	start := DaysToTime(min).In(loc)
	y, m, d := start.Date()
	switch {
	case typ == Years:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case months > 0:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case localDays && typ == Days:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	default:
		wd := (int(start.Weekday()) + 6) % 7 // days since Monday
		start = time.Date(y, m, d-wd, 0, 0, 0, 0, loc)
	}

	eps := width * 1e-3
	lo, hi := min-eps, max+eps
	var values []float64
	for i := 0; ; i++ {
		if i >= MaxIterations {
			Logger.WithFields(logrus.Fields{"min": min, "max": max, "step": step, "unit": typ}).Debug("calendar tick sequence truncated")
			break
		}
		// Always step from start so day-of-month clamping can't
		// accumulate.
		var cur time.Time
		if months > 0 {
			cur = start.AddDate(0, i*months, 0)
		} else {
			cur = start.AddDate(0, 0, i*days)
		}
		v := TimeToDays(cur)
		if v > hi {
			break
		}
		if v >= lo {
			values = append(values, v)
		}
	}
	return values, nil
}
