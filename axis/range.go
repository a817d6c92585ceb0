// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Fallback tick steps, used when no interval can be chosen.
const (
	fallbackMajorStep = 10
	fallbackMinorStep = 2
)

// UpdateActualMaxMin resolves the actual range from the user range
// and the included data.
//
// A bound left at NaN is taken from the data range, widened by
// MinimumPadding or MaximumPadding times the pre-transformed data
// width. A single data value is first widened to a symmetric span
// around it. If there is no data, the range falls back to [0, 100].
// Finally the range is widened to MinimumRange and narrowed to
// MaximumRange around its center.
//
// If both Minimum and Maximum are set and Minimum > Maximum, it
// returns an error wrapping ErrInvertedRange and leaves the actual
// range unchanged.
func (a *Axis) UpdateActualMaxMin() error {
	if !math.IsNaN(a.Minimum) && !math.IsNaN(a.Maximum) && a.Minimum > a.Maximum {
		return errors.Wrapf(ErrInvertedRange, "axis %q: minimum %v, maximum %v", a.Key, a.Minimum, a.Maximum)
	}

	dmin, dmax := a.dataMin, a.dataMax
	if r, ok := a.Kind.(dataRanger); ok {
		dmin, dmax = r.dataRange(a)
	}
	if !math.IsNaN(dmin) && !math.IsNaN(dmax) && !(dmax > dmin) {
		zr := 1.0
		if dmax > 0 {
			zr = dmax
		}
		dmin -= 0.5 * zr
		dmax += 0.5 * zr
		if !a.IsValidValue(dmin) {
			// Log axes can't go below zero.
			dmin = dmax / 2
		}
	}

	lo, hi := dmin, dmax
	if !math.IsNaN(dmin) && !math.IsNaN(dmax) {
		p0, p1 := a.Kind.PreTransform(dmin), a.Kind.PreTransform(dmax)
		span := p1 - p0
		lo = a.Kind.PostInverseTransform(p0 - a.MinimumPadding*span)
		hi = a.Kind.PostInverseTransform(p1 + a.MaximumPadding*span)
	}

	a.actualMin, a.actualMax = a.Minimum, a.Maximum
	if math.IsNaN(a.actualMin) {
		a.actualMin = lo
	}
	if math.IsNaN(a.actualMax) {
		a.actualMax = hi
	}
	a.coerceActualMaxMin(dmin, dmax)
	return nil
}

func (a *Axis) coerceActualMaxMin(dmin, dmax float64) {
	log := a.logger()
	if math.IsNaN(a.actualMin) || math.IsInf(a.actualMin, 0) {
		log.WithField("min", a.actualMin).Debug("no minimum, using 0")
		a.actualMin = 0
	}
	if math.IsNaN(a.actualMax) || math.IsInf(a.actualMax, 0) {
		log.WithField("max", a.actualMax).Debug("no maximum, using 100")
		a.actualMax = 100
	}

	if c, ok := a.Kind.(rangeCoercer); ok {
		c.coerce(a, dmin, dmax)
	}

	if !(a.actualMax > a.actualMin) {
		max := math.Max(a.actualMin+100, math.Nextafter(a.actualMin, math.Inf(1)))
		log.WithFields(logrus.Fields{"min": a.actualMin, "max": a.actualMax}).Debugf("empty range, using maximum %v", max)
		a.actualMax = max
	}

	if w := a.actualMax - a.actualMin; w < a.MinimumRange {
		avg := (a.actualMax + a.actualMin) / 2
		lo, hi := avg-a.MinimumRange/2, avg+a.MinimumRange/2
		if !a.IsValidValue(lo) {
			// Widen upwards only, so a logarithmic minimum stays
			// positive.
			log.WithField("min", lo).Debug("minimum range leaves the valid domain, widening upwards")
			lo, hi = a.actualMin, a.actualMin+a.MinimumRange
		}
		a.actualMin, a.actualMax = lo, hi
	} else if w > a.MaximumRange {
		avg := (a.actualMax + a.actualMin) / 2
		a.actualMin = avg - a.MaximumRange/2
		a.actualMax = avg + a.MaximumRange/2
	}
}

// axisLength returns the screen length available to a in bounds.
func (a *Axis) axisLength(bounds Rect) float64 {
	var l float64
	switch {
	case a.Position == AnglePosition || a.isAngle():
		l = math.Pi * math.Min(math.Abs(bounds.Width), math.Abs(bounds.Height))
	case a.Position == MagnitudePosition || a.isMagnitude():
		l = 0.5 * math.Min(math.Abs(bounds.Width), math.Abs(bounds.Height))
	case a.Position.IsHorizontal():
		l = bounds.Width
	default:
		l = bounds.Height
	}
	return math.Abs(l * (a.EndPosition - a.StartPosition))
}

// UpdateIntervals resolves the major and minor tick steps for an axis
// drawn in bounds. MajorStep and MinorStep override the computed
// steps; if neither can be determined the steps fall back to 10 and 2.
func (a *Axis) UpdateIntervals(bounds Rect) {
	a.length = a.axisLength(bounds)
	major := a.Kind.MajorInterval(a, a.length)
	if a.MajorStep > 0 && !math.IsInf(a.MajorStep, 0) {
		major = a.MajorStep
	}
	var minor float64
	if a.MinorStep > 0 && !math.IsInf(a.MinorStep, 0) {
		minor = a.MinorStep
	} else {
		minor = a.Kind.MinorInterval(a, major)
	}

	if !(major > 0) || math.IsInf(major, 0) {
		a.logger().WithField("major", major).Debug("no major step, using fallback")
		major = fallbackMajorStep
	}
	if !(minor > 0) || math.IsInf(minor, 0) {
		a.logger().WithField("minor", minor).Debug("no minor step, using fallback")
		minor = fallbackMinorStep
	}
	a.majorStep, a.minorStep = major, minor
}

// TickValues returns the major and minor tick values in the actual
// range, in increasing order. The update cycle must have run.
func (a *Axis) TickValues() (major, minor []float64, err error) {
	if !a.resolved() || math.IsNaN(a.majorStep) {
		return nil, nil, errors.Wrapf(ErrNotUpdated, "axis %q", a.Key)
	}
	return a.Kind.TickValues(a)
}

// FormatValue returns the label for x.
func (a *Axis) FormatValue(x float64) string {
	if a.LabelFormatter != nil {
		return a.LabelFormatter(x)
	}
	return a.Kind.FormatValue(a, x)
}
