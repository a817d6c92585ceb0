// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/aclements/go-axis/internal/numfmt"
	"github.com/aclements/go-axis/ticks"
)

// Linear is the Kind of a plain numeric axis.
type Linear struct{}

func (Linear) PreTransform(x float64) float64         { return x }
func (Linear) PostInverseTransform(x float64) float64 { return x }

func (Linear) MajorInterval(a *Axis, availableSize float64) float64 {
	return niceInterval(a, availableSize)
}

func (Linear) MinorInterval(a *Axis, major float64) float64 {
	return ticks.MinorInterval(major)
}

func (Linear) TickValues(a *Axis) (major, minor []float64, err error) {
	return linearTicks(a)
}

func (Linear) FormatValue(a *Axis, x float64) string {
	return formatNumber(a, x)
}

// niceInterval is the major interval of a linear range, or NaN.
func niceInterval(a *Axis, availableSize float64) float64 {
	iv, err := ticks.ActualInterval(availableSize, a.IntervalLength, a.actualMax-a.actualMin)
	if err != nil {
		a.logger().WithError(err).Debug("no major interval")
		return math.NaN()
	}
	return iv
}

// linearTicks returns evenly spaced ticks at the actual steps. Minor
// ticks that coincide with major ticks are dropped.
func linearTicks(a *Axis) (major, minor []float64, err error) {
	major, err = ticks.Linear(a.actualMin, a.actualMax, a.majorStep)
	if err != nil {
		return nil, nil, err
	}
	minor, err = ticks.Linear(a.actualMin, a.actualMax, a.minorStep)
	if err != nil {
		return nil, nil, err
	}
	return major, withoutMajor(minor, major, a.minorStep*1e-6), nil
}

func withoutMajor(minor, major []float64, eps float64) []float64 {
	out := minor[:0:0]
	j := 0
	for _, v := range minor {
		for j < len(major) && major[j] < v-eps {
			j++
		}
		if j < len(major) && math.Abs(major[j]-v) <= eps {
			continue
		}
		out = append(out, v)
	}
	return out
}

func formatNumber(a *Axis, x float64) string {
	switch {
	case a.UseSuperExponentialFormat:
		return numfmt.FormatSuperExponent(x, a.StringFormat)
	case a.UseSIPrefix:
		return numfmt.FormatSI(x, 3, "")
	}
	return numfmt.FormatNumber(x, a.StringFormat)
}
