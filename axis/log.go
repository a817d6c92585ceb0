// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/aclements/go-axis/internal/numfmt"
	"github.com/aclements/go-axis/ticks"
)

// Log is the Kind of a logarithmic axis. Only positive values are
// accepted.
type Log struct {
	// Base is the logarithm base for tick placement. Zero means 10.
	Base float64

	// PowerPadding rounds a data-derived range outwards to powers
	// of Base instead of padding it.
	PowerPadding bool
}

// NewLog returns a logarithmic axis with the given base.
func NewLog(pos Position, base float64) *Axis {
	return New(pos, &Log{Base: base, PowerPadding: true})
}

func (k *Log) base() float64 {
	if k.Base == 0 {
		return 10
	}
	return k.Base
}

func (k *Log) accepts(x float64) bool { return x > 0 }

func (k *Log) PreTransform(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	return math.Log(x)
}

func (k *Log) PostInverseTransform(x float64) float64 { return math.Exp(x) }

// MajorInterval returns the step used when the range spans less than
// one power and ticks fall back to linear spacing.
func (k *Log) MajorInterval(a *Axis, availableSize float64) float64 {
	return niceInterval(a, availableSize)
}

// maxDecades is the number of labelled powers that fit along a, or 0
// for no limit.
func (k *Log) maxDecades(a *Axis) int {
	if !(a.IntervalLength > 0) {
		return 0
	}
	return int(a.length / a.IntervalLength)
}

func (k *Log) MinorInterval(a *Axis, major float64) float64 {
	return ticks.MinorInterval(major)
}

// TickValues places major ticks on powers of the base and minor ticks
// on their multiples. Powers that don't fit are thinned out and
// become minor ticks. If fewer than two powers fall in the range,
// ticks are linear.
func (k *Log) TickValues(a *Axis) (major, minor []float64, err error) {
	major, minor, err = ticks.Log(a.actualMin, a.actualMax, k.base())
	if err != nil {
		return nil, nil, err
	}
	if len(major) < 2 {
		return linearTicks(a)
	}
	if n := k.maxDecades(a); n > 0 && len(major) > n {
		thin := ticks.ThinDecades(major, n)
		minor = withoutMajor(major, thin, 0)
		major = thin
	}
	return major, minor, nil
}

func (k *Log) FormatValue(a *Axis, x float64) string {
	return formatNumber(a, x)
}

func (k *Log) coerce(a *Axis, dmin, dmax float64) {
	lb := math.Log(k.base())
	if k.PowerPadding {
		if math.IsNaN(a.Minimum) && dmin > 0 && !math.IsInf(dmin, 0) {
			a.actualMin = numfmt.RemoveNoise(math.Exp(math.Floor(math.Log(dmin)/lb+1e-9) * lb))
		}
		if math.IsNaN(a.Maximum) && dmax > 0 && !math.IsInf(dmax, 0) {
			a.actualMax = numfmt.RemoveNoise(math.Exp(math.Ceil(math.Log(dmax)/lb-1e-9) * lb))
		}
	}
	if !(a.actualMin > 0) {
		a.logger().WithField("min", a.actualMin).Debug("non-positive logarithmic minimum, using 1")
		a.actualMin = 1
	}
	if !(a.actualMax > a.actualMin) {
		a.actualMax = a.actualMin * 100
	}
}
