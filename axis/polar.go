// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"image/color"
	"math"

	"github.com/aclements/go-axis/ticks"
)

var polarGridColor = color.Gray{Y: 0xcc}

// Angle is the Kind of the angular axis of a polar plot. It maps the
// actual range onto the arc from StartAngle to EndAngle, in degrees
// counterclockwise from the positive x direction.
//
// An angle axis has no screen coordinate of its own: it must be
// paired with a Magnitude axis through TransformPoint. An empty arc,
// where StartAngle equals EndAngle, is taken as the full circle.
type Angle struct {
	StartAngle, EndAngle float64
}

// NewAngle returns an angle axis covering the arc from start to end
// degrees.
func NewAngle(start, end float64) *Axis {
	return New(AnglePosition, &Angle{StartAngle: start, EndAngle: end})
}

func (k *Angle) defaults(a *Axis) {
	a.MinimumPadding, a.MaximumPadding = 0, 0
	a.IsPanEnabled, a.IsZoomEnabled = false, false
	a.Style.TickStyle = TickNone
	a.Style.MajorGridlineColor = polarGridColor
	k.fillArc()
}

func (k *Angle) fillArc() {
	if k.StartAngle == k.EndAngle {
		k.EndAngle = k.StartAngle + 360
	}
}

func (k *Angle) PreTransform(x float64) float64         { return x }
func (k *Angle) PostInverseTransform(x float64) float64 { return x }

func (k *Angle) MajorInterval(a *Axis, availableSize float64) float64 {
	return niceInterval(a, availableSize)
}

func (k *Angle) MinorInterval(a *Axis, major float64) float64 {
	return ticks.MinorInterval(major)
}

// fullCircle reports whether the arc closes on itself.
func (k *Angle) fullCircle() bool {
	return math.Abs(math.Abs(k.EndAngle-k.StartAngle)-360) < 1e-9
}

// TickValues is linear, except that on a full circle the last tick is
// dropped when it lands on the first.
func (k *Angle) TickValues(a *Axis) (major, minor []float64, err error) {
	major, minor, err = linearTicks(a)
	if err != nil || !k.fullCircle() {
		return major, minor, err
	}
	eps := (a.actualMax - a.actualMin) * 1e-9
	closes := func(v []float64) bool {
		return len(v) > 1 && math.Abs(v[0]-a.actualMin) <= eps && math.Abs(v[len(v)-1]-a.actualMax) <= eps
	}
	if closes(major) {
		major = major[:len(major)-1]
	}
	if closes(minor) {
		minor = minor[:len(minor)-1]
	}
	return major, minor, nil
}

func (k *Angle) FormatValue(a *Axis, x float64) string {
	return formatNumber(a, x)
}

func (k *Angle) updateTransform(a *Axis, bounds Rect) {
	k.fillArc()
	a.scale = (k.EndAngle - k.StartAngle) / (a.actualMax - a.actualMin)
	a.offset = a.actualMin - k.StartAngle/a.scale
	a.midPoint = bounds.Center()
	a.screenMin = a.midPoint
	a.screenMax = a.midPoint
}

// Magnitude is the Kind of the radial axis of a polar plot. The
// actual range maps onto radii from the center of the plot area to
// half its smaller side.
type Magnitude struct{}

// NewMagnitude returns a magnitude axis.
func NewMagnitude() *Axis {
	return New(MagnitudePosition, &Magnitude{})
}

func (k *Magnitude) defaults(a *Axis) {
	a.MinimumPadding = 0
	a.Style.MajorGridlineColor = polarGridColor
}

func (k *Magnitude) PreTransform(x float64) float64         { return x }
func (k *Magnitude) PostInverseTransform(x float64) float64 { return x }

func (k *Magnitude) MajorInterval(a *Axis, availableSize float64) float64 {
	return niceInterval(a, availableSize)
}

func (k *Magnitude) MinorInterval(a *Axis, major float64) float64 {
	return ticks.MinorInterval(major)
}

func (k *Magnitude) TickValues(a *Axis) (major, minor []float64, err error) {
	return linearTicks(a)
}

func (k *Magnitude) FormatValue(a *Axis, x float64) string {
	return formatNumber(a, x)
}

func (k *Magnitude) updateTransform(a *Axis, bounds Rect) {
	a.midPoint = bounds.Center()
	r := math.Min(math.Abs(bounds.Width), math.Abs(bounds.Height))
	a.scale = 0.5 * r / (a.actualMax - a.actualMin)
	a.offset = a.actualMin
	a.screenMin = a.midPoint
	a.screenMax = ScreenPoint{a.midPoint.X + r/2, a.midPoint.Y}
}
