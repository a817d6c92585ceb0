// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/pkg/errors"
)

// UpdateTransform computes Scale and Offset so that the actual range
// spans the axis' part of bounds. Horizontal axes run left to right,
// vertical axes bottom to top; IsReversed swaps the ends.
func (a *Axis) UpdateTransform(bounds Rect) error {
	if math.IsNaN(a.actualMin) || math.IsNaN(a.actualMax) {
		return errors.Wrapf(ErrNotUpdated, "axis %q", a.Key)
	}
	if !(a.actualMax-a.actualMin > 0) {
		a.actualMax = a.actualMin + 1
	}
	if u, ok := a.Kind.(transformUpdater); ok {
		u.updateTransform(a, bounds)
		return nil
	}

	horizontal := a.Position.IsHorizontal() || a.Position == NoPosition
	a0, a1 := bounds.Bottom(), bounds.Top
	if horizontal {
		a0, a1 = bounds.Left, bounds.Right()
	}
	d := a1 - a0
	a0, a1 = a0+a.StartPosition*d, a0+a.EndPosition*d
	if a.IsReversed {
		a0, a1 = a1, a0
	}

	switch a.Position {
	case Top:
		a.screenMin, a.screenMax = ScreenPoint{a0, bounds.Top}, ScreenPoint{a1, bounds.Top}
	case Bottom, NoPosition:
		a.screenMin, a.screenMax = ScreenPoint{a0, bounds.Bottom()}, ScreenPoint{a1, bounds.Bottom()}
	case Right:
		a.screenMin, a.screenMax = ScreenPoint{bounds.Right(), a0}, ScreenPoint{bounds.Right(), a1}
	default:
		a.screenMin, a.screenMax = ScreenPoint{bounds.Left, a0}, ScreenPoint{bounds.Left, a1}
	}

	max := a.Kind.PreTransform(a.actualMax)
	min := a.Kind.PreTransform(a.actualMin)
	da := a0 - a1
	a.offset = 0
	if da != 0 {
		a.offset = a0/da*max - a1/da*min
	}
	a.scale = 1
	if r := max - min; r != 0 {
		a.scale = (a1 - a0) / r
	}
	a.midPoint = bounds.Center()
	return nil
}

// Transform maps data value x to a screen coordinate along the axis.
//
// Transform panics with ErrAngleAxisUnpaired on an angle axis, which
// has no screen coordinate of its own; use TransformPoint with a
// magnitude axis.
func (a *Axis) Transform(x float64) float64 {
	if a.isAngle() {
		panic(ErrAngleAxisUnpaired)
	}
	return a.transform(x)
}

func (a *Axis) transform(x float64) float64 {
	return (a.Kind.PreTransform(x) - a.offset) * a.scale
}

// InverseTransform maps screen coordinate sx back to a data value.
func (a *Axis) InverseTransform(sx float64) float64 {
	return a.Kind.PostInverseTransform(sx/a.scale + a.offset)
}

// TransformPoint maps p to the screen using a for p.X and y for p.Y.
//
// If either axis is polar, the two must be a magnitude axis and an
// angle axis, in either order; otherwise it returns an error wrapping
// ErrMissingPairedAxis. For a polar pair the magnitude is the radius
// from the center and the angle is measured counterclockwise in
// degrees.
func (a *Axis) TransformPoint(p DataPoint, y *Axis) (ScreenPoint, error) {
	mag, ang, r, theta, err := pairPolar(a, y, p.X, p.Y)
	if err != nil {
		return ScreenPoint{}, err
	}
	if mag == nil {
		return ScreenPoint{a.transform(p.X), y.transform(p.Y)}, nil
	}
	rs := mag.transform(r)
	th := ang.transform(theta) * math.Pi / 180
	mid := mag.midPoint
	return ScreenPoint{mid.X + rs*math.Cos(th), mid.Y - rs*math.Sin(th)}, nil
}

// InverseTransformPoint is the inverse of TransformPoint. For a polar
// pair the angle is normalized into the angle axis' range.
func (a *Axis) InverseTransformPoint(sp ScreenPoint, y *Axis) (DataPoint, error) {
	mag, ang, _, _, err := pairPolar(a, y, 0, 0)
	if err != nil {
		return DataPoint{}, err
	}
	if mag == nil {
		return DataPoint{a.InverseTransform(sp.X), y.InverseTransform(sp.Y)}, nil
	}

	mid := mag.midPoint
	dx, dy := sp.X-mid.X, mid.Y-sp.Y
	r := mag.InverseTransform(math.Hypot(dx, dy))

	k := ang.Kind.(*Angle)
	lo := math.Min(k.StartAngle, k.EndAngle)
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	deg = lo + math.Mod(math.Mod(deg-lo, 360)+360, 360)
	theta := ang.InverseTransform(deg)

	if a == mag {
		return DataPoint{r, theta}, nil
	}
	return DataPoint{theta, r}, nil
}

// pairPolar sorts a pair of axes into magnitude and angle axes. It
// returns nil axes if neither is polar. x and y are data coordinates
// in the order of the axes; r and theta are those same coordinates
// sorted by role.
func pairPolar(a, b *Axis, x, y float64) (mag, ang *Axis, r, theta float64, err error) {
	if b == nil {
		return nil, nil, 0, 0, errors.Wrapf(ErrMissingPairedAxis, "axis %q has no partner", a.Key)
	}
	aPolar := a.isAngle() || a.isMagnitude()
	bPolar := b.isAngle() || b.isMagnitude()
	switch {
	case !aPolar && !bPolar:
		return nil, nil, 0, 0, nil
	case a.isMagnitude() && b.isAngle():
		return a, b, x, y, nil
	case a.isAngle() && b.isMagnitude():
		return b, a, y, x, nil
	}
	return nil, nil, 0, 0, errors.Wrapf(ErrMissingPairedAxis, "axes %q (%s) and %q (%s) are not a magnitude/angle pair", a.Key, a.Position, b.Key, b.Position)
}

// SetScale changes Scale to newScale, keeping the screen position of
// the middle of the actual range. The sign of the current scale is
// kept, so the axis direction never flips. The new range becomes the
// user range.
func (a *Axis) SetScale(newScale float64) {
	if newScale == 0 || math.IsNaN(newScale) || math.IsInf(newScale, 0) {
		return
	}
	if a.scale == 0 || math.IsNaN(a.scale) {
		return
	}
	pmin := a.Kind.PreTransform(a.actualMin)
	pmax := a.Kind.PreTransform(a.actualMax)
	sx0 := (pmin - a.offset) * a.scale
	sx1 := (pmax - a.offset) * a.scale
	mid := (pmin + pmax) / 2
	dx := (a.offset - mid) * a.scale

	a.scale = mathx.Sign(a.scale) * math.Abs(newScale)
	a.offset = dx/a.scale + mid
	a.setRange(a.Kind.PostInverseTransform(sx0/a.scale+a.offset), a.Kind.PostInverseTransform(sx1/a.scale+a.offset))
}

// setRange sets both the user range and the actual range.
func (a *Axis) setRange(min, max float64) {
	a.Minimum, a.Maximum = min, max
	a.actualMin, a.actualMax = min, max
}
