// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "math"

// Pan shifts the range so the data value at screen coordinate x0
// moves to x1. The shift is applied in pre-transformed space, so a
// logarithmic axis pans by a constant ratio. The range is kept within
// AbsoluteMinimum and AbsoluteMaximum without changing its width.
//
// Pan does nothing if IsPanEnabled is false or the transform is not
// set up.
func (a *Axis) Pan(x0, x1 float64) {
	if !a.IsPanEnabled || !usable(a.scale) || a.scale == 0 {
		return
	}
	dx := (x1 - x0) / a.scale
	if dx == 0 || !usable(dx) {
		return
	}
	pmin := a.Kind.PreTransform(a.actualMin) - dx
	pmax := a.Kind.PreTransform(a.actualMax) - dx

	if lo := a.AbsoluteMinimum; a.IsValidValue(lo) {
		if plo := a.Kind.PreTransform(lo); pmin < plo {
			pmax += plo - pmin
			pmin = plo
		}
	}
	if hi := a.AbsoluteMaximum; a.IsValidValue(hi) {
		if phi := a.Kind.PreTransform(hi); pmax > phi {
			pmin -= pmax - phi
			pmax = phi
		}
	}
	a.setRange(a.Kind.PostInverseTransform(pmin), a.Kind.PostInverseTransform(pmax))
}

// Zoom sets the range to [x0, x1] (in either order), clamped to
// AbsoluteMinimum and AbsoluteMaximum.
//
// Zoom does nothing if IsZoomEnabled is false or the range is empty.
func (a *Axis) Zoom(x0, x1 float64) {
	if !a.IsZoomEnabled {
		return
	}
	lo, hi := math.Min(x0, x1), math.Max(x0, x1)
	lo, hi = a.clampAbsolute(lo, hi)
	if !a.IsValidValue(lo) || !a.IsValidValue(hi) || !(hi > lo) {
		return
	}
	a.setRange(lo, hi)
}

// ZoomAt scales the range by factor around data value x, which keeps
// its screen position. A factor above 1 zooms in.
//
// ZoomAt does nothing if IsZoomEnabled is false, factor is not a
// positive finite number or x is not a valid value.
func (a *Axis) ZoomAt(factor, x float64) {
	if !a.IsZoomEnabled || !(factor > 0) || math.IsInf(factor, 0) || !a.IsValidValue(x) {
		return
	}
	px := a.Kind.PreTransform(x)
	pmin := px + (a.Kind.PreTransform(a.actualMin)-px)/factor
	pmax := px + (a.Kind.PreTransform(a.actualMax)-px)/factor
	lo, hi := a.clampAbsolute(a.Kind.PostInverseTransform(pmin), a.Kind.PostInverseTransform(pmax))
	if !(hi > lo) {
		return
	}
	a.setRange(lo, hi)
}

// ZoomAtCenter is ZoomAt around the middle of the range.
func (a *Axis) ZoomAtCenter(factor float64) {
	mid := (a.Kind.PreTransform(a.actualMin) + a.Kind.PreTransform(a.actualMax)) / 2
	a.ZoomAt(factor, a.Kind.PostInverseTransform(mid))
}

func (a *Axis) clampAbsolute(lo, hi float64) (float64, float64) {
	return math.Max(lo, a.AbsoluteMinimum), math.Min(hi, a.AbsoluteMaximum)
}

func usable(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
