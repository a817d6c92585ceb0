// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"github.com/pkg/errors"
)

// Axes is the set of axes of one plot.
type Axes []*Axis

// Lookup returns the axis with the given key, or nil.
func (as Axes) Lookup(key string) *Axis {
	if key == "" {
		return nil
	}
	for _, a := range as {
		if a.Key == key {
			return a
		}
	}
	return nil
}

// DefaultFor returns the first axis at position pos, or nil.
func (as Axes) DefaultFor(pos Position) *Axis {
	for _, a := range as {
		if a.Position == pos {
			return a
		}
	}
	return nil
}

// Resolve returns the axis with the given key, or the default axis at
// pos if key is empty.
func (as Axes) Resolve(key string, pos Position) (*Axis, error) {
	if key == "" {
		if a := as.DefaultFor(pos); a != nil {
			return a, nil
		}
		return nil, errors.Errorf("no %s axis", pos)
	}
	if a := as.Lookup(key); a != nil {
		return a, nil
	}
	return nil, errors.Errorf("no axis %q", key)
}

// ResetData forgets the data of every axis.
func (as Axes) ResetData() {
	for _, a := range as {
		a.ResetDataMaxMin()
	}
}

// Reset resets every axis.
func (as Axes) Reset() {
	for _, a := range as {
		a.Reset()
	}
}

// Update runs the update cycle of every axis for plotArea, after
// their data has been included. It stops at the first error.
func (as Axes) Update(plotArea Rect) error {
	for _, a := range as {
		if err := a.UpdateActualMaxMin(); err != nil {
			return err
		}
		a.UpdateIntervals(plotArea)
		if err := a.UpdateTransform(plotArea); err != nil {
			return err
		}
	}
	return nil
}

// SyncScale sets the scale of every axis, as for a plot with a fixed
// aspect ratio.
func (as Axes) SyncScale(scale float64) {
	for _, a := range as {
		a.SetScale(scale)
	}
}

// Render draws every visible axis. Cartesian and color axes are drawn
// around plotArea; the first magnitude and angle axes are drawn
// together as a polar grid.
func (as Axes) Render(rc RenderContext, plotArea Rect) error {
	var mag, ang *Axis
	for _, a := range as {
		switch {
		case a.isMagnitude():
			if mag == nil {
				mag = a
			}
		case a.isAngle():
			if ang == nil {
				ang = a
			}
		default:
			if err := a.Render(rc, plotArea); err != nil {
				return err
			}
		}
	}
	if mag != nil || ang != nil {
		return RenderPolar(rc, mag, ang)
	}
	return nil
}

// Margins returns the space needed outside the plot area on each side
// to fit the axes.
func (as Axes) Margins(rc RenderContext) (left, top, right, bottom float64) {
	for _, a := range as {
		sz := a.Measure(rc)
		switch a.Position {
		case Left:
			left += sz.Width
		case Right:
			right += sz.Width
		case Top:
			top += sz.Height
		case Bottom:
			bottom += sz.Height
		}
	}
	return
}
