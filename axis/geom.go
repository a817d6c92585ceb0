// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "fmt"

// A ScreenPoint is a position in screen units. Y grows downwards.
type ScreenPoint struct {
	X, Y float64
}

func (p ScreenPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A DataPoint is a position in data units.
type DataPoint struct {
	X, Y float64
}

// A Size is a width and height in screen units.
type Size struct {
	Width, Height float64
}

// A Rect is a screen rectangle.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the center of r.
func (r Rect) Center() ScreenPoint {
	return ScreenPoint{r.Left + r.Width/2, r.Top + r.Height/2}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Left, r.Top, r.Width, r.Height)
}
