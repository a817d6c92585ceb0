// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
)

// Color is the Kind of a color axis, which maps values onto a palette
// and is drawn as a color bar. It otherwise behaves like a linear
// axis.
type Color struct {
	Palette []color.Color

	// LowColor and HighColor are used for values below and above
	// the actual range. Nil means the first or last palette color.
	LowColor, HighColor color.Color

	// InvalidColor is used for NaN.
	InvalidColor color.Color

	// BarWidth is the width of the drawn color bar.
	BarWidth float64
}

// NewColor returns a color axis with the given palette.
func NewColor(pos Position, pal []color.Color) *Axis {
	return New(pos, &Color{Palette: pal, InvalidColor: color.Transparent, BarWidth: 20})
}

func (k *Color) defaults(a *Axis) {
	a.MinimumPadding, a.MaximumPadding = 0, 0
}

func (k *Color) PreTransform(x float64) float64         { return x }
func (k *Color) PostInverseTransform(x float64) float64 { return x }

func (k *Color) MajorInterval(a *Axis, availableSize float64) float64 {
	return Linear{}.MajorInterval(a, availableSize)
}

func (k *Color) MinorInterval(a *Axis, major float64) float64 {
	return Linear{}.MinorInterval(a, major)
}

func (k *Color) TickValues(a *Axis) (major, minor []float64, err error) {
	return linearTicks(a)
}

func (k *Color) FormatValue(a *Axis, x float64) string {
	return formatNumber(a, x)
}

// PaletteIndex returns the palette index of v: 1..n for values in the
// actual range of a, 0 below it, n+1 above it and -1 for NaN.
func (k *Color) PaletteIndex(a *Axis, v float64) int {
	n := len(k.Palette)
	switch {
	case math.IsNaN(v) || n == 0:
		return -1
	case v < a.actualMin:
		return 0
	case v > a.actualMax:
		return n + 1
	}
	i := 1 + int(math.Floor((v-a.actualMin)/(a.actualMax-a.actualMin)*float64(n)))
	if i > n {
		i = n
	}
	if i < 1 {
		i = 1
	}
	return i
}

// ColorOf returns the color for v.
func (k *Color) ColorOf(a *Axis, v float64) color.Color {
	return k.colorAt(k.PaletteIndex(a, v))
}

func (k *Color) colorAt(i int) color.Color {
	n := len(k.Palette)
	switch {
	case i < 0:
		return k.InvalidColor
	case i == 0:
		if k.LowColor != nil {
			return k.LowColor
		}
		return k.Palette[0]
	case i > n:
		if k.HighColor != nil {
			return k.HighColor
		}
		return k.Palette[n-1]
	}
	return k.Palette[i-1]
}

// NewPalette samples n colors evenly from a gradient through stops.
func NewPalette(n int, stops ...color.RGBA) []color.Color {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	g := palette.RGBGradient{Colors: stops}
	out := make([]color.Color, n)
	for i := range out {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		out[i] = g.Map(x)
	}
	return out
}

// Jet returns the n-color blue-cyan-yellow-red palette.
func Jet(n int) []color.Color {
	return NewPalette(n,
		color.RGBA{0, 0, 0x7f, 0xff},
		color.RGBA{0, 0, 0xff, 0xff},
		color.RGBA{0, 0xff, 0xff, 0xff},
		color.RGBA{0xff, 0xff, 0, 0xff},
		color.RGBA{0xff, 0, 0, 0xff},
		color.RGBA{0x7f, 0, 0, 0xff})
}

// Gray returns an n-color black to white palette.
func Gray(n int) []color.Color {
	return NewPalette(n, color.RGBA{0, 0, 0, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff})
}

// Hot returns the n-color black-red-yellow-white palette.
func Hot(n int) []color.Color {
	return NewPalette(n,
		color.RGBA{0, 0, 0, 0xff},
		color.RGBA{0xff, 0, 0, 0xff},
		color.RGBA{0xff, 0xff, 0, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff})
}

// BlueWhiteRed returns an n-color diverging palette.
func BlueWhiteRed(n int) []color.Color {
	return NewPalette(n,
		color.RGBA{0, 0, 0xff, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
		color.RGBA{0xff, 0, 0, 0xff})
}

// PaletteByName returns the named built-in palette.
func PaletteByName(name string, n int) ([]color.Color, bool) {
	switch name {
	case "jet":
		return Jet(n), true
	case "gray", "grey":
		return Gray(n), true
	case "hot":
		return Hot(n), true
	case "bluewhitered":
		return BlueWhiteRed(n), true
	}
	return nil, false
}
