// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/aclements/go-axis/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontMeasurer(t *testing.T) {
	var m FontMeasurer
	// The default face is 7 pixels wide and 13 high.
	assert.Equal(t, axis.Size{Width: 21, Height: 13}, m.MeasureText("abc", 13))
	assert.Equal(t, axis.Size{Width: 42, Height: 26}, m.MeasureText("abc", 26))
	assert.Equal(t, axis.Size{Height: 12}, m.MeasureText("", 12))
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100)
	s.DrawLine([]axis.ScreenPoint{{X: 0, Y: 0}, {X: 10.4, Y: 20.6}}, color.Black, 1)
	s.DrawLine([]axis.ScreenPoint{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, color.RGBA{0xff, 0, 0, 0xff}, 2)
	s.DrawLine([]axis.ScreenPoint{{X: 0, Y: 0}, {X: 1, Y: 1}}, nil, 1)
	s.DrawPolygon([]axis.ScreenPoint{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}, color.White, nil, 0)
	s.DrawText(axis.ScreenPoint{X: 50, Y: 60}, "a<b", color.Black, 12, 0, axis.AlignCenter, axis.AlignTop)
	s.DrawText(axis.ScreenPoint{X: 5, Y: 50}, "title", color.Black, 12, -90, axis.AlignCenter, axis.AlignBottom)
	s.Close()

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, `<line x1="0" y1="0" x2="10" y2="21"`)
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, "stroke:rgb(255,0,0)")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, "fill:rgb(255,255,255)")
	assert.Contains(t, out, "a&lt;b")
	assert.Contains(t, out, "text-anchor:middle")
	assert.Contains(t, out, "rotate(-90")
	assert.Equal(t, 1, strings.Count(out, "<line"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestRecorder(t *testing.T) {
	a := axis.NewCategory(axis.Bottom, "A", "B", "C")
	a.Title = "Letter"
	area := axis.Rect{Left: 40, Top: 10, Width: 300, Height: 200}
	require.NoError(t, axis.Axes{a}.Update(area))

	var r Recorder
	require.NoError(t, a.Render(&r, area))
	assert.Equal(t, []string{"A", "B", "C", "Letter"}, r.Texts())
	// Three major ticks, four boundary ticks and the axis line.
	assert.Equal(t, 8, r.Count("line"))
	assert.Equal(t, 0, r.Count("polygon"))
	assert.Equal(t, `text 90,221 "A"`, r.Ops[len(r.Ops)-4].String())
}

func TestSwatch(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	pal := []color.Color{red, blue}

	img := Swatch(pal, 40, 10, false)
	assert.Equal(t, image.Rect(0, 0, 40, 10), img.Bounds())
	assert.Equal(t, red, img.RGBAAt(0, 5))
	assert.Equal(t, blue, img.RGBAAt(39, 5))

	img = Swatch(pal, 10, 40, true)
	assert.Equal(t, blue, img.RGBAAt(5, 0))
	assert.Equal(t, red, img.RGBAAt(5, 39))

	assert.Equal(t, image.Rect(0, 0, 3, 3), Swatch(nil, 3, 3, true).Bounds())

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, Swatch(axis.Jet(8), 16, 4, false)))
	back, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 4), back.Bounds())
}
