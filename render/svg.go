// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements axis.RenderContext for SVG output, plus a
// recording context for tests and layout.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-axis/axis"
	svg "github.com/ajstarks/svgo"
)

// SVG draws to an SVG document. Coordinates are rounded to whole
// pixels.
type SVG struct {
	canvas *svg.SVG
	// Measurer sizes text. The zero value uses the default face.
	Measurer FontMeasurer
}

// NewSVG starts an SVG document of the given size on w. Call Close to
// finish it.
func NewSVG(w io.Writer, width, height int) *SVG {
	c := svg.New(w)
	c.Start(width, height)
	return &SVG{canvas: c}
}

// Close ends the document.
func (s *SVG) Close() {
	s.canvas.End()
}

func px(v float64) int {
	return int(math.Round(v))
}

func coords(points []axis.ScreenPoint) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	return
}

// cssColor returns the CSS color and opacity of c.
func cssColor(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B), float64(n.A) / 0xff
}

func strokeStyle(c color.Color, thickness float64) string {
	if c == nil {
		return "stroke:none"
	}
	css, op := cssColor(c)
	s := fmt.Sprintf("stroke:%s;stroke-width:%g", css, thickness)
	if op < 1 {
		s += fmt.Sprintf(";stroke-opacity:%.3g", op)
	}
	return s
}

func fillStyle(c color.Color) string {
	if c == nil {
		return "fill:none"
	}
	css, op := cssColor(c)
	s := "fill:" + css
	if op < 1 {
		s += fmt.Sprintf(";fill-opacity:%.3g", op)
	}
	return s
}

func (s *SVG) DrawLine(points []axis.ScreenPoint, stroke color.Color, thickness float64) {
	if len(points) < 2 || stroke == nil {
		return
	}
	style := strokeStyle(stroke, thickness)
	if len(points) == 2 {
		s.canvas.Line(px(points[0].X), px(points[0].Y), px(points[1].X), px(points[1].Y), style)
		return
	}
	xs, ys := coords(points)
	s.canvas.Polyline(xs, ys, "fill:none;"+style)
}

func (s *SVG) DrawPolygon(points []axis.ScreenPoint, fill, stroke color.Color, thickness float64) {
	if len(points) < 3 || (fill == nil && stroke == nil) {
		return
	}
	xs, ys := coords(points)
	style := fillStyle(fill)
	if thickness > 0 {
		style += ";" + strokeStyle(stroke, thickness)
	}
	s.canvas.Polygon(xs, ys, style)
}

var anchors = map[axis.HorizontalAlignment]string{
	axis.AlignLeft:   "start",
	axis.AlignCenter: "middle",
	axis.AlignRight:  "end",
}

var baselines = map[axis.VerticalAlignment]string{
	axis.AlignTop:    "hanging",
	axis.AlignMiddle: "central",
	axis.AlignBottom: "alphabetic",
}

func (s *SVG) DrawText(p axis.ScreenPoint, text string, fill color.Color, fontSize, rotation float64, ha axis.HorizontalAlignment, va axis.VerticalAlignment) {
	if text == "" || fill == nil {
		return
	}
	style := fmt.Sprintf("%s;font-size:%gpx;text-anchor:%s;dominant-baseline:%s", fillStyle(fill), fontSize, anchors[ha], baselines[va])
	if rotation == 0 {
		s.canvas.Text(px(p.X), px(p.Y), text, style)
		return
	}
	s.canvas.TranslateRotate(px(p.X), px(p.Y), rotation)
	s.canvas.Text(0, 0, text, style)
	s.canvas.Gend()
}

func (s *SVG) MeasureText(text string, fontSize float64) axis.Size {
	return s.Measurer.MeasureText(text, fontSize)
}
