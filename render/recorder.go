// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/aclements/go-axis/axis"
)

// An Op is one recorded drawing operation.
type Op struct {
	Kind     string // "line", "polygon" or "text"
	Points   []axis.ScreenPoint
	Text     string
	Rotation float64
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind)
	for _, p := range o.Points {
		fmt.Fprintf(&b, " %.4g,%.4g", p.X, p.Y)
	}
	if o.Kind == "text" {
		fmt.Fprintf(&b, " %q", o.Text)
	}
	return b.String()
}

// Recorder is a RenderContext that records operations instead of
// drawing them.
type Recorder struct {
	Ops      []Op
	Measurer FontMeasurer
}

func (r *Recorder) DrawLine(points []axis.ScreenPoint, stroke color.Color, thickness float64) {
	if stroke == nil {
		return
	}
	r.Ops = append(r.Ops, Op{Kind: "line", Points: append([]axis.ScreenPoint(nil), points...)})
}

func (r *Recorder) DrawPolygon(points []axis.ScreenPoint, fill, stroke color.Color, thickness float64) {
	r.Ops = append(r.Ops, Op{Kind: "polygon", Points: append([]axis.ScreenPoint(nil), points...)})
}

func (r *Recorder) DrawText(p axis.ScreenPoint, text string, fill color.Color, fontSize, rotation float64, ha axis.HorizontalAlignment, va axis.VerticalAlignment) {
	r.Ops = append(r.Ops, Op{Kind: "text", Points: []axis.ScreenPoint{p}, Text: text, Rotation: rotation})
}

func (r *Recorder) MeasureText(text string, fontSize float64) axis.Size {
	return r.Measurer.MeasureText(text, fontSize)
}

// Texts returns the recorded text strings in drawing order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, o := range r.Ops {
		if o.Kind == "text" {
			out = append(out, o.Text)
		}
	}
	return out
}

// Count returns the number of recorded operations of kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, o := range r.Ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
