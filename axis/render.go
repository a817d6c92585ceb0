// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// HorizontalAlignment is the horizontal anchor of drawn text.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment is the vertical anchor of drawn text.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// A RenderContext draws primitives in screen coordinates. Nil colors
// mean "don't draw".
type RenderContext interface {
	DrawLine(points []ScreenPoint, stroke color.Color, thickness float64)
	DrawPolygon(points []ScreenPoint, fill, stroke color.Color, thickness float64)
	// DrawText draws text anchored at p. rotation is in degrees,
	// clockwise.
	DrawText(p ScreenPoint, text string, fill color.Color, fontSize, rotation float64, ha HorizontalAlignment, va VerticalAlignment)
	MeasureText(text string, fontSize float64) Size
}

// side describes where a Cartesian axis is drawn: the screen
// coordinate of its line across the axis direction and the direction
// (+1 or -1) pointing away from the plot area.
type side struct {
	horizontal bool
	line, out  float64
}

func (a *Axis) side(plotArea Rect) side {
	switch a.Position {
	case Left:
		return side{false, plotArea.Left, -1}
	case Right:
		return side{false, plotArea.Right(), 1}
	case Top:
		return side{true, plotArea.Top, -1}
	}
	return side{true, plotArea.Bottom(), 1}
}

// pt returns the screen point at along (in the axis direction) and
// across.
func (s side) pt(along, across float64) ScreenPoint {
	if s.horizontal {
		return ScreenPoint{along, across}
	}
	return ScreenPoint{across, along}
}

// extent returns the size of sz across the axis.
func (s side) extent(sz Size) float64 {
	if s.horizontal {
		return sz.Height
	}
	return sz.Width
}

// tickSpan returns the ends of a tick of the given length, relative to
// the axis line and measured outwards.
func (st *Style) tickSpan(length float64) (in, out float64, ok bool) {
	switch st.TickStyle {
	case TickOutside:
		return 0, length, true
	case TickInside:
		return -length, 0, true
	case TickCrossing:
		return -length, length, true
	}
	return 0, 0, false
}

// labelOffset returns the distance from the axis line to the tick
// labels.
func (a *Axis) labelOffset() float64 {
	d := a.Style.AxisTickToLabelDistance
	if _, out, ok := a.Style.tickSpan(a.Style.MajorTickSize); ok {
		d += out
	}
	if k, ok := a.Kind.(*Color); ok {
		d += k.BarWidth
	}
	return d
}

func (a *Axis) labelExtent(rc RenderContext, s side, major []float64) float64 {
	var max float64
	for _, v := range major {
		if sz := rc.MeasureText(a.FormatValue(v), a.Style.FontSize); s.extent(sz) > max {
			max = s.extent(sz)
		}
	}
	return max
}

// Measure returns the space the axis needs outside the plot area:
// tick marks, labels and the title. Only the extent across the axis is
// set. If the intervals have not been resolved yet, labels are not
// counted.
func (a *Axis) Measure(rc RenderContext) Size {
	if !a.Style.IsAxisVisible || a.Position.IsPolar() || a.Position == NoPosition {
		return Size{}
	}
	s := a.side(Rect{})
	total := a.labelOffset()
	if major, _, err := a.TickValues(); err == nil {
		total += a.labelExtent(rc, s, major)
	}
	if t := a.ActualTitle(); t != "" {
		total += a.Style.AxisTitleDistance + rc.MeasureText(t, a.Style.FontSize).Height
	}
	if s.horizontal {
		return Size{Height: total}
	}
	return Size{Width: total}
}

// Render draws a Cartesian or color axis along the edge of plotArea
// selected by Position: gridlines, tick marks, labels, the axis line
// and the title. The update cycle must have run.
//
// Polar axes are drawn by RenderPolar.
func (a *Axis) Render(rc RenderContext, plotArea Rect) error {
	if !a.Style.IsAxisVisible {
		return nil
	}
	if a.Position.IsPolar() || a.isAngle() || a.isMagnitude() {
		return errors.Wrapf(ErrMissingPairedAxis, "axis %q is polar", a.Key)
	}
	major, minor, err := a.TickValues()
	if err != nil {
		return err
	}

	st := &a.Style
	s := a.side(plotArea)
	lo := math.Min(s.along(a.screenMin), s.along(a.screenMax))
	hi := math.Max(s.along(a.screenMin), s.along(a.screenMax))
	visible := func(x float64) bool { return x >= lo-0.5 && x <= hi+0.5 }

	if k, ok := a.Kind.(*Color); ok {
		a.renderColorBar(rc, k, s)
	}

	// Gridlines span the plot area across the axis.
	var g0, g1 float64
	if s.horizontal {
		g0, g1 = plotArea.Top, plotArea.Bottom()
	} else {
		g0, g1 = plotArea.Left, plotArea.Right()
	}
	drawTicks := func(values []float64, size float64, grid color.Color) {
		in, out, ok := st.tickSpan(size)
		for _, v := range values {
			x := a.transform(v)
			if !visible(x) {
				continue
			}
			if grid != nil {
				rc.DrawLine([]ScreenPoint{s.pt(x, g0), s.pt(x, g1)}, grid, st.LineThickness)
			}
			if ok && st.TicklineColor != nil {
				rc.DrawLine([]ScreenPoint{s.pt(x, s.line+s.out*in), s.pt(x, s.line+s.out*out)}, st.TicklineColor, st.LineThickness)
			}
		}
	}
	drawTicks(minor, st.MinorTickSize, st.MinorGridlineColor)
	drawTicks(major, st.MajorTickSize, st.MajorGridlineColor)

	ha, va := labelAlignment(a.Position)
	across := s.line + s.out*a.labelOffset()
	for _, v := range major {
		x := a.transform(v)
		if !visible(x) {
			continue
		}
		if label := a.FormatValue(v); label != "" {
			rc.DrawText(s.pt(x, across), label, st.TextColor, st.FontSize, st.Angle, ha, va)
		}
	}

	if st.AxislineColor != nil {
		rc.DrawLine([]ScreenPoint{s.pt(lo, s.line), s.pt(hi, s.line)}, st.AxislineColor, st.LineThickness)
	}

	if t := a.ActualTitle(); t != "" {
		across += s.out * (a.labelExtent(rc, s, major) + st.AxisTitleDistance)
		rot := 0.0
		if !s.horizontal {
			rot = -90
		}
		tva := AlignTop
		if s.out < 0 {
			tva = AlignBottom
		}
		rc.DrawText(s.pt((lo+hi)/2, across), t, st.TitleColor, st.FontSize, rot, AlignCenter, tva)
	}
	return nil
}

func (s side) along(p ScreenPoint) float64 {
	if s.horizontal {
		return p.X
	}
	return p.Y
}

func labelAlignment(p Position) (HorizontalAlignment, VerticalAlignment) {
	switch p {
	case Left:
		return AlignRight, AlignMiddle
	case Right:
		return AlignLeft, AlignMiddle
	case Top:
		return AlignCenter, AlignBottom
	}
	return AlignCenter, AlignTop
}

func (a *Axis) renderColorBar(rc RenderContext, k *Color, s side) {
	n := len(k.Palette)
	if n == 0 {
		return
	}
	w := (a.actualMax - a.actualMin) / float64(n)
	c0, c1 := s.line, s.line+s.out*k.BarWidth
	for i := 1; i <= n; i++ {
		x0 := a.transform(a.actualMin + float64(i-1)*w)
		x1 := a.transform(a.actualMin + float64(i)*w)
		c := k.colorAt(i)
		rc.DrawPolygon([]ScreenPoint{s.pt(x0, c0), s.pt(x1, c0), s.pt(x1, c1), s.pt(x0, c1)}, c, c, 0)
	}
}

// RenderPolar draws a polar grid: circles at the magnitude ticks,
// spokes at the angle ticks and both sets of labels. The axes must
// have been updated with the same bounds.
func RenderPolar(rc RenderContext, mag, ang *Axis) error {
	if mag == nil || ang == nil || !mag.isMagnitude() || !ang.isAngle() {
		return errors.Wrap(ErrMissingPairedAxis, "RenderPolar needs a magnitude and an angle axis")
	}
	mmajor, mminor, err := mag.TickValues()
	if err != nil {
		return err
	}
	amajor, aminor, err := ang.TickValues()
	if err != nil {
		return err
	}
	point := func(r, theta float64) ScreenPoint {
		p, _ := mag.TransformPoint(DataPoint{r, theta}, ang)
		return p
	}
	arc := func(r float64) []ScreenPoint {
		steps := int(math.Ceil(math.Abs(ang.Kind.(*Angle).EndAngle-ang.Kind.(*Angle).StartAngle) / 5))
		if steps < 1 {
			steps = 1
		}
		pts := make([]ScreenPoint, 0, steps+1)
		for i := 0; i <= steps; i++ {
			t := ang.actualMin + (ang.actualMax-ang.actualMin)*float64(i)/float64(steps)
			pts = append(pts, point(r, t))
		}
		return pts
	}
	mid := mag.midPoint
	ms, as := &mag.Style, &ang.Style

	if ms.IsAxisVisible {
		if ms.MinorGridlineColor != nil {
			for _, r := range mminor {
				rc.DrawLine(arc(r), ms.MinorGridlineColor, ms.LineThickness)
			}
		}
		for _, r := range mmajor {
			if ms.MajorGridlineColor != nil {
				rc.DrawLine(arc(r), ms.MajorGridlineColor, ms.LineThickness)
			}
			if label := mag.FormatValue(r); label != "" {
				rc.DrawText(point(r, ang.actualMin), label, ms.TextColor, ms.FontSize, ms.Angle, AlignLeft, AlignTop)
			}
		}
		if ms.AxislineColor != nil {
			rc.DrawLine(arc(mag.actualMax), ms.AxislineColor, ms.LineThickness)
		}
	}

	if as.IsAxisVisible {
		spokes := func(values []float64, c color.Color) {
			if c == nil {
				return
			}
			for _, t := range values {
				rc.DrawLine([]ScreenPoint{mid, point(mag.actualMax, t)}, c, as.LineThickness)
			}
		}
		spokes(aminor, as.MinorGridlineColor)
		spokes(amajor, as.MajorGridlineColor)
		for _, t := range amajor {
			p := point(mag.actualMax, t)
			dx, dy := p.X-mid.X, p.Y-mid.Y
			d := math.Hypot(dx, dy)
			if d == 0 {
				continue
			}
			off := as.AxisTickToLabelDistance + as.FontSize/2
			lp := ScreenPoint{p.X + dx/d*off, p.Y + dy/d*off}
			if label := ang.FormatValue(t); label != "" {
				rc.DrawText(lp, label, as.TextColor, as.FontSize, 0, AlignCenter, AlignMiddle)
			}
		}
	}
	return nil
}
