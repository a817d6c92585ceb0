// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/internal/numfmt"
	"github.com/aclements/go-axis/render"
	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A Session runs script commands against a set of axes.
type Session struct {
	Axes axis.Axes

	// Area is the fixed plot area. If its size is zero, the plot
	// area is the canvas less the axis margins.
	Area          axis.Rect
	Width, Height float64

	// Output is the SVG file written by the render command.
	Output string

	Out      Reporter
	Measurer render.FontMeasurer

	plotArea axis.Rect
	updated  bool

	// included records the data of each axis so reset can rebuild
	// it; userRange is the configured Minimum and Maximum.
	included  map[*axis.Axis][]float64
	userRange map[*axis.Axis][2]float64
}

// NewSession returns a session over as with a width×height canvas.
func NewSession(as axis.Axes, width, height float64, out Reporter) *Session {
	s := &Session{
		Axes:      as,
		Width:     width,
		Height:    height,
		Out:       out,
		included:  make(map[*axis.Axis][]float64),
		userRange: make(map[*axis.Axis][2]float64),
	}
	for _, a := range as {
		s.userRange[a] = [2]float64{a.Minimum, a.Maximum}
	}
	return s
}

// PlotArea returns the plot area of the last update.
func (s *Session) PlotArea() axis.Rect { return s.plotArea }

type command struct {
	usage    string
	min, max int // argument count; max < 0 is unbounded
	run      func(s *Session, args []string) error
}

var commands = map[string]command{
	"include":   {"KEY V...", 2, -1, (*Session).cmdInclude},
	"update":    {"", 0, 0, (*Session).cmdUpdate},
	"pan":       {"KEY X0 X1", 3, 3, (*Session).cmdPan},
	"zoom":      {"KEY A B", 3, 3, (*Session).cmdZoom},
	"zoomat":    {"KEY FACTOR X", 3, 3, (*Session).cmdZoomAt},
	"reset":     {"KEY", 1, 1, (*Session).cmdReset},
	"ticks":     {"KEY", 1, 1, (*Session).cmdTicks},
	"transform": {"KEY X", 2, 2, (*Session).cmdTransform},
	"inverse":   {"KEY SX", 2, 2, (*Session).cmdInverse},
	"point":     {"XKEY YKEY X Y", 4, 4, (*Session).cmdPoint},
	"format":    {"KEY X", 2, 2, (*Session).cmdFormat},
	"range":     {"KEY", 1, 1, (*Session).cmdRange},
	"render":    {"", 0, 0, (*Session).cmdRender},
	"swatch":    {"KEY FILE", 2, 2, (*Session).cmdSwatch},
}

// Run executes the script read from r, one command per line. Blank
// lines and lines starting with # are ignored.
func (s *Session) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := s.Exec(sc.Text()); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}
	return sc.Err()
}

// Exec executes one script line.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	words, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	name, args := words[0], words[1:]
	c, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %q", name)
	}
	if len(args) < c.min || (c.max >= 0 && len(args) > c.max) {
		return errors.Errorf("usage: %s %s", name, c.usage)
	}
	logrus.WithField("command", name).Debug(strings.Join(args, " "))
	if err := c.run(s, args); err != nil {
		return errors.Wrap(err, name)
	}
	return s.Out.Flush()
}

// axis finds an axis by key or, failing that, by position name.
func (s *Session) axis(name string) (*axis.Axis, error) {
	if a := s.Axes.Lookup(name); a != nil {
		return a, nil
	}
	if pos, err := axis.ParsePosition(name); err == nil {
		return s.Axes.Resolve("", pos)
	}
	return nil, errors.Errorf("no axis %q", name)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseValue parses a data value for a. Date/time axes also take
// dates, time-span axes take Go durations and category axes take
// labels.
func parseValue(a *axis.Axis, s string) (float64, error) {
	switch k := a.Kind.(type) {
	case *axis.DateTime:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return axis.ToDouble(t), nil
			}
		}
	case axis.TimeSpan:
		if d, err := time.ParseDuration(s); err == nil {
			return axis.DurationToDouble(d), nil
		}
	case *axis.Category:
		for i := 0; i < k.Len(); i++ {
			if k.Label(i) == s {
				return float64(i), nil
			}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("bad value %q", s)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("bad number %q", s)
	}
	return v, nil
}

func num(v float64) string {
	return strconv.FormatFloat(numfmt.RemoveNoise(v), 'g', -1, 64)
}

func isAngle(a *axis.Axis) bool {
	_, ok := a.Kind.(*axis.Angle)
	return ok
}

// update runs the update cycle. Without a fixed area the axes are
// first laid out on the whole canvas to measure their margins.
func (s *Session) update() error {
	area := s.Area
	if area.Width <= 0 || area.Height <= 0 {
		if err := s.Axes.Update(axis.Rect{Width: s.Width, Height: s.Height}); err != nil {
			return err
		}
		l, t, r, b := s.Axes.Margins(&render.Recorder{Measurer: s.Measurer})
		area = axis.Rect{Left: l, Top: t, Width: s.Width - l - r, Height: s.Height - t - b}
		if area.Width <= 0 || area.Height <= 0 {
			return errors.Errorf("%gx%g canvas too small for axes", s.Width, s.Height)
		}
	}
	if err := s.Axes.Update(area); err != nil {
		return err
	}
	s.plotArea = area
	s.updated = true
	return nil
}

func (s *Session) ensureUpdated() error {
	if s.updated {
		return nil
	}
	return s.update()
}

func (s *Session) reportRange(a *axis.Axis) {
	s.Out.Row(a.Key, num(a.ActualMinimum()), num(a.ActualMaximum()),
		num(a.ActualMajorStep()), num(a.ActualMinorStep()),
		num(a.Scale()), num(a.Offset()))
}

func (s *Session) cmdInclude(args []string) error {
	a, err := s.axis(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		v, err := parseValue(a, arg)
		if err != nil {
			return err
		}
		a.Include(v)
		s.included[a] = append(s.included[a], v)
	}
	s.updated = false
	return nil
}

func (s *Session) cmdUpdate(args []string) error {
	if err := s.update(); err != nil {
		return err
	}
	p := s.plotArea
	s.Out.Row("area", num(p.Left), num(p.Top), num(p.Width), num(p.Height))
	return nil
}

// interact applies f to the axis named by key once the axes are
// updated, then updates them again and reports the new range.
func (s *Session) interact(key string, f func(a *axis.Axis) error) error {
	a, err := s.axis(key)
	if err != nil {
		return err
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	if err := f(a); err != nil {
		return err
	}
	if err := s.update(); err != nil {
		return err
	}
	s.reportRange(a)
	return nil
}

func (s *Session) cmdPan(args []string) error {
	x0, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	x1, err := parseFloat(args[2])
	if err != nil {
		return err
	}
	return s.interact(args[0], func(a *axis.Axis) error {
		a.Pan(x0, x1)
		return nil
	})
}

func (s *Session) cmdZoom(args []string) error {
	return s.interact(args[0], func(a *axis.Axis) error {
		lo, err := parseValue(a, args[1])
		if err != nil {
			return err
		}
		hi, err := parseValue(a, args[2])
		if err != nil {
			return err
		}
		a.Zoom(lo, hi)
		return nil
	})
}

func (s *Session) cmdZoomAt(args []string) error {
	factor, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	return s.interact(args[0], func(a *axis.Axis) error {
		x, err := parseValue(a, args[2])
		if err != nil {
			return err
		}
		a.ZoomAt(factor, x)
		return nil
	})
}

func (s *Session) cmdReset(args []string) error {
	return s.interact(args[0], func(a *axis.Axis) error {
		a.Reset()
		r := s.userRange[a]
		a.Minimum, a.Maximum = r[0], r[1]
		for _, v := range s.included[a] {
			a.Include(v)
		}
		return nil
	})
}

func (s *Session) cmdTicks(args []string) error {
	a, err := s.axis(args[0])
	if err != nil {
		return err
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	major, minor, err := a.TickValues()
	if err != nil {
		return err
	}
	screen := func(v float64) string {
		if isAngle(a) {
			return "-"
		}
		return num(a.Transform(v))
	}
	for _, v := range major {
		s.Out.Row("major", num(v), a.FormatValue(v), screen(v))
	}
	for _, v := range minor {
		s.Out.Row("minor", num(v), "", screen(v))
	}
	return nil
}

func (s *Session) cmdTransform(args []string) error {
	a, err := s.axis(args[0])
	if err != nil {
		return err
	}
	if isAngle(a) {
		return errors.Wrap(axis.ErrAngleAxisUnpaired, "use point")
	}
	v, err := parseValue(a, args[1])
	if err != nil {
		return err
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	s.Out.Row(args[1], num(v), num(a.Transform(v)))
	return nil
}

func (s *Session) cmdInverse(args []string) error {
	a, err := s.axis(args[0])
	if err != nil {
		return err
	}
	sx, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	v := a.InverseTransform(sx)
	s.Out.Row(args[1], num(v), a.FormatValue(v))
	return nil
}

func (s *Session) cmdPoint(args []string) error {
	xa, err := s.axis(args[0])
	if err != nil {
		return err
	}
	ya, err := s.axis(args[1])
	if err != nil {
		return err
	}
	x, err := parseValue(xa, args[2])
	if err != nil {
		return err
	}
	y, err := parseValue(ya, args[3])
	if err != nil {
		return err
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	p, err := xa.TransformPoint(axis.DataPoint{X: x, Y: y}, ya)
	if err != nil {
		return err
	}
	s.Out.Row(num(x), num(y), num(p.X), num(p.Y))
	return nil
}

func (s *Session) cmdFormat(args []string) error {
	a, err := s.axis(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(a, args[1])
	if err != nil {
		return err
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	s.Out.Row(args[1], a.FormatValue(v))
	return nil
}

func (s *Session) cmdRange(args []string) error {
	a, err := s.axis(args[0])
	if err != nil {
		return err
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	s.reportRange(a)
	return nil
}

func (s *Session) cmdRender(args []string) error {
	if s.Output == "" {
		return errors.New("no output file; use -o")
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	f, err := os.Create(s.Output)
	if err != nil {
		return err
	}
	if err := s.Draw(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.Out.Row("wrote", s.Output)
	return nil
}

// Draw writes the axes as an SVG document to w.
func (s *Session) Draw(w io.Writer) error {
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	doc := render.NewSVG(w, int(s.Width), int(s.Height))
	doc.Measurer = s.Measurer
	err := s.Axes.Render(doc, s.plotArea)
	doc.Close()
	return errors.Wrap(err, "drawing axes")
}

// cmdSwatch writes the palette of a color axis as a PNG strip the
// size of its color bar.
func (s *Session) cmdSwatch(args []string) error {
	a, err := s.axis(args[0])
	if err != nil {
		return err
	}
	k, ok := a.Kind.(*axis.Color)
	if !ok {
		return errors.Errorf("axis %q is not a color axis", a.Key)
	}
	if err := s.ensureUpdated(); err != nil {
		return err
	}
	vertical := !a.Position.IsHorizontal()
	w, h := int(k.BarWidth), int(s.plotArea.Height)
	if !vertical {
		w, h = int(s.plotArea.Width), int(k.BarWidth)
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, render.Swatch(k.Palette, w, h, vertical)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.Out.Row("wrote", args[1])
	return nil
}
