// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/ticks"
	"github.com/pkg/errors"
)

// Config is the TOML plot description.
type Config struct {
	// Area fixes the plot area. If its size is zero, the plot area
	// is the canvas less the space the axes need.
	Area AreaConfig   `toml:"area"`
	Axes []AxisConfig `toml:"axis"`
}

type AreaConfig struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// AxisConfig describes one axis. Unset optional numbers keep the
// axis defaults.
type AxisConfig struct {
	Key      string `toml:"key"`
	Kind     string `toml:"kind"`
	Position string `toml:"position"`

	Min            *float64 `toml:"min"`
	Max            *float64 `toml:"max"`
	AbsoluteMin    *float64 `toml:"absolute_min"`
	AbsoluteMax    *float64 `toml:"absolute_max"`
	MinimumRange   *float64 `toml:"minimum_range"`
	MaximumRange   *float64 `toml:"maximum_range"`
	MinPadding     *float64 `toml:"min_padding"`
	MaxPadding     *float64 `toml:"max_padding"`
	MajorStep      *float64 `toml:"major_step"`
	MinorStep      *float64 `toml:"minor_step"`
	IntervalLength *float64 `toml:"interval_length"`
	Start          *float64 `toml:"start"`
	End            *float64 `toml:"end"`
	Reversed       bool     `toml:"reversed"`
	NoPan          bool     `toml:"no_pan"`
	NoZoom         bool     `toml:"no_zoom"`

	Title         string `toml:"title"`
	Unit          string `toml:"unit"`
	Format        string `toml:"format"`
	SIPrefix      bool   `toml:"si_prefix"`
	SuperExponent bool   `toml:"super_exponent"`

	// Log.
	Base         float64 `toml:"base"`
	PowerPadding *bool   `toml:"power_padding"`

	// Date/time.
	Interval      string `toml:"interval"`
	MinorInterval string `toml:"minor_interval"`
	TimeZone      string `toml:"time_zone"`

	// Category.
	Labels       []string `toml:"labels"`
	TickCentered bool     `toml:"tick_centered"`
	GapWidth     *float64 `toml:"gap_width"`

	// Angle.
	StartAngle *float64 `toml:"start_angle"`
	EndAngle   *float64 `toml:"end_angle"`

	// Color.
	Palette string `toml:"palette"`
	Colors  int    `toml:"colors"`
}

// LoadConfig reads a Config from the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(string(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// ParseConfig parses a Config from TOML text.
func ParseConfig(data string) (*Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, err
	}
	if un := md.Undecoded(); len(un) > 0 {
		return nil, errors.Errorf("unknown setting %s", un[0])
	}
	return &c, nil
}

// DefaultConfig is used when no configuration file is given: a linear
// horizontal axis and a linear vertical axis.
func DefaultConfig() *Config {
	return &Config{Axes: []AxisConfig{
		{Key: "x", Kind: "linear", Position: "bottom"},
		{Key: "y", Kind: "linear", Position: "left"},
	}}
}

// Build creates the configured axes.
func (c *Config) Build() (axis.Axes, error) {
	var as axis.Axes
	seen := make(map[string]bool)
	for i := range c.Axes {
		ac := &c.Axes[i]
		a, err := ac.build()
		if err != nil {
			return nil, errors.Wrapf(err, "axis %d (%q)", i+1, ac.Key)
		}
		if a.Key != "" {
			if seen[a.Key] {
				return nil, errors.Errorf("duplicate axis key %q", a.Key)
			}
			seen[a.Key] = true
		}
		as = append(as, a)
	}
	return as, nil
}

func (ac *AxisConfig) position(def axis.Position) (axis.Position, error) {
	if ac.Position == "" {
		return def, nil
	}
	return axis.ParsePosition(ac.Position)
}

func (ac *AxisConfig) build() (*axis.Axis, error) {
	var a *axis.Axis
	pos, err := ac.position(axis.Bottom)
	if err != nil {
		return nil, err
	}
	switch ac.Kind {
	case "", "linear":
		a = axis.NewLinear(pos)

	case "log":
		base := ac.Base
		if base == 0 {
			base = 10
		}
		if base <= 1 {
			return nil, errors.Wrapf(ticks.ErrInvalidBase, "base %v", base)
		}
		a = axis.NewLog(pos, base)
		if ac.PowerPadding != nil {
			a.Kind.(*axis.Log).PowerPadding = *ac.PowerPadding
		}

	case "datetime":
		a = axis.NewDateTime(pos)
		k := a.Kind.(*axis.DateTime)
		if k.IntervalType, err = ticks.ParseIntervalType(orAuto(ac.Interval)); err != nil {
			return nil, err
		}
		if k.MinorIntervalType, err = ticks.ParseIntervalType(orAuto(ac.MinorInterval)); err != nil {
			return nil, err
		}
		if ac.TimeZone != "" {
			if k.Location, err = time.LoadLocation(ac.TimeZone); err != nil {
				return nil, err
			}
		}

	case "timespan":
		a = axis.NewTimeSpan(pos)

	case "category":
		a = axis.NewCategory(pos, ac.Labels...)
		k := a.Kind.(*axis.Category)
		k.IsTickCentered = ac.TickCentered
		if ac.GapWidth != nil {
			k.GapWidth = *ac.GapWidth
		}

	case "angle":
		start, end := 0.0, 360.0
		setFloat(&start, ac.StartAngle)
		setFloat(&end, ac.EndAngle)
		a = axis.NewAngle(start, end)

	case "magnitude":
		a = axis.NewMagnitude()

	case "color":
		if pos, err = ac.position(axis.Right); err != nil {
			return nil, err
		}
		n := ac.Colors
		if n == 0 {
			n = 100
		}
		name := ac.Palette
		if name == "" {
			name = "jet"
		}
		pal, ok := axis.PaletteByName(name, n)
		if !ok {
			return nil, errors.Errorf("unknown palette %q", name)
		}
		a = axis.NewColor(pos, pal)

	default:
		return nil, errors.Errorf("unknown axis kind %q", ac.Kind)
	}

	a.Key = ac.Key
	setFloat(&a.Minimum, ac.Min)
	setFloat(&a.Maximum, ac.Max)
	setFloat(&a.AbsoluteMinimum, ac.AbsoluteMin)
	setFloat(&a.AbsoluteMaximum, ac.AbsoluteMax)
	setFloat(&a.MinimumRange, ac.MinimumRange)
	setFloat(&a.MaximumRange, ac.MaximumRange)
	setFloat(&a.MinimumPadding, ac.MinPadding)
	setFloat(&a.MaximumPadding, ac.MaxPadding)
	setFloat(&a.MajorStep, ac.MajorStep)
	setFloat(&a.MinorStep, ac.MinorStep)
	setFloat(&a.IntervalLength, ac.IntervalLength)
	setFloat(&a.StartPosition, ac.Start)
	setFloat(&a.EndPosition, ac.End)
	a.IsReversed = ac.Reversed
	if ac.NoPan {
		a.IsPanEnabled = false
	}
	if ac.NoZoom {
		a.IsZoomEnabled = false
	}
	a.Title = ac.Title
	a.Unit = ac.Unit
	a.StringFormat = ac.Format
	a.UseSIPrefix = ac.SIPrefix
	a.UseSuperExponentialFormat = ac.SuperExponent
	return a, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func orAuto(s string) string {
	if s == "" {
		return "auto"
	}
	return s
}
