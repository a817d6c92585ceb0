// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/ticks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[area]
left = 10.0
top = 5.0
width = 300.0
height = 200.0

[[axis]]
key = "t"
kind = "datetime"
position = "bottom"
interval = "months"
time_zone = "UTC"
format = "%Y-%m"

[[axis]]
key = "v"
kind = "log"
position = "left"
base = 2.0
power_padding = false
min = 1.0
max = 1024.0
title = "Size"
unit = "bytes"

[[axis]]
key = "c"
kind = "category"
position = "top"
labels = ["a", "b"]
tick_centered = true
gap_width = 0.5

[[axis]]
key = "heat"
kind = "color"
palette = "hot"
colors = 16
no_zoom = true
`

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig(testConfig)
	require.NoError(t, err)
	assert.Equal(t, AreaConfig{Left: 10, Top: 5, Width: 300, Height: 200}, c.Area)

	as, err := c.Build()
	require.NoError(t, err)
	require.Len(t, as, 4)

	dt, ok := as[0].Kind.(*axis.DateTime)
	require.True(t, ok)
	assert.Equal(t, axis.Bottom, as[0].Position)
	assert.Equal(t, ticks.Months, dt.IntervalType)
	assert.Equal(t, ticks.Auto, dt.MinorIntervalType)
	assert.Equal(t, time.UTC, dt.Location)
	assert.Equal(t, "%Y-%m", as[0].StringFormat)

	lg, ok := as[1].Kind.(*axis.Log)
	require.True(t, ok)
	assert.Equal(t, 2.0, lg.Base)
	assert.False(t, lg.PowerPadding)
	assert.Equal(t, 1.0, as[1].Minimum)
	assert.Equal(t, 1024.0, as[1].Maximum)
	assert.Equal(t, "Size [bytes]", as[1].ActualTitle())

	cat, ok := as[2].Kind.(*axis.Category)
	require.True(t, ok)
	assert.Equal(t, axis.Top, as[2].Position)
	assert.Equal(t, []string{"a", "b"}, cat.Labels)
	assert.True(t, cat.IsTickCentered)
	assert.Equal(t, 0.5, cat.GapWidth)

	col, ok := as[3].Kind.(*axis.Color)
	require.True(t, ok)
	assert.Equal(t, axis.Right, as[3].Position)
	assert.Len(t, col.Palette, 16)
	assert.False(t, as[3].IsZoomEnabled)
	assert.True(t, as[3].IsPanEnabled)
}

func TestConfigDefaults(t *testing.T) {
	c, err := ParseConfig(`
[[axis]]
key = "a"

[[axis]]
key = "b"
kind = "log"

[[axis]]
kind = "angle"
start_angle = 90.0

[[axis]]
kind = "magnitude"
`)
	require.NoError(t, err)
	as, err := c.Build()
	require.NoError(t, err)

	assert.IsType(t, axis.Linear{}, as[0].Kind)
	assert.Equal(t, axis.Bottom, as[0].Position)
	assert.Equal(t, 10.0, as[1].Kind.(*axis.Log).Base)
	assert.True(t, as[1].Kind.(*axis.Log).PowerPadding)

	ang := as[2].Kind.(*axis.Angle)
	assert.Equal(t, 90.0, ang.StartAngle)
	assert.Equal(t, 360.0, ang.EndAngle)
	assert.Equal(t, axis.AnglePosition, as[2].Position)
	assert.Equal(t, axis.MagnitudePosition, as[3].Position)

	def, err := DefaultConfig().Build()
	require.NoError(t, err)
	assert.NotNil(t, def.Lookup("x"))
	assert.Equal(t, axis.Left, def.Lookup("y").Position)
}

func TestConfigErrors(t *testing.T) {
	for _, test := range []struct {
		name, config, want string
	}{
		{"unknown setting", "[[axis]]\ncolour = \"red\"", "colour"},
		{"unknown kind", "[[axis]]\nkind = \"spiral\"", "spiral"},
		{"bad position", "[[axis]]\nposition = \"middle\"", "middle"},
		{"bad interval", "[[axis]]\nkind = \"datetime\"\ninterval = \"fortnights\"", "fortnights"},
		{"bad palette", "[[axis]]\nkind = \"color\"\npalette = \"sepia\"", "sepia"},
		{"duplicate key", "[[axis]]\nkey = \"x\"\n[[axis]]\nkey = \"x\"", "duplicate"},
		{"syntax", "[[axis]\n", ""},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, err := ParseConfig(test.config)
			if err == nil {
				_, err = c.Build()
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}

	c, err := ParseConfig("[[axis]]\nkind = \"log\"\nbase = 1.0")
	require.NoError(t, err)
	_, err = c.Build()
	assert.ErrorIs(t, err, ticks.ErrInvalidBase)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axes.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0666))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, c.Axes, 4)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
