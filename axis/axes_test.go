// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxesLookup(t *testing.T) {
	x := NewLinear(Bottom)
	x.Key = "x"
	y1 := NewLinear(Left)
	y1.Key = "y1"
	y2 := NewLog(Left, 10)
	y2.Key = "y2"
	as := Axes{x, y1, y2}

	assert.Same(t, y2, as.Lookup("y2"))
	assert.Nil(t, as.Lookup("z"))
	assert.Nil(t, as.Lookup(""))
	assert.Same(t, y1, as.DefaultFor(Left))
	assert.Nil(t, as.DefaultFor(Top))

	a, err := as.Resolve("", Bottom)
	require.NoError(t, err)
	assert.Same(t, x, a)
	a, err = as.Resolve("y2", Bottom)
	require.NoError(t, err)
	assert.Same(t, y2, a)
	_, err = as.Resolve("", Right)
	assert.Error(t, err)
	_, err = as.Resolve("nope", Bottom)
	assert.Error(t, err)
}

func TestAxesUpdate(t *testing.T) {
	x := NewLinear(Bottom)
	y := NewLinear(Left)
	as := Axes{x, y}
	x.Include(1)
	x.Include(2)
	require.NoError(t, as.Update(area))
	assert.InDelta(t, 0.99, x.ActualMinimum(), 1e-12)
	assert.Equal(t, 100.0, y.ActualMaximum())

	as.ResetData()
	assert.True(t, math.IsNaN(x.DataMinimum()))

	y.Minimum, y.Maximum = 5, 1
	assert.ErrorIs(t, as.Update(area), ErrInvertedRange)

	as.Reset()
	assert.True(t, math.IsNaN(y.Minimum))
	assert.NoError(t, as.Update(area))
}
