// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
)

// A LabelSource supplies category labels.
type LabelSource interface {
	Len() int
	Label(i int) string
}

type itemLabels[T any] struct {
	items []T
	label func(T) string
}

func (l itemLabels[T]) Len() int           { return len(l.items) }
func (l itemLabels[T]) Label(i int) string { return l.label(l.items[i]) }

// ItemLabels returns a LabelSource that labels each item with label.
func ItemLabels[T any](items []T, label func(T) string) LabelSource {
	return itemLabels[T]{items, label}
}

// Category is the Kind of an axis of discrete labelled values. The
// i'th label sits at value i, and the axis spans from -0.5 to
// n-0.5 so every category gets a unit-wide band.
type Category struct {
	// Labels are the category labels. If Items is non-nil it is
	// used instead.
	Labels []string
	Items  LabelSource

	// IsTickCentered puts ticks on the category centers rather
	// than on the boundaries between them.
	IsTickCentered bool

	// GapWidth is the gap between bars relative to the bar width.
	GapWidth float64

	posBase, negBase []float64
}

// NewCategory returns a category axis with the given labels.
func NewCategory(pos Position, labels ...string) *Axis {
	return New(pos, &Category{Labels: labels, GapWidth: 1})
}

func (k *Category) defaults(a *Axis) {
	a.MinimumPadding, a.MaximumPadding = 0, 0
	a.MajorStep, a.MinorStep = 1, 1
}

// Len returns the number of categories.
func (k *Category) Len() int {
	if k.Items != nil {
		return k.Items.Len()
	}
	return len(k.Labels)
}

// Label returns the i'th label, or "" if i is out of range.
func (k *Category) Label(i int) string {
	if i < 0 || i >= k.Len() {
		return ""
	}
	if k.Items != nil {
		return k.Items.Label(i)
	}
	return k.Labels[i]
}

func (k *Category) PreTransform(x float64) float64         { return x }
func (k *Category) PostInverseTransform(x float64) float64 { return x }

func (k *Category) MajorInterval(a *Axis, availableSize float64) float64 { return 1 }
func (k *Category) MinorInterval(a *Axis, major float64) float64         { return 1 }

func (k *Category) dataRange(a *Axis) (min, max float64) {
	n := k.Len()
	if n == 0 && math.IsNaN(a.dataMax) {
		return -0.5, 0.5
	}
	min, max = -0.5, float64(n)-0.5
	if a.dataMin-0.5 < min {
		min = math.Floor(a.dataMin) - 0.5
	}
	if a.dataMax+0.5 > max {
		max = math.Ceil(a.dataMax) + 0.5
	}
	return min, max
}

// TickValues returns the category positions as major ticks. Minor
// ticks are the boundaries between categories, or the positions
// themselves if IsTickCentered.
func (k *Category) TickValues(a *Axis) (major, minor []float64, err error) {
	n := k.Len()
	for i := 0; i < n; i++ {
		if x := float64(i); x >= a.actualMin && x <= a.actualMax {
			major = append(major, x)
		}
	}
	if k.IsTickCentered {
		return major, major, nil
	}
	if n == 0 {
		return nil, nil, nil
	}
	for i := 0; i <= n; i++ {
		if x := float64(i) - 0.5; x >= a.actualMin && x <= a.actualMax {
			minor = append(minor, x)
		}
	}
	return major, minor, nil
}

// FormatValue returns the label of category int(x), or "" if there is
// no such category.
func (k *Category) FormatValue(a *Axis, x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	return k.Label(int(x))
}

// CategoryWidth returns the screen width of one category band.
func (k *Category) CategoryWidth(a *Axis) float64 {
	return math.Abs(a.scale)
}

// BarWidth returns the screen width of a bar, leaving GapWidth bar
// widths of space in each category.
func (k *Category) BarWidth(a *Axis) float64 {
	return k.CategoryWidth(a) / (1 + k.GapWidth)
}

// ResetStack clears the stacked bar bases.
func (k *Category) ResetStack() {
	k.posBase, k.negBase = nil, nil
}

// StackBase returns the base of a stacked bar of value v in category
// i and advances the stack. Positive and negative values stack
// separately.
func (k *Category) StackBase(i int, v float64) float64 {
	if i < 0 {
		return 0
	}
	for len(k.posBase) <= i {
		k.posBase = append(k.posBase, 0)
		k.negBase = append(k.negBase, 0)
	}
	stack := k.posBase
	if v < 0 {
		stack = k.negBase
	}
	base := stack[i]
	stack[i] += v
	return base
}
