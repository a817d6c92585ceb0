// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis implements plot axes: the mapping between data
// coordinates and screen coordinates, the resolution of the visible
// range from data and user settings, tick intervals, and pan and zoom.
//
// There is one Axis type. What differs between linear, logarithmic,
// date/time, time-span, category, polar and color axes is captured by
// its Kind, which supplies the pre-transform applied before the
// shared scale/offset mapping (identity, or log for logarithmic axes),
// the tick interval rules, tick generation and label formatting.
// Because padding, pan and zoom are computed in pre-transformed space,
// they behave uniformly on every kind.
//
// An Axis is updated in phases, once per layout pass:
//
//	a.ResetDataMaxMin()
//	for _, v := range data {
//		a.Include(v)
//	}
//	a.UpdateActualMaxMin()
//	a.UpdateIntervals(area)
//	a.UpdateTransform(area)
//
// after which Transform, InverseTransform, TickValues and FormatValue
// may be used. Axes are not safe for concurrent use.
package axis

import (
	"image/color"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingPairedAxis is returned by the paired transforms when
	// the second axis is missing or can't be paired with the first.
	ErrMissingPairedAxis = errors.New("axis: paired axis missing or incompatible")

	// ErrAngleAxisUnpaired is the panic value of Transform on an
	// angle axis, which is only meaningful paired with a magnitude
	// axis.
	ErrAngleAxisUnpaired = errors.New("axis: angle axis used without a magnitude axis")

	// ErrInvertedRange is returned by UpdateActualMaxMin when both
	// Minimum and Maximum are set and Minimum > Maximum.
	ErrInvertedRange = errors.New("axis: minimum greater than maximum")

	// ErrNotUpdated is returned by operations that need a resolved
	// range or transform before UpdateActualMaxMin or
	// UpdateTransform has run.
	ErrNotUpdated = errors.New("axis: range not resolved, run the update cycle first")
)

// Logger receives debug diagnostics about range coercion.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// Position is where an axis is placed relative to the plot area.
type Position int

const (
	NoPosition Position = iota
	Left
	Right
	Top
	Bottom
	AnglePosition
	MagnitudePosition
)

var positionNames = []string{"none", "left", "right", "top", "bottom", "angle", "magnitude"}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "Position(?)"
	}
	return positionNames[p]
}

// ParsePosition parses the lower-case name of a Position.
func ParsePosition(s string) (Position, error) {
	for i, n := range positionNames {
		if strings.EqualFold(s, n) {
			return Position(i), nil
		}
	}
	return NoPosition, errors.Errorf("unknown axis position %q", s)
}

// IsHorizontal reports whether p is Top or Bottom.
func (p Position) IsHorizontal() bool { return p == Top || p == Bottom }

// IsVertical reports whether p is Left or Right.
func (p Position) IsVertical() bool { return p == Left || p == Right }

// IsPolar reports whether p is AnglePosition or MagnitudePosition.
func (p Position) IsPolar() bool { return p == AnglePosition || p == MagnitudePosition }

// A Kind supplies the behavior that differs between axis variants.
//
// PreTransform maps a data value into the space where the linear
// scale/offset transform applies, and PostInverseTransform maps back.
// They must be strictly increasing inverses of each other.
//
// Linear and Log values hold only configuration and may be shared
// between axes. DateTime and Category record state during the update
// cycle, so each of those values belongs to one axis.
type Kind interface {
	PreTransform(x float64) float64
	PostInverseTransform(x float64) float64

	// MajorInterval returns the major step for an axis drawn over
	// availableSize screen units, or NaN if none can be chosen.
	MajorInterval(a *Axis, availableSize float64) float64

	// MinorInterval returns the minor step for the given major step.
	MinorInterval(a *Axis, major float64) float64

	// TickValues returns the major and minor tick values in the
	// actual range of a, in increasing order.
	TickValues(a *Axis) (major, minor []float64, err error)

	// FormatValue returns the label of x.
	FormatValue(a *Axis, x float64) string
}

// Optional Kind hooks.
type (
	valueFilter interface {
		accepts(x float64) bool
	}
	// dataRanger replaces the range observed by Include.
	dataRanger interface {
		dataRange(a *Axis) (min, max float64)
	}
	// rangeCoercer adjusts the actual range after padding. dmin and
	// dmax are the unpadded data range.
	rangeCoercer interface {
		coerce(a *Axis, dmin, dmax float64)
	}
	transformUpdater interface {
		updateTransform(a *Axis, bounds Rect)
	}
	defaulter interface {
		defaults(a *Axis)
	}
)

// TickStyle is where tick marks are drawn relative to the axis line.
type TickStyle int

const (
	TickOutside TickStyle = iota
	TickInside
	TickCrossing
	TickNone
)

// Style holds presentation settings. None of them affect the
// transform or tick computation.
type Style struct {
	FontSize float64
	// Angle rotates tick labels, in degrees.
	Angle float64

	TickStyle     TickStyle
	MajorTickSize float64
	MinorTickSize float64

	AxisTickToLabelDistance float64
	AxisTitleDistance       float64

	// Nil colors are not drawn.
	AxislineColor      color.Color
	TicklineColor      color.Color
	TextColor          color.Color
	TitleColor         color.Color
	MajorGridlineColor color.Color
	MinorGridlineColor color.Color

	LineThickness float64

	IsAxisVisible bool
}

// DefaultStyle returns the default presentation settings.
func DefaultStyle() Style {
	return Style{
		FontSize:                12,
		TickStyle:               TickOutside,
		MajorTickSize:           7,
		MinorTickSize:           4,
		AxisTickToLabelDistance: 4,
		AxisTitleDistance:       4,
		AxislineColor:           color.Black,
		TicklineColor:           color.Black,
		TextColor:               color.Black,
		TitleColor:              color.Black,
		LineThickness:           1,
		IsAxisVisible:           true,
	}
}

// An Axis maps one data dimension to screen coordinates.
//
// The exported fields are configuration. The resolved range, steps
// and transform are derived by the update cycle and exposed read-only
// through methods.
type Axis struct {
	Key      string
	Position Position
	Kind     Kind

	// Minimum and Maximum fix the visible range. NaN means the
	// range is derived from the included data.
	Minimum, Maximum float64

	// AbsoluteMinimum and AbsoluteMaximum bound pan and zoom.
	AbsoluteMinimum, AbsoluteMaximum float64

	// MinimumRange and MaximumRange bound the width of the actual
	// range.
	MinimumRange, MaximumRange float64

	// MinimumPadding and MaximumPadding extend a data-derived range
	// by a fraction of its pre-transformed width.
	MinimumPadding, MaximumPadding float64

	// MajorStep and MinorStep fix the tick steps. NaN means
	// automatic.
	MajorStep, MinorStep float64

	// IntervalLength is the screen length a labelled major interval
	// needs.
	IntervalLength float64

	// StartPosition and EndPosition place the axis on a fraction of
	// the plot area, for stacking axes in tiers.
	StartPosition, EndPosition float64

	IsReversed    bool
	IsPanEnabled  bool
	IsZoomEnabled bool

	Title string
	Unit  string

	// StringFormat is a fmt verb for numeric labels or a strftime
	// pattern for date/time labels.
	StringFormat              string
	UseSuperExponentialFormat bool
	UseSIPrefix               bool

	// LabelFormatter, if non-nil, replaces the kind's label
	// formatting.
	LabelFormatter func(x float64) string

	Style Style

	dataMin, dataMax     float64
	actualMin, actualMax float64
	majorStep, minorStep float64
	length               float64 // screen length from the last UpdateIntervals

	scale, offset        float64
	screenMin, screenMax ScreenPoint
	midPoint             ScreenPoint
}

// New returns an axis at position pos with default settings.
func New(pos Position, kind Kind) *Axis {
	nan := math.NaN()
	a := &Axis{
		Position:        pos,
		Kind:            kind,
		Minimum:         nan,
		Maximum:         nan,
		AbsoluteMinimum: math.Inf(-1),
		AbsoluteMaximum: math.Inf(1),
		MaximumRange:    math.Inf(1),
		MinimumPadding:  0.01,
		MaximumPadding:  0.01,
		MajorStep:       nan,
		MinorStep:       nan,
		IntervalLength:  60,
		EndPosition:     1,
		IsPanEnabled:    true,
		IsZoomEnabled:   true,
		Style:           DefaultStyle(),

		dataMin:   nan,
		dataMax:   nan,
		actualMin: nan,
		actualMax: nan,
		majorStep: nan,
		minorStep: nan,
		scale:     nan,
		offset:    nan,
	}
	if d, ok := kind.(defaulter); ok {
		d.defaults(a)
	}
	return a
}

// NewLinear returns a linear axis.
func NewLinear(pos Position) *Axis {
	return New(pos, Linear{})
}

// ActualMinimum returns the lower end of the resolved range.
func (a *Axis) ActualMinimum() float64 { return a.actualMin }

// ActualMaximum returns the upper end of the resolved range.
func (a *Axis) ActualMaximum() float64 { return a.actualMax }

// DataMinimum returns the smallest included value, or NaN.
func (a *Axis) DataMinimum() float64 { return a.dataMin }

// DataMaximum returns the largest included value, or NaN.
func (a *Axis) DataMaximum() float64 { return a.dataMax }

// ActualMajorStep returns the resolved major tick step.
func (a *Axis) ActualMajorStep() float64 { return a.majorStep }

// ActualMinorStep returns the resolved minor tick step.
func (a *Axis) ActualMinorStep() float64 { return a.minorStep }

// Scale returns screen units per pre-transformed data unit. It is
// negative when the screen direction is reversed, as for vertical
// axes.
func (a *Axis) Scale() float64 { return a.scale }

// Offset returns the pre-transformed data value at screen coordinate 0.
func (a *Axis) Offset() float64 { return a.offset }

// ScreenMin returns the screen point of ActualMinimum along the axis.
func (a *Axis) ScreenMin() ScreenPoint { return a.screenMin }

// ScreenMax returns the screen point of ActualMaximum along the axis.
func (a *Axis) ScreenMax() ScreenPoint { return a.screenMax }

// MidPoint returns the center of a polar axis.
func (a *Axis) MidPoint() ScreenPoint { return a.midPoint }

// ActualTitle returns the title with the unit appended.
func (a *Axis) ActualTitle() string {
	if a.Unit == "" {
		return a.Title
	}
	return a.Title + " [" + a.Unit + "]"
}

// IsValidValue reports whether x can be included in or transformed by
// a: it must be finite and accepted by the kind (positive for
// logarithmic axes).
func (a *Axis) IsValidValue(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	if f, ok := a.Kind.(valueFilter); ok {
		return f.accepts(x)
	}
	return true
}

// Include widens the data range, and the actual range, to cover x.
// Invalid values are ignored.
func (a *Axis) Include(x float64) {
	if !a.IsValidValue(x) {
		return
	}
	if math.IsNaN(a.dataMin) || x < a.dataMin {
		a.dataMin = x
	}
	if math.IsNaN(a.dataMax) || x > a.dataMax {
		a.dataMax = x
	}
	if math.IsNaN(a.actualMin) || x < a.actualMin {
		a.actualMin = x
	}
	if math.IsNaN(a.actualMax) || x > a.actualMax {
		a.actualMax = x
	}
}

// ResetDataMaxMin forgets the included data and the actual range,
// keeping Minimum and Maximum.
func (a *Axis) ResetDataMaxMin() {
	nan := math.NaN()
	a.dataMin, a.dataMax = nan, nan
	a.actualMin, a.actualMax = nan, nan
}

// Reset clears Minimum and Maximum as well as the data and actual
// ranges, so the next update cycle derives the range from data again.
func (a *Axis) Reset() {
	a.Minimum, a.Maximum = math.NaN(), math.NaN()
	a.ResetDataMaxMin()
}

func (a *Axis) isAngle() bool {
	_, ok := a.Kind.(*Angle)
	return ok
}

func (a *Axis) isMagnitude() bool {
	_, ok := a.Kind.(*Magnitude)
	return ok
}

func (a *Axis) resolved() bool {
	return !math.IsNaN(a.actualMin) && !math.IsNaN(a.actualMax) && a.actualMax > a.actualMin
}

func (a *Axis) logger() logrus.FieldLogger {
	return Logger.WithFields(logrus.Fields{"axis": a.Key, "position": a.Position})
}
