// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks chooses tick intervals and generates tick values for
// plot axes.
//
// Intervals follow the 1-2-5 "nice number" progression: the chosen
// major step always has a leading digit of 1, 2 or 5 and is the
// smallest such step for which the labels still fit in the available
// screen length. Tick values are generated for linear, logarithmic,
// calendar (month and year aligned) and duration axes.
//
// Invalid arguments (a non-positive step, an empty range) are
// programming errors and are reported as errors wrapping one of the
// Err values below. Generation is bounded by MaxIterations so that a
// pathological step can never hang a caller.
package ticks

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidStep      = errors.New("ticks: step must be positive and finite")
	ErrInvalidRange     = errors.New("ticks: max must be greater than min")
	ErrZeroRange        = errors.New("ticks: range cannot be zero")
	ErrZeroIntervalSize = errors.New("ticks: maximum interval size cannot be zero")
	ErrInvalidBase      = errors.New("ticks: logarithm base must be greater than 1")
)

// MaxIterations bounds the number of values any generator in this
// package will produce.
const MaxIterations = 1000

// Logger receives diagnostics about truncated tick sequences.
var Logger logrus.FieldLogger = logrus.StandardLogger()
