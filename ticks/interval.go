// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-axis/internal/numfmt"
	"github.com/pkg/errors"
)

// ActualInterval returns the major tick interval for a range of width
// rng drawn over availableSize screen units, where each labelled
// interval needs at least maxIntervalSize screen units.
//
// The search starts at the smallest power of ten covering rng and
// shrinks through the 10, 5, 2, 1 progression. It stops as soon as
// the next candidate would produce more than
// availableSize/maxIntervalSize intervals and returns the last
// candidate that did not.
//
// If availableSize <= 0, there is nothing to fit and maxIntervalSize
// is returned unchanged.
func ActualInterval(availableSize, maxIntervalSize, rng float64) (float64, error) {
	if availableSize <= 0 {
		return maxIntervalSize, nil
	}
	if maxIntervalSize == 0 || math.IsNaN(maxIntervalSize) {
		return 0, errors.Wrapf(ErrZeroIntervalSize, "interval size %v", maxIntervalSize)
	}
	rng = math.Abs(rng)
	if rng == 0 || math.IsNaN(rng) || math.IsInf(rng, 0) {
		return 0, errors.Wrapf(ErrZeroRange, "range %v", rng)
	}

	maxIntervalCount := availableSize / maxIntervalSize

	interval := math.Pow10(int(math.Ceil(math.Log10(rng))))
	candidate := interval
	for {
		if int(numfmt.LeadingDigit(candidate)) == 5 {
			candidate = numfmt.RemoveNoise(candidate / 2.5)
		} else {
			candidate = numfmt.RemoveNoise(candidate / 2)
		}
		if rng/candidate > maxIntervalCount {
			break
		}
		if candidate == 0 || math.IsNaN(candidate) || math.IsInf(candidate, 0) {
			break
		}
		interval = candidate
	}
	return interval, nil
}

// MinorInterval returns the minor tick interval for the major interval
// major: a quarter of it if its leading digit is 5 and a fifth
// otherwise. It returns NaN if major is not positive.
func MinorInterval(major float64) float64 {
	if !(major > 0) || math.IsInf(major, 0) {
		return math.NaN()
	}
	if int(numfmt.LeadingDigit(major)) == 5 {
		return numfmt.RemoveNoise(major / 4)
	}
	return numfmt.RemoveNoise(major / 5)
}

// goodDurationIntervals are the preferred duration intervals, in
// seconds.
var goodDurationIntervals = []float64{1, 5, 10, 30, 60, 120, 300, 600, 900, 1200, 1800, 3600}

// DurationInterval is ActualInterval for ranges measured in seconds.
// It prefers whole seconds, minutes and fractions of an hour, and
// falls back to ActualInterval for ranges of many hours.
func DurationInterval(availableSize, maxIntervalSize, rng float64) (float64, error) {
	if availableSize <= 0 {
		return maxIntervalSize, nil
	}
	if maxIntervalSize == 0 || math.IsNaN(maxIntervalSize) {
		return 0, errors.Wrapf(ErrZeroIntervalSize, "interval size %v", maxIntervalSize)
	}
	rng = math.Abs(rng)
	maxCount := math.Max(math.Floor(availableSize/maxIntervalSize), 2)
	for _, iv := range goodDurationIntervals {
		if rng/iv < maxCount {
			return iv, nil
		}
	}
	return ActualInterval(availableSize, maxIntervalSize, rng)
}
