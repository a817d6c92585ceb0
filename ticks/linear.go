// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-axis/internal/numfmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Linear returns the multiples of step in [min, max], in increasing
// order. Values within |max-min|·1e-6 of either end are included.
//
// Linear returns an error if step is not positive or max <= min.
func Linear(min, max, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, errors.Wrapf(ErrInvalidStep, "step %v", step)
	}
	if !(max > min) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, errors.Wrapf(ErrInvalidRange, "range [%v, %v]", min, max)
	}

	eps := math.Abs(max-min) * 1e-6
	x0 := math.Round(min/step) * step
	var values []float64
	for i := 0; ; i++ {
		// Multiply rather than accumulate so error does not build
		// up over long sequences.
		x := x0 + float64(i)*step
		if x > max+eps {
			break
		}
		if i >= MaxIterations {
			Logger.WithFields(logrus.Fields{"min": min, "max": max, "step": step}).Debug("tick sequence truncated")
			break
		}
		if x < min-eps {
			continue
		}
		values = append(values, numfmt.RemoveNoise(x))
	}
	return values, nil
}
