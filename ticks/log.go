// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-axis/internal/numfmt"
	"github.com/aclements/go-moremath/scale"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Log returns the tick values of a logarithmic axis covering [min,
// max]. Major ticks are the powers base^k that fall in the range and
// minor ticks are base^k·i for i = 2 .. base-1.
//
// If the range spans less than one power of base, fewer than two
// major ticks are returned; callers are expected to fall back to
// Linear in that case.
func Log(min, max, base float64) (major, minor []float64, err error) {
	if !(base > 1) || math.IsInf(base, 0) {
		return nil, nil, errors.Wrapf(ErrInvalidBase, "base %v", base)
	}
	if !(min > 0) || !(max > min) || math.IsInf(max, 0) {
		return nil, nil, errors.Wrapf(ErrInvalidRange, "logarithmic range [%v, %v]", min, max)
	}

	lb := math.Log(base)
	e0 := int(math.Floor(math.Log(min) / lb))
	e1 := int(math.Ceil(math.Log(max) / lb))
	lo, hi := min*(1-1e-9), max*(1+1e-9)

	// Majors and minors are capped separately, so a truncated minor
	// sequence still leaves every power in the range.
	nminor := 0
	for e := e0; e <= e1; e++ {
		if e-e0 >= MaxIterations {
			Logger.WithFields(logrus.Fields{"min": min, "max": max, "base": base}).Debug("major tick sequence truncated")
			break
		}
		d := numfmt.RemoveNoise(math.Pow(base, float64(e)))
		if d >= lo && d <= hi {
			major = append(major, d)
		}
		for i := 2; float64(i) < base && nminor <= MaxIterations; i++ {
			if nminor++; nminor > MaxIterations {
				Logger.WithFields(logrus.Fields{"min": min, "max": max, "base": base}).Debug("minor tick sequence truncated")
				break
			}
			v := numfmt.RemoveNoise(d * float64(i))
			if v > hi {
				break
			}
			if v >= lo {
				minor = append(minor, v)
			}
		}
	}
	return major, minor, nil
}

// decadeTicker thins a sequence of powers by keeping every
// 2^level-th one.
type decadeTicker []float64

func (t decadeTicker) CountTicks(level int) int {
	s := 1 << uint(level)
	return (len(t) + s - 1) / s
}

func (t decadeTicker) TicksAtLevel(level int) interface{} {
	s := 1 << uint(level)
	out := make([]float64, 0, t.CountTicks(level))
	for i := 0; i < len(t); i += s {
		out = append(out, t[i])
	}
	return out
}

// ThinDecades reduces a sequence of major logarithmic ticks to at most
// maxCount values by keeping every 2^level-th one, for the smallest
// level that fits. The first tick is always kept. If maxCount < 1,
// major is returned unchanged.
func ThinDecades(major []float64, maxCount int) []float64 {
	if maxCount < 1 || len(major) <= maxCount {
		return major
	}
	o := scale.TickOptions{Max: maxCount, MinLevel: 0, MaxLevel: 30}
	level, ok := o.FindLevel(decadeTicker(major), 0)
	if !ok {
		return major
	}
	return decadeTicker(major).TicksAtLevel(level).([]float64)
}
