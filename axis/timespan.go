// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-axis/ticks"
)

// DurationToDouble converts d to a time-span axis value in seconds.
func DurationToDouble(d time.Duration) float64 { return d.Seconds() }

// DoubleToDuration converts a time-span axis value back to a
// duration, rounded to the nanosecond.
func DoubleToDuration(v float64) time.Duration {
	return time.Duration(math.Round(v * 1e9))
}

// TimeSpan is the Kind of a duration axis. Values are seconds.
type TimeSpan struct{}

// NewTimeSpan returns a duration axis.
func NewTimeSpan(pos Position) *Axis {
	return New(pos, TimeSpan{})
}

func (TimeSpan) PreTransform(x float64) float64         { return x }
func (TimeSpan) PostInverseTransform(x float64) float64 { return x }

func (TimeSpan) MajorInterval(a *Axis, availableSize float64) float64 {
	iv, err := ticks.DurationInterval(availableSize, a.IntervalLength, a.actualMax-a.actualMin)
	if err != nil {
		a.logger().WithError(err).Debug("no duration interval")
		return math.NaN()
	}
	return iv
}

func (TimeSpan) MinorInterval(a *Axis, major float64) float64 {
	return ticks.MinorInterval(major)
}

func (TimeSpan) TickValues(a *Axis) (major, minor []float64, err error) {
	return linearTicks(a)
}

// FormatValue formats x seconds using StringFormat, or "h:mm:ss".
func (TimeSpan) FormatValue(a *Axis, x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	f := a.StringFormat
	if f == "" {
		f = "h:mm:ss"
	}
	return FormatDuration(x, f)
}

// FormatDuration formats secs according to pattern. Runs of h, m and s
// are replaced by the whole hours, the minutes (0-59) and the seconds
// (0-59), zero-padded to the run length. A run of f is replaced by
// that many digits of the fractional second. Everything else is
// copied. Negative durations are prefixed with "-".
func FormatDuration(secs float64, pattern string) string {
	var b strings.Builder
	if secs < 0 {
		b.WriteByte('-')
		secs = -secs
	}
	whole := math.Floor(secs)
	frac := secs - whole
	h := int64(whole) / 3600
	m := int64(whole) / 60 % 60
	s := int64(whole) % 60

	for i := 0; i < len(pattern); {
		c := pattern[i]
		n := 1
		for i+n < len(pattern) && pattern[i+n] == c {
			n++
		}
		switch c {
		case 'h':
			b.WriteString(pad(h, n))
		case 'm':
			b.WriteString(pad(m, n))
		case 's':
			b.WriteString(pad(s, n))
		case 'f':
			digits := int64(frac*math.Pow10(n) + 1e-6)
			b.WriteString(pad(digits, n))
		default:
			b.WriteString(pattern[i : i+n])
		}
		i += n
	}
	return b.String()
}

func pad(v int64, width int) string {
	s := strconv.FormatInt(v, 10)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
