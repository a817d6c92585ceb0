// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"testing"
	"time"

	"github.com/aclements/go-axis/internal/numfmt"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActualInterval(t *testing.T) {
	for _, test := range []struct {
		avail, size, rng float64
		want             float64
	}{
		// 6.67 intervals fit; 20 gives 4.85, 10 would give 9.7.
		{400, 60, 97, 20},
		{400, 60, 100, 20},
		{600, 60, 100, 10},
		{1000, 60, 1, 0.1},
		{200, 60, 1, 0.5},
		{400, 60, 0.3, 0.05},
		{400, 60, -97, 20},
		{400, 60, 1e6, 200000},
	} {
		got, err := ActualInterval(test.avail, test.size, test.rng)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "ActualInterval(%v, %v, %v)", test.avail, test.size, test.rng)
	}
}

func TestActualIntervalIsNice(t *testing.T) {
	for _, rng := range []float64{0.0007, 0.3, 1, 3.7, 97, 123.4, 1e5, 7.7e9} {
		for _, avail := range []float64{50, 199, 400, 1234, 5000} {
			a, err := ActualInterval(avail, 60, rng)
			require.NoError(t, err)
			b, err := ActualInterval(avail, 60, rng)
			require.NoError(t, err)
			assert.Equal(t, a, b)

			m := numfmt.RemoveNoise(a / math.Pow10(int(math.Floor(math.Log10(a)+1e-12))))
			assert.Contains(t, []float64{1, 2, 5}, m, "interval %v for range %v", a, rng)
		}
	}
}

func TestActualIntervalErrors(t *testing.T) {
	_, err := ActualInterval(400, 0, 10)
	assert.ErrorIs(t, err, ErrZeroIntervalSize)
	_, err = ActualInterval(400, 60, 0)
	assert.ErrorIs(t, err, ErrZeroRange)

	got, err := ActualInterval(0, 60, 10)
	require.NoError(t, err)
	assert.Equal(t, 60.0, got)
}

func TestMinorInterval(t *testing.T) {
	assert.Equal(t, 4.0, MinorInterval(20))
	assert.Equal(t, 2.0, MinorInterval(10))
	assert.Equal(t, 12.5, MinorInterval(50))
	assert.Equal(t, 0.02, MinorInterval(0.1))
	assert.True(t, math.IsNaN(MinorInterval(0)))
}

func TestDurationInterval(t *testing.T) {
	got, err := DurationInterval(400, 60, 100)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)

	got, err = DurationInterval(400, 60, 3000)
	require.NoError(t, err)
	assert.Equal(t, 600.0, got)

	// Beyond the table, fall back to nice intervals.
	got, err = DurationInterval(400, 60, 100000)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, got)
}

func TestLinear(t *testing.T) {
	for _, test := range []struct {
		min, max, step float64
		want           []float64
	}{
		{0, 97, 20, []float64{0, 20, 40, 60, 80}},
		{0, 100, 20, []float64{0, 20, 40, 60, 80, 100}},
		{0.3, 1, 0.1, []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{-0.5, 2.5, 1, []float64{0, 1, 2}},
		{-12, 7, 5, []float64{-10, -5, 0, 5}},
	} {
		got, err := Linear(test.min, test.max, test.step)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "Linear(%v, %v, %v)", test.min, test.max, test.step)
	}
}

func TestLinearErrors(t *testing.T) {
	_, err := Linear(0, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)
	_, err = Linear(0, 10, -1)
	assert.ErrorIs(t, err, ErrInvalidStep)
	_, err = Linear(0, 10, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidStep)
	_, err = Linear(10, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Linear(10, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestLinearIterationCap(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	defer func(l logrus.FieldLogger) { Logger = l }(Logger)
	Logger = logger

	got, err := Linear(0, 1, 1e-9)
	require.NoError(t, err)
	assert.Len(t, got, MaxIterations)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "tick sequence truncated", hook.LastEntry().Message)
}

func TestLog(t *testing.T) {
	major, minor, err := Log(1, 1000, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 100, 1000}, major)
	assert.Equal(t, []float64{
		2, 3, 4, 5, 6, 7, 8, 9,
		20, 30, 40, 50, 60, 70, 80, 90,
		200, 300, 400, 500, 600, 700, 800, 900,
	}, minor)

	major, minor, err = Log(3, 30, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, major)
	assert.Equal(t, []float64{3, 4, 5, 6, 7, 8, 9, 20, 30}, minor)

	major, _, err = Log(1, 64, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4, 8, 16, 32, 64}, major)
}

func TestLogWideRange(t *testing.T) {
	major, minor, err := Log(1e-150, 1e150, 10)
	require.NoError(t, err)
	require.Len(t, major, 301)
	assert.InEpsilon(t, 1e-150, major[0], 1e-9)
	assert.InEpsilon(t, 1e150, major[len(major)-1], 1e-9)
	for i := 1; i < len(major); i++ {
		assert.InEpsilon(t, 10, major[i]/major[i-1], 1e-9)
	}
	// Only the minor ticks are truncated.
	assert.LessOrEqual(t, len(minor), MaxIterations)
	assert.Greater(t, len(minor), MaxIterations-10)
	assert.Less(t, minor[len(minor)-1], 1e-24)
}

func TestLogErrors(t *testing.T) {
	_, _, err := Log(1, 100, 1)
	assert.ErrorIs(t, err, ErrInvalidBase)
	_, _, err = Log(0, 100, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, _, err = Log(100, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestThinDecades(t *testing.T) {
	major, _, err := Log(1e-10, 1e10, 10)
	require.NoError(t, err)
	require.Len(t, major, 21)

	thin := ThinDecades(major, 6)
	assert.Equal(t, []float64{1e-10, 1e-6, 1e-2, 1e2, 1e6, 1e10}, thin)
	assert.Equal(t, major, ThinDecades(major, 0))
	assert.Equal(t, major, ThinDecades(major, 100))

	thin = ThinDecades(major, 11)
	assert.Len(t, thin, 11)
	assert.Equal(t, 1e-10, thin[0])
	assert.Equal(t, 1e10, thin[10])
}

func TestDateConversion(t *testing.T) {
	assert.Equal(t, 0.0, TimeToDays(Origin))
	assert.Equal(t, 1.5, TimeToDays(time.Date(1900, 1, 2, 12, 0, 0, 0, time.UTC)))

	for _, tm := range []time.Time{
		time.Date(2017, 3, 14, 15, 9, 26, 535e6, time.UTC),
		time.Date(1899, 12, 31, 23, 59, 59, 999e6, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2400, 2, 29, 6, 30, 0, 1e6, time.UTC),
	} {
		got := DaysToTime(TimeToDays(tm))
		assert.True(t, tm.Equal(got), "round trip %v gave %v", tm, got)
	}
}

func TestDateInterval(t *testing.T) {
	// One day over 400 units: 6 intervals fit, so 8 hours.
	iv, typ, err := DateInterval(400, 60, 1, Auto)
	require.NoError(t, err)
	assert.Equal(t, Hours, typ)
	assert.InDelta(t, 8*Hour, iv, 1e-12)

	// Half a year resolves to a month count.
	iv, typ, err = DateInterval(400, 60, 183, Auto)
	require.NoError(t, err)
	assert.Equal(t, Months, typ)
	assert.Equal(t, 1.0, iv)

	// Ten years resolves to a year count.
	iv, typ, err = DateInterval(400, 60, 3652.5, Auto)
	require.NoError(t, err)
	assert.Equal(t, Years, typ)
	assert.Equal(t, 2.0, iv)

	assert.Equal(t, Months, MinorIntervalType(Years))
	assert.Equal(t, Minutes, MinorIntervalType(Hours))
}

func TestCalendarMonths(t *testing.T) {
	min := TimeToDays(time.Date(2017, 1, 15, 0, 0, 0, 0, time.UTC))
	max := TimeToDays(time.Date(2017, 6, 10, 0, 0, 0, 0, time.UTC))
	got, err := Calendar(min, max, 1, Months, nil)
	require.NoError(t, err)

	var dates []time.Time
	for _, v := range got {
		dates = append(dates, DaysToTime(v))
	}
	want := []time.Time{
		time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.Len(t, dates, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(dates[i]), "tick %d: want %v, got %v", i, want[i], dates[i])
	}
	// Calendar months are not evenly spaced in days.
	assert.NotEqual(t, got[1]-got[0], got[2]-got[1])
}

func TestCalendarYears(t *testing.T) {
	min := TimeToDays(time.Date(2001, 7, 1, 0, 0, 0, 0, time.UTC))
	max := TimeToDays(time.Date(2009, 3, 1, 0, 0, 0, 0, time.UTC))
	got, err := Calendar(min, max, 2, Years, nil)
	require.NoError(t, err)
	require.Len(t, got, 4)
	// Anchored to January 1st of the first year, then every 2 years.
	for i, y := range []int{2003, 2005, 2007, 2009} {
		assert.True(t, DaysToTime(got[i]).Equal(time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)))
	}
}

func TestCalendarLocalDays(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	min := TimeToDays(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	got, err := Calendar(min, min+3, 1, Days, loc)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, v := range got {
		lt := DaysToTime(v).In(loc)
		assert.Equal(t, 0, lt.Hour(), "tick %d", i)
		assert.Equal(t, 0, lt.Minute(), "tick %d", i)
		assert.Equal(t, 2+i, lt.Day(), "tick %d", i)
	}

	// UTC day ticks are unchanged.
	got, err = Calendar(min, min+3, 1, Days, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []float64{min, min + 1, min + 2, min + 3}, got)
}

func TestCalendarShortSteps(t *testing.T) {
	got, err := Calendar(10, 20, 5, Days, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 15, 20}, got)

	got, err = Calendar(10, 20, 5, Auto, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 15, 20}, got)

	_, err = Calendar(10, 20, 0, Months, nil)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestParseIntervalType(t *testing.T) {
	typ, err := ParseIntervalType("Months")
	require.NoError(t, err)
	assert.Equal(t, Months, typ)
	assert.Equal(t, "months", typ.String())

	_, err = ParseIntervalType("fortnights")
	assert.Error(t, err)
}
