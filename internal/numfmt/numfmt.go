// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt contains the number helpers shared by the tick
// generators and axis labels: floating point noise removal,
// exponent/mantissa decomposition and label formatting.
package numfmt

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// significantDigits is the number of significant decimal digits kept
// by RemoveNoise. Float64 arithmetic noise lives in the 16th and 17th
// digit.
const significantDigits = 15

// RemoveNoise rounds v to 15 significant digits, which removes the
// representation noise left by float64 arithmetic (0.1+0.2 becomes
// 0.3). Values that were already representable are returned
// unchanged; sign and magnitude are always preserved.
func RemoveNoise(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	e := math.Log10(math.Abs(v))
	if math.Abs(e) < 27 {
		places := int32(significantDigits - 1 - int(math.Floor(e)))
		f, _ := decimal.NewFromFloat(v).Round(places).Float64()
		return f
	}
	// Outside the comfortable range of the decimal type, go through
	// the shortest string form instead.
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', significantDigits, 64), 64)
	if err != nil {
		return v
	}
	return f
}

// Exponent returns round(log10(|x|)). Exponent(0) is 0.
func Exponent(x float64) int {
	if x == 0 {
		return 0
	}
	return int(math.Round(math.Log10(math.Abs(x))))
}

// Mantissa returns x / 10^Exponent(x). Mantissa(0) is 0.
func Mantissa(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x / math.Pow10(Exponent(x))
}

// LeadingDigit returns x scaled into (1, 10] by a power of ten, so
// 20 gives 2, 50 gives 5 and 100 gives 10. x must be positive.
func LeadingDigit(x float64) float64 {
	e := int(math.Ceil(math.Log10(x)))
	return RemoveNoise(x / math.Pow10(e-1))
}

// FormatNumber formats x using the fmt verb format. If format is
// empty, x is written in general form: plain decimal notation for
// 1e-5 <= |x| < 1e15 and exponent notation otherwise.
func FormatNumber(x float64, format string) string {
	if format != "" {
		return fmt.Sprintf(format, x)
	}
	if x == 0 {
		return "0"
	}
	if a := math.Abs(x); a >= 1e15 || a < 1e-5 {
		return strconv.FormatFloat(x, 'E', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// FormatSuperExponent formats x as mantissa×10^exponent, for example
// "1.5×10^3". A mantissa of ±1 is dropped ("10^3").
func FormatSuperExponent(x float64, format string) string {
	if x == 0 {
		return "0"
	}
	exp := strconv.Itoa(Exponent(x))
	m := RemoveNoise(Mantissa(x))
	switch {
	case math.Abs(m-1) < 1e-6:
		return "10^" + exp
	case math.Abs(m+1) < 1e-6:
		return "-10^" + exp
	}
	return FormatNumber(m, format) + "×10^" + exp
}

// FormatSI formats x with an SI prefix and the given unit, keeping at
// most digits decimals ("1.5 k").
func FormatSI(x float64, digits int, unit string) string {
	return humanize.SIWithDigits(x, digits, unit)
}
