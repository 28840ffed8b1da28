// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sigfig formats numbers to three significant digits with
// an SI prefix.
package sigfig

import (
	"fmt"
	"math"
	"strconv"
)

// Scaler formats numbers at a fixed scale.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // SI prefix
}

// Format formats val and appends the prefix according to the given
// scale.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// Exact formats numbers with the smallest number of digits that
// represent them exactly and no prefix, for output consumed by other
// programs.
var Exact = Scaler{-1, 1, ""}

type prefix struct {
	factor float64
	name   string
	// Thresholds above which a value prints as 100, 10.0, or 1.00
	// at this factor.
	t100, t10, t1 float64
}

var prefixes = mkPrefixes()

func mkPrefixes() []prefix {
	// Thresholds are derived from the printed representation so
	// they match how formatting itself rounds.
	var ps []prefix
	exp := 12
	for _, p := range []string{"T", "G", "M", "k", "", "m", "µ", "n"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.95e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".9995e%d", exp), 64)
		ps = append(ps, prefix{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return ps
}

// Format formats val to at least three significant digits.
func Format(val float64) string {
	return Common(val).Format(val)
}

// Common returns a Scaler that shows every value in vals with at
// least three significant digits. NaN and infinite values are
// ignored.
func Common(vals ...float64) Scaler {
	// The common scale is set by the non-zero value closest to
	// zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{2, 1, ""}
	}

	for i, p := range prefixes {
		last := i == len(prefixes)-1
		switch {
		case min >= p.t100:
			return Scaler{0, p.factor, p.name}
		case min >= p.t10:
			return Scaler{1, p.factor, p.name}
		case min >= p.t1 || last:
			return Scaler{2, p.factor, p.name}
		}
	}
	panic("not reachable")
}
