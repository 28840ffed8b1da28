// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"errors"
	"math"
)

// ErrEmptyResample is returned by Statistic.Finalize when asked to
// summarize a resample with no values.
var ErrEmptyResample = errors.New("empty resample")

// A Statistic computes a scalar summary of a resample by folding
// each drawn value into an accumulator of type A.
//
// Implementations must not hold mutable state. The engine calls the
// same Statistic from many goroutines at once.
type Statistic[A any] interface {
	// Zero returns the accumulator for an empty resample.
	Zero() A
	// Evolve folds x into acc.
	Evolve(acc A, x float64) A
	// Finalize converts the accumulator of a resample of n
	// values into the statistic. It must return an error, not
	// NaN, if n is 0.
	Finalize(acc A, n int) (float64, error)
}

// Mean is the arithmetic mean.
type Mean struct{}

// Running is the accumulator of Mean. It keeps the running mean
// rather than the sum, so values near the float64 limits do not
// overflow. Lo and Hi track the smallest and largest values folded
// in and bound the result against rounding: the mean of a constant
// resample is exactly that constant.
type Running struct {
	N      int
	Mean   float64
	Lo, Hi float64
}

func (Mean) Zero() Running {
	return Running{Lo: math.Inf(1), Hi: math.Inf(-1)}
}

func (Mean) Evolve(acc Running, x float64) Running {
	acc.N++
	// Scale both terms before subtracting; x-acc.Mean can
	// overflow when they have opposite signs.
	k := float64(acc.N)
	acc.Mean += x/k - acc.Mean/k
	acc.Lo = math.Min(acc.Lo, x)
	acc.Hi = math.Max(acc.Hi, x)
	return acc
}

func (Mean) Finalize(acc Running, n int) (float64, error) {
	if n <= 0 || acc.N == 0 {
		return 0, ErrEmptyResample
	}
	m := acc.Mean
	if m < acc.Lo {
		m = acc.Lo
	} else if m > acc.Hi {
		m = acc.Hi
	}
	return m, nil
}

// Moments is the accumulator of Variance.
type Moments struct {
	N    int
	Mean float64
	M2   float64 // sum of squared deviations from Mean
}

// Variance is the population variance of a resample, accumulated
// with Welford's method.
type Variance struct{}

func (Variance) Zero() Moments { return Moments{} }

func (Variance) Evolve(m Moments, x float64) Moments {
	m.N++
	delta := x - m.Mean
	m.Mean += delta / float64(m.N)
	m.M2 += delta * (x - m.Mean)
	return m
}

func (Variance) Finalize(m Moments, n int) (float64, error) {
	if n <= 0 || m.N == 0 {
		return 0, ErrEmptyResample
	}
	return m.M2 / float64(n), nil
}
