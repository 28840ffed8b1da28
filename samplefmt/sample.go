// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samplefmt reads numeric samples from delimited byte streams.
//
// A sample is written as a sequence of floating-point literals
// separated by any mix of spaces, commas, line feeds, and carriage
// returns. Runs of delimiters collapse, so "1,2\r\n 3,," is the sample
// [1 2 3].
package samplefmt

import "github.com/aclements/go-moremath/stats"

// A Sample is an ordered sequence of observations. A Sample is
// immutable once constructed and is safe for concurrent use by
// multiple goroutines.
type Sample struct {
	xs []float64
}

// NewSample returns a Sample holding a copy of xs.
func NewSample(xs ...float64) Sample {
	if len(xs) == 0 {
		return Sample{}
	}
	return Sample{append([]float64(nil), xs...)}
}

// Len returns the number of observations in s.
func (s Sample) Len() int {
	return len(s.xs)
}

// At returns the i'th observation of s.
func (s Sample) At(i int) float64 {
	return s.xs[i]
}

// Values returns a copy of the observations of s, in order.
func (s Sample) Values() []float64 {
	return append([]float64(nil), s.xs...)
}

// Stats returns a copy of s as a stats.Sample for computing
// descriptive statistics.
func (s Sample) Stats() stats.Sample {
	return stats.Sample{Xs: s.Values()}
}
