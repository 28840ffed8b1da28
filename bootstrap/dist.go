// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"sync"

	"github.com/aclements/go-moremath/stats"
)

// A Distribution is the bootstrap distribution of a statistic: one
// value per resample, across all workers, in no particular order.
type Distribution struct {
	Values []float64

	// Workers is the number of workers that produced Values.
	Workers int
	// ResampleSize is the number of values drawn per resample.
	ResampleSize int
}

// Summary describes a Distribution.
type Summary struct {
	N        int
	Mean     float64
	StdDev   float64
	Min, Max float64
	Center   float64 // median
}

// Summary computes descriptive statistics of d. The mean, center,
// and standard deviation are NaN if d is empty.
func (d *Distribution) Summary() Summary {
	samp := stats.Sample{Xs: append([]float64(nil), d.Values...)}
	// Speed up order statistics.
	samp.Sort()
	lo, hi := samp.Bounds()
	return Summary{
		N:      len(samp.Xs),
		Mean:   samp.Mean(),
		StdDev: samp.StdDev(),
		Min:    lo,
		Max:    hi,
		Center: samp.Percentile(0.5),
	}
}

// collector accumulates results from concurrent workers.
type collector struct {
	mu     sync.Mutex
	values []float64
	taken  bool
}

func newCollector(capacity int) *collector {
	return &collector{values: make([]float64, 0, capacity)}
}

// add appends a worker's results.
func (c *collector) add(batch []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.taken {
		panic("bootstrap: add after take")
	}
	c.values = append(c.values, batch...)
}

// take returns everything added so far. The collector accepts no
// further adds.
func (c *collector) take() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.taken = true
	vs := c.values
	c.values = nil
	return vs
}
