// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Config controls a bootstrap run.
type Config struct {
	// ResampleRatio is the size of each resample as a fraction
	// of the sample size.
	ResampleRatio float64

	// ResampleCount is the number of resamples each worker
	// draws.
	ResampleCount int

	// MinWorkers is the fewest workers a run uses, regardless of
	// sample size.
	MinWorkers int

	// DataPerWorker is the number of sample values per worker
	// beyond MinWorkers.
	DataPerWorker int

	// NewSource, if non-nil, returns the random source for the
	// given worker. Each worker uses its source exclusively. If
	// nil, each worker gets a PCG source with random seeds.
	NewSource func(worker int) rand.Source
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		ResampleRatio: 0.5,
		ResampleCount: 100000,
		MinWorkers:    12,
		DataPerWorker: 10000,
	}
}

// Workers returns the number of workers used for a sample of n
// values.
func (c Config) Workers(n int) int {
	return max(c.MinWorkers, n/c.DataPerWorker)
}

// ResampleSize returns the number of values drawn per resample of a
// sample of n values.
func (c Config) ResampleSize(n int) int {
	return int(math.Floor(c.ResampleRatio * float64(n)))
}

func (c Config) validate() error {
	switch {
	case math.IsNaN(c.ResampleRatio) || math.IsInf(c.ResampleRatio, 0) || c.ResampleRatio <= 0:
		return fmt.Errorf("resample ratio %v must be positive and finite", c.ResampleRatio)
	case c.ResampleCount < 0:
		return fmt.Errorf("resample count %d must not be negative", c.ResampleCount)
	case c.MinWorkers < 1:
		return fmt.Errorf("minimum workers %d must be at least 1", c.MinWorkers)
	case c.DataPerWorker < 1:
		return fmt.Errorf("data per worker %d must be at least 1", c.DataPerWorker)
	}
	return nil
}

func (c Config) source(worker int) rand.Source {
	if c.NewSource != nil {
		return c.NewSource(worker)
	}
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
