// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstrap estimates the sampling distribution of a
// statistic by resampling with replacement.
//
// Bootstrap splits the work across Config.Workers goroutines. Each
// worker owns a private random source, draws Config.ResampleCount
// resamples from the shared sample, and computes the statistic of
// each. The results of all workers are merged into one Distribution.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/statboot/bootstrap/samplefmt"
	"golang.org/x/sync/errgroup"
)

var errNaN = errors.New("statistic is NaN")

// maxResampleSize bounds the resample size so it converts to an int
// on every platform.
const maxResampleSize = math.MaxInt32

// Bootstrap computes the bootstrap distribution of stat over sample.
//
// The result has exactly Workers(n) * ResampleCount values. If any
// worker fails, or ctx is done first, Bootstrap returns an
// *EngineError and no distribution.
func Bootstrap[A any](ctx context.Context, sample samplefmt.Sample, stat Statistic[A], cfg Config) (*Distribution, error) {
	n := sample.Len()
	if n == 0 {
		return nil, &EngineError{Kind: EmptySample, Worker: -1}
	}
	if err := cfg.validate(); err != nil {
		return nil, &EngineError{Kind: BadConfig, Worker: -1, Err: err}
	}
	if f := math.Floor(cfg.ResampleRatio * float64(n)); f >= maxResampleSize {
		err := fmt.Errorf("resample ratio %v with %d values: resamples of %v values are too large", cfg.ResampleRatio, n, f)
		return nil, &EngineError{Kind: BadConfig, Worker: -1, Err: err}
	}
	size := cfg.ResampleSize(n)
	if size <= 0 {
		err := fmt.Errorf("resample ratio %v with %d values: %w", cfg.ResampleRatio, n, ErrEmptyResample)
		return nil, &EngineError{Kind: BadConfig, Worker: -1, Err: err}
	}

	workers := cfg.Workers(n)
	coll := newCollector(workers * cfg.ResampleCount)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			return resampleWorker(gctx, w, sample, stat, cfg, size, coll)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Distribution{
		Values:       coll.take(),
		Workers:      workers,
		ResampleSize: size,
	}, nil
}

// BootstrapMean computes the bootstrap distribution of the mean of
// sample.
func BootstrapMean(ctx context.Context, sample samplefmt.Sample, cfg Config) (*Distribution, error) {
	return Bootstrap[Running](ctx, sample, Mean{}, cfg)
}

// resampleWorker draws cfg.ResampleCount resamples of size values
// each and adds their statistics to coll in one batch.
func resampleWorker[A any](ctx context.Context, id int, sample samplefmt.Sample, stat Statistic[A], cfg Config, size int, coll *collector) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &EngineError{Kind: WorkerFailed, Worker: id, Err: &PanicError{p}}
		}
	}()

	rng := rand.New(cfg.source(id))
	done := ctx.Done()
	n := sample.Len()
	results := make([]float64, 0, cfg.ResampleCount)
	for i := 0; i < cfg.ResampleCount; i++ {
		select {
		case <-done:
			return &EngineError{Kind: Canceled, Worker: -1, Err: ctx.Err()}
		default:
		}

		acc := stat.Zero()
		for j := 0; j < size; j++ {
			acc = stat.Evolve(acc, sample.At(rng.IntN(n)))
		}
		v, err := stat.Finalize(acc, size)
		if err == nil && math.IsNaN(v) {
			err = errNaN
		}
		if err != nil {
			return &EngineError{Kind: WorkerFailed, Worker: id, Err: err}
		}
		results = append(results, v)
	}

	coll.add(results)
	return nil
}
