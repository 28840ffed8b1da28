// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/statboot/bootstrap/samplefmt"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ResampleCount = 500
	cfg.MinWorkers = 4
	return cfg
}

func seeded(seed uint64) func(int) rand.Source {
	return func(worker int) rand.Source {
		return rand.NewPCG(seed, uint64(worker))
	}
}

func TestBootstrapMeanConstant(t *testing.T) {
	for _, c := range []float64{5, 0.1, -1.0 / 3, 1e300} {
		xs := make([]float64, 37)
		for i := range xs {
			xs[i] = c
		}
		d, err := BootstrapMean(context.Background(), samplefmt.NewSample(xs...), testConfig())
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range d.Values {
			if v != c {
				t.Fatalf("constant sample %v: got %v in distribution", c, v)
			}
		}
	}
}

func TestBootstrapMeanBounds(t *testing.T) {
	sample := samplefmt.NewSample(3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7)
	lo, hi := sample.Stats().Bounds()
	cfg := testConfig()
	d, err := BootstrapMean(context.Background(), sample, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := cfg.Workers(sample.Len()) * cfg.ResampleCount; len(d.Values) != want {
		t.Errorf("got %d values, want %d", len(d.Values), want)
	}
	if d.Workers != cfg.MinWorkers {
		t.Errorf("got %d workers, want %d", d.Workers, cfg.MinWorkers)
	}
	if d.ResampleSize != 7 {
		t.Errorf("got resample size %d, want 7", d.ResampleSize)
	}
	for _, v := range d.Values {
		if v < lo || v > hi {
			t.Fatalf("value %v outside sample bounds [%v, %v]", v, lo, hi)
		}
	}
}

func TestBootstrapMeanCenter(t *testing.T) {
	// The bootstrap distribution of the mean is centered on the
	// sample mean.
	sample := samplefmt.NewSample(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	cfg := testConfig()
	cfg.ResampleRatio = 1
	cfg.ResampleCount = 2000
	cfg.NewSource = seeded(1)
	d, err := BootstrapMean(context.Background(), sample, cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := d.Summary()
	if math.Abs(s.Mean-4.5) > 0.1 {
		t.Errorf("got mean of means %v, want about 4.5", s.Mean)
	}
	// The standard error of the mean of 10 draws from 0..9.
	if want := math.Sqrt(8.25 / 10); math.Abs(s.StdDev-want) > 0.1 {
		t.Errorf("got standard error %v, want about %v", s.StdDev, want)
	}
}

func TestBootstrapRepeated(t *testing.T) {
	sample := samplefmt.NewSample(1, 2, 3, 4, 5, 6, 7, 8)
	cfg := testConfig()
	cfg.MinWorkers = 32
	cfg.ResampleCount = 100
	want := cfg.Workers(sample.Len()) * cfg.ResampleCount
	for i := 0; i < 20; i++ {
		d, err := BootstrapMean(context.Background(), sample, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(d.Values) != want {
			t.Fatalf("run %d: got %d values, want %d", i, len(d.Values), want)
		}
	}
}

func TestBootstrapSeeded(t *testing.T) {
	// With fixed sources, every run computes the same multiset
	// of values, so no worker's batch is lost or duplicated.
	sample := samplefmt.NewSample(2, 3, 5, 7, 11, 13, 17, 19, 23)
	cfg := testConfig()
	cfg.MinWorkers = 16
	cfg.ResampleCount = 50
	cfg.NewSource = seeded(42)
	run := func() []float64 {
		d, err := BootstrapMean(context.Background(), sample, cfg)
		if err != nil {
			t.Fatal(err)
		}
		sort.Float64s(d.Values)
		return d.Values
	}
	first := run()
	for i := 0; i < 5; i++ {
		if got := run(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestBootstrapVariance(t *testing.T) {
	sample := samplefmt.NewSample(1, 1, 1, 1, 1, 1, 1, 1)
	d, err := Bootstrap[Moments](context.Background(), sample, Variance{}, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range d.Values {
		if v != 0 {
			t.Fatalf("constant sample: got variance %v", v)
		}
	}

	sample = samplefmt.NewSample(-1, 1)
	d, err = Bootstrap[Moments](context.Background(), sample, Variance{}, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range d.Values {
		// A resample of one value has variance 0.
		if v != 0 {
			t.Fatalf("single-value resamples: got variance %v", v)
		}
	}
}

func TestBootstrapErrors(t *testing.T) {
	ctx := context.Background()
	check := func(t *testing.T, err error, kind ErrorKind) *EngineError {
		t.Helper()
		var eerr *EngineError
		if !errors.As(err, &eerr) {
			t.Fatalf("got %v, want EngineError", err)
		}
		if eerr.Kind != kind {
			t.Fatalf("got %v, want %v", eerr, kind)
		}
		return eerr
	}

	t.Run("empty sample", func(t *testing.T) {
		d, err := BootstrapMean(ctx, samplefmt.Sample{}, testConfig())
		check(t, err, EmptySample)
		if d != nil {
			t.Errorf("got distribution with error")
		}
	})

	t.Run("empty resample", func(t *testing.T) {
		// floor(0.5 * 1) == 0
		_, err := BootstrapMean(ctx, samplefmt.NewSample(1), testConfig())
		check(t, err, BadConfig)
		if !errors.Is(err, ErrEmptyResample) {
			t.Errorf("got %v, want %v", err, ErrEmptyResample)
		}
	})

	for _, mod := range []struct {
		name string
		f    func(*Config)
	}{
		{"zero ratio", func(c *Config) { c.ResampleRatio = 0 }},
		{"NaN ratio", func(c *Config) { c.ResampleRatio = math.NaN() }},
		{"Inf ratio", func(c *Config) { c.ResampleRatio = math.Inf(1) }},
		{"negative count", func(c *Config) { c.ResampleCount = -1 }},
		{"zero workers", func(c *Config) { c.MinWorkers = 0 }},
		{"zero data per worker", func(c *Config) { c.DataPerWorker = 0 }},
		{"huge ratio", func(c *Config) { c.ResampleRatio = 1e20 }},
		{"ratio past int32", func(c *Config) { c.ResampleRatio = float64(math.MaxInt32) }},
	} {
		t.Run(mod.name, func(t *testing.T) {
			cfg := testConfig()
			mod.f(&cfg)
			_, err := BootstrapMean(ctx, samplefmt.NewSample(1, 2, 3), cfg)
			check(t, err, BadConfig)
		})
	}

	t.Run("panicking source", func(t *testing.T) {
		cfg := testConfig()
		cfg.NewSource = func(worker int) rand.Source {
			if worker == 2 {
				return panicSource{}
			}
			return rand.NewPCG(1, uint64(worker))
		}
		d, err := BootstrapMean(ctx, samplefmt.NewSample(1, 2, 3, 4), cfg)
		eerr := check(t, err, WorkerFailed)
		if eerr.Worker != 2 {
			t.Errorf("got failed worker %d, want 2", eerr.Worker)
		}
		var perr *PanicError
		if !errors.As(err, &perr) || perr.Value != "broken source" {
			t.Errorf("got %v, want PanicError(broken source)", err)
		}
		if d != nil {
			t.Errorf("got distribution with error")
		}
	})

	t.Run("finalize error", func(t *testing.T) {
		_, err := Bootstrap[Running](ctx, samplefmt.NewSample(1, 2, 3, 4), failing{}, testConfig())
		check(t, err, WorkerFailed)
		if !errors.Is(err, errFailing) {
			t.Errorf("got %v, want %v", err, errFailing)
		}
	})

	t.Run("NaN statistic", func(t *testing.T) {
		_, err := Bootstrap[Running](ctx, samplefmt.NewSample(1, 2, 3, 4), nanStat{}, testConfig())
		check(t, err, WorkerFailed)
		if !errors.Is(err, errNaN) {
			t.Errorf("got %v, want %v", err, errNaN)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := BootstrapMean(cctx, samplefmt.NewSample(1, 2, 3, 4), testConfig())
		check(t, err, Canceled)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want %v", err, context.Canceled)
		}
	})
}

func TestEngineErrorMessage(t *testing.T) {
	err := &EngineError{Kind: WorkerFailed, Worker: 3, Err: &PanicError{"oops"}}
	if got, want := err.Error(), "bootstrap: worker failed: worker 3: panic: oops"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	err = &EngineError{Kind: EmptySample, Worker: -1}
	if got, want := err.Error(), "bootstrap: empty sample"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !strings.Contains(ErrorKind(99).String(), "99") {
		t.Errorf("unknown kind: got %q", ErrorKind(99).String())
	}
}

type panicSource struct{}

func (panicSource) Uint64() uint64 {
	panic("broken source")
}

var errFailing = errors.New("failing statistic")

type failing struct{ Mean }

func (failing) Finalize(Running, int) (float64, error) {
	return 0, errFailing
}

type nanStat struct{ Mean }

func (nanStat) Finalize(Running, int) (float64, error) {
	return math.NaN(), nil
}

func BenchmarkBootstrapMean(b *testing.B) {
	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = float64(i)
	}
	sample := samplefmt.NewSample(xs...)
	cfg := DefaultConfig()
	cfg.ResampleCount = 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BootstrapMean(context.Background(), sample, cfg); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(cfg.Workers(len(xs))*cfg.ResampleCount), "resamples/op")
}
