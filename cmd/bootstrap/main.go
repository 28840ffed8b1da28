// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bootstrap reads a numeric sample from input files and
// describes the bootstrap distribution of a statistic of that sample.
// If no inputs are provided, it reads from stdin.
//
// Values in the input are separated by any mix of spaces, commas, line
// feeds, and carriage returns. With -permissive, values that are not
// numbers are skipped; otherwise they are an error.
//
// For example,
//
//	bootstrap -stat mean -count 10000 data.txt
//
// draws 10000 resamples per worker from the values in data.txt and
// prints the distribution of their means.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/statboot/bootstrap/bootstrap"
	"github.com/statboot/bootstrap/internal/sigfig"
	"github.com/statboot/bootstrap/samplefmt"
)

func main() {
	log.SetPrefix("bootstrap: ")
	log.SetFlags(0)

	def := bootstrap.DefaultConfig()
	flagStat := flag.String("stat", "mean", "compute the distribution of `statistic` (mean or variance)")
	flagRatio := flag.Float64("ratio", def.ResampleRatio, "resample size as a `fraction` of the sample size")
	flagCount := flag.Int("count", def.ResampleCount, "`n` resamples per worker")
	flagMinWorkers := flag.Int("min-workers", def.MinWorkers, "use at least `n` workers")
	flagDataPerWorker := flag.Int("data-per-worker", def.DataPerWorker, "add a worker per `n` sample values")
	flagPermissive := flag.Bool("permissive", false, "skip values that are not numbers")
	flagExact := flag.Bool("exact", false, "print exact values instead of three significant digits")
	flagVerbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] [inputs...]

bootstrap reads a numeric sample from input files and describes the
bootstrap distribution of a statistic of that sample. If no inputs are
provided, it reads from stdin.

`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := def
	cfg.ResampleRatio = *flagRatio
	cfg.ResampleCount = *flagCount
	cfg.MinWorkers = *flagMinWorkers
	cfg.DataPerWorker = *flagDataPerWorker

	files := samplefmt.Files{Paths: flag.Args(), AllowStdin: true}
	if *flagPermissive {
		files.Policy = samplefmt.Permissive
	}
	sample, err := files.ReadAll()
	if err != nil {
		log.Fatal(err)
	}
	if n := files.Dropped(); n > 0 {
		log.Printf("skipped %d malformed values", n)
	}
	if *flagVerbose {
		n := sample.Len()
		log.Printf("%d values, %d workers x %d resamples of %d values", n, cfg.Workers(n), cfg.ResampleCount, cfg.ResampleSize(n))
	}

	ctx := context.Background()
	var dist *bootstrap.Distribution
	switch *flagStat {
	case "mean":
		dist, err = bootstrap.BootstrapMean(ctx, sample, cfg)
	case "variance":
		dist, err = bootstrap.Bootstrap[bootstrap.Moments](ctx, sample, bootstrap.Variance{}, cfg)
	default:
		log.Printf("unknown statistic %q", *flagStat)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	printSummary(os.Stdout, dist.Summary(), *flagExact)
}

func printSummary(w io.Writer, s bootstrap.Summary, exact bool) {
	scaler := sigfig.Exact
	if !exact {
		scaler = sigfig.Common(s.Mean, s.Center, s.Min, s.Max)
	}
	fmt.Fprintf(w, "N %d\n", s.N)
	for _, row := range []struct {
		label string
		val   float64
	}{
		{"mean", s.Mean},
		{"median", s.Center},
		{"std dev", s.StdDev},
		{"min", s.Min},
		{"max", s.Max},
	} {
		fmt.Fprintf(w, "%-8s %s\n", row.label, scaler.Format(row.val))
	}
}
