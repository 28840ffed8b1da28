// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/statboot/bootstrap/bootstrap"
)

func TestPrintSummary(t *testing.T) {
	d := &bootstrap.Distribution{Values: []float64{1500, 2500, 3500}}
	var b strings.Builder
	printSummary(&b, d.Summary(), false)
	want := `N 3
mean     2.50k
median   2.50k
std dev  1.00k
min      1.50k
max      3.50k
`
	if got := b.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	b.Reset()
	printSummary(&b, d.Summary(), true)
	if got := b.String(); !strings.Contains(got, "mean     2500\n") {
		t.Errorf("exact output missing mean:\n%s", got)
	}
}
