// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import "os"

// Files reads one sample from the concatenation of a sequence of
// input files. A token never spans two files.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// Policy is applied to every file.
	Policy Policy

	reader  Reader
	dropped int
}

// ReadAll reads every file in Paths and returns the values of all
// of them, in order. If any file fails to open or parse, it returns
// an empty Sample and that error.
func (f *Files) ReadAll() (Sample, error) {
	paths := f.Paths
	if f.AllowStdin && len(paths) == 0 {
		paths = []string{"-"}
	}

	f.dropped = 0
	var xs []float64
	for _, path := range paths {
		file, isStdin := os.Stdin, true
		if !f.AllowStdin || path != "-" {
			var err error
			file, err = os.Open(path)
			if err != nil {
				return Sample{}, err
			}
			isStdin = false
		}

		f.reader.Reset(file, path)
		f.reader.Policy = f.Policy
		for f.reader.Scan() {
			xs = append(xs, f.reader.Value())
		}
		f.dropped += f.reader.Dropped()
		err := f.reader.Err()
		if !isStdin {
			file.Close()
		}
		if err != nil {
			return Sample{}, err
		}
	}
	return Sample{xs}, nil
}

// Dropped returns the number of tokens dropped across all files by
// the last call to ReadAll.
func (f *Files) Dropped() int {
	return f.dropped
}
