// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import "fmt"

// ErrorKind classifies an EngineError.
type ErrorKind int

const (
	// EmptySample indicates Bootstrap was given a sample with no
	// values.
	EmptySample ErrorKind = 1 + iota
	// BadConfig indicates the Config is invalid, or yields empty
	// resamples for the given sample.
	BadConfig
	// WorkerFailed indicates at least one worker failed. No
	// distribution is returned.
	WorkerFailed
	// Canceled indicates the context was done before every
	// worker finished.
	Canceled
)

func (k ErrorKind) String() string {
	switch k {
	case EmptySample:
		return "empty sample"
	case BadConfig:
		return "bad config"
	case WorkerFailed:
		return "worker failed"
	case Canceled:
		return "canceled"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// EngineError is the error returned by Bootstrap.
type EngineError struct {
	Kind ErrorKind
	// Worker is the index of the failed worker, for
	// WorkerFailed. Otherwise it is -1.
	Worker int
	Err    error
}

func (e *EngineError) Error() string {
	msg := "bootstrap: " + e.Kind.String()
	if e.Kind == WorkerFailed {
		msg = fmt.Sprintf("%s: worker %d", msg, e.Worker)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// PanicError records a panic recovered from a worker.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
