// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// InvalidEncoding indicates a token is not valid UTF-8.
	InvalidEncoding ErrorKind = 1 + iota
	// NotANumber indicates a token is valid text but not a
	// floating-point literal in the range of a float64.
	NotANumber
	// TokenTooLong indicates a token exceeded MaxTokenLen bytes.
	// This is fatal under every Policy.
	TokenTooLong
	// ReadFailed indicates the underlying reader returned an
	// error. This is fatal under every Policy.
	ReadFailed
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidEncoding:
		return "invalid encoding"
	case NotANumber:
		return "not a number"
	case TokenTooLong:
		return "token too long"
	case ReadFailed:
		return "read failed"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Conversion reports whether k is a token conversion failure, which
// Permissive parsing drops rather than returns.
func (k ErrorKind) Conversion() bool {
	return k == InvalidEncoding || k == NotANumber
}

// ParseError describes a failure to read a sample.
type ParseError struct {
	FileName string
	// Offset is the byte offset of the start of the offending
	// token, or of the failed read.
	Offset int64
	Kind   ErrorKind
	// Token is a copy of the offending token, if any. For
	// TokenTooLong it holds the first MaxTokenLen bytes.
	Token []byte
	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	switch {
	case e.Kind == TokenTooLong:
		msg = fmt.Sprintf("token longer than %d bytes", MaxTokenLen)
	case e.Token != nil:
		msg = fmt.Sprintf("%s: %q", msg, e.Token)
	}
	if e.Err != nil && e.Kind != NotANumber {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Offset, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
