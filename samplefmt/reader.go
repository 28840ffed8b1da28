// Copyright 2026 The Bootstrap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"errors"
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

const (
	// ReadBufSize is the size of each read from the underlying
	// reader.
	ReadBufSize = 1000

	// MaxTokenLen is the maximum length in bytes of a single
	// token.
	MaxTokenLen = 100
)

// maxEmptyReads bounds the number of consecutive (0, nil) reads
// before the Reader gives up, mirroring bufio.Scanner.
const maxEmptyReads = 100

// Policy controls how a Reader handles tokens that cannot be
// converted to a number.
type Policy int

const (
	// Strict makes any conversion failure end parsing with an
	// error.
	Strict Policy = iota
	// Permissive drops tokens that cannot be converted and keeps
	// going. Reader.Dropped reports how many were dropped.
	Permissive
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// A Reader reads a numeric sample from a delimited byte stream.
//
// Its API is modeled on bufio.Scanner. The zero value of the Reader
// is a valid Reader, but the user must call Reset before using it.
type Reader struct {
	// Policy determines what happens to malformed tokens. It may
	// be changed between Reset and the first call to Scan.
	Policy Policy

	r        io.Reader
	fileName string

	buf      []byte
	pos, end int   // unconsumed bytes are buf[pos:end]
	off      int64 // stream offset of buf[pos]
	eof      bool

	tok    [MaxTokenLen]byte
	tokLen int
	tokOff int64

	val     float64
	dropped int
	err     error
}

// NewReader constructs a Reader that parses a sample from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. The
// Policy is left unchanged.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.r = ior
	r.fileName = fileName
	if r.buf == nil {
		r.buf = make([]byte, ReadBufSize)
	}
	r.pos, r.end = 0, 0
	r.off = 0
	r.eof = false
	r.tokLen = 0
	r.tokOff = 0
	r.val = 0
	r.dropped = 0
	r.err = nil
}

const isDelim uint64 = 1<<' ' | 1<<',' | 1<<'\n' | 1<<'\r'

func delim(c byte) bool {
	return c < 64 && (isDelim>>c)&1 != 0
}

// Scan advances the reader to the next value and returns true if a
// value was read. The caller should use the Value method to get the
// value. If parsing fails, or this reaches the end of the input, it
// returns false and the caller should use the Err method to check for
// errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for {
		if r.pos == r.end {
			if r.eof {
				// Flush a final token that had no
				// trailing delimiter.
				if r.tokLen == 0 {
					return false
				}
				if r.flush() {
					return true
				}
				if r.err != nil {
					return false
				}
				continue
			}
			if !r.fill() {
				return false
			}
			continue
		}

		c := r.buf[r.pos]
		r.pos++
		r.off++
		if delim(c) {
			if r.tokLen > 0 {
				if r.flush() {
					return true
				}
				if r.err != nil {
					return false
				}
			}
			continue
		}
		if r.tokLen == MaxTokenLen {
			r.err = &ParseError{
				FileName: r.fileName,
				Offset:   r.tokOff,
				Kind:     TokenTooLong,
				Token:    append([]byte(nil), r.tok[:]...),
			}
			return false
		}
		if r.tokLen == 0 {
			r.tokOff = r.off - 1
		}
		r.tok[r.tokLen] = c
		r.tokLen++
	}
}

// fill reads the next chunk into buf. It returns false if the read
// failed, in which case r.err is set.
func (r *Reader) fill() bool {
	for empty := 0; ; empty++ {
		n, err := r.r.Read(r.buf)
		if err != nil && err != io.EOF {
			r.err = &ParseError{FileName: r.fileName, Offset: r.off, Kind: ReadFailed, Err: err}
			return false
		}
		r.pos, r.end = 0, n
		if err == io.EOF {
			r.eof = true
			return true
		}
		if n > 0 {
			return true
		}
		if empty >= maxEmptyReads {
			r.err = &ParseError{FileName: r.fileName, Offset: r.off, Kind: ReadFailed, Err: io.ErrNoProgress}
			return false
		}
	}
}

// flush converts the pending token. It returns true if the token
// produced a value. Otherwise either the token was dropped or r.err
// has been set.
func (r *Reader) flush() bool {
	tok := r.tok[:r.tokLen]
	r.tokLen = 0
	v, kind, err := convert(tok)
	if kind == 0 {
		r.val = v
		return true
	}
	if r.Policy == Permissive {
		r.dropped++
		return false
	}
	r.err = &ParseError{
		FileName: r.fileName,
		Offset:   r.tokOff,
		Kind:     kind,
		Token:    append([]byte(nil), tok...),
		Err:      err,
	}
	return false
}

// Value returns the last value read by Scan.
func (r *Reader) Value() float64 {
	return r.val
}

// Dropped returns the number of tokens dropped so far under the
// Permissive policy.
func (r *Reader) Dropped() int {
	return r.dropped
}

// Err returns the first error that was encountered by the Reader.
// Reaching the end of the input is not an error.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads all remaining values into a Sample. On error, it
// returns an empty Sample and the error.
func (r *Reader) ReadAll() (Sample, error) {
	var xs []float64
	for r.Scan() {
		xs = append(xs, r.Value())
	}
	if err := r.Err(); err != nil {
		return Sample{}, err
	}
	return Sample{xs}, nil
}

// ParseSample reads a complete sample from r. dropped reports
// whether any tokens were dropped, which can only happen under the
// Permissive policy.
func ParseSample(r io.Reader, policy Policy) (s Sample, dropped bool, err error) {
	reader := NewReader(r, "")
	reader.Policy = policy
	s, err = reader.ReadAll()
	if err != nil {
		return Sample{}, false, err
	}
	return s, reader.Dropped() > 0, nil
}

var errNotFinite = errors.New("value is not finite")

// convert validates tok as UTF-8 and parses it as a float64. kind is
// zero on success.
func convert(tok []byte) (v float64, kind ErrorKind, err error) {
	if !utf8.Valid(tok) {
		return 0, InvalidEncoding, nil
	}
	v, err = atof(tok)
	if err != nil {
		return 0, NotANumber, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, NotANumber, errNotFinite
	}
	return v, 0, nil
}

// atof is a wrapper for strconv.ParseFloat that optimizes for
// numbers that are usually integers.
func atof(x []byte) (float64, error) {
	// The largest int exactly representable in a float64.
	const largestInt = 1<<53 - 1

	// Try parsing as an integer.
	var val int64
	for _, ch := range x {
		digit := ch - '0'
		if digit >= 10 {
			goto fail
		}
		val = (val * 10) + int64(digit)
		if val > largestInt {
			goto fail
		}
	}
	return float64(val), nil

fail:
	// The fast path failed. Parse it as a float.
	return strconv.ParseFloat(string(x), 64)
}
