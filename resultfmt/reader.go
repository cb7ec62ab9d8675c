// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Record is one problem instance's results.
type Record struct {
	// Instance is the raw instance identifier from the name field,
	// typically the benchmark file name such as "eil51.txt".
	Instance string

	// Average is the average distance found by each Algorithm.
	Average [NumAlgorithms]float64

	// Runs and Best are the per-algorithm run count and best
	// distance. Writer emits them; Reader never fills them in,
	// since the corresponding fields are not part of the contract
	// with other producers.
	Runs [NumAlgorithms]int
	Best [NumAlgorithms]float64

	fileName string
	line     int
}

// Pos returns the file name and line number of a Record read by a
// Reader. For Records created in some other way, it returns "", 0.
func (r *Record) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone makes a copy of r that does not share the Reader's storage.
func (r *Record) Clone() *Record {
	r2 := *r
	return &r2
}

// A Reader reads the analyzed results format.
//
// Its API is modeled on bufio.Scanner. The Reader retains ownership of
// the Record returned by Result; a caller should Clone anything it
// needs to keep past the next call to Scan.
//
// Unlike a benchmark log, an analyzed results file has no lines to
// skip: a malformed line stops the Reader and Err reports it as a
// *SyntaxError.
type Reader struct {
	s      *bufio.Scanner
	schema Schema
	err    error

	rec Record
}

// A SyntaxError represents a malformed line of a results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader to parse the V1 layout from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := &Reader{schema: V1}
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
// The schema is retained.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	if r.schema.MinFields == 0 {
		r.schema = V1
	}
	r.s = bufio.NewScanner(ior)
	r.err = nil
	r.rec = Record{fileName: fileName}
}

// UseSchema makes r consume fields at the positions described by s.
func (r *Reader) UseSchema(s Schema) error {
	if err := s.validate(); err != nil {
		return err
	}
	r.schema = s
	return nil
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.rec.fileName, r.rec.line, msg}
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Result method to get the
// record. If Scan reaches EOF, encounters a malformed line, or an I/O
// error occurs, it returns false, in which case the caller should use
// the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil || r.s == nil {
		return false
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.rec.fileName, r.rec.line, err)
		}
		return false
	}
	r.rec.line++
	if err := r.parseLine(r.s.Text()); err != nil {
		r.err = err
		return false
	}
	return true
}

func (r *Reader) parseLine(line string) error {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < r.schema.MinFields {
		return r.newSyntaxError(fmt.Sprintf("expected at least %d tab-separated fields, found %d", r.schema.MinFields, len(fields)))
	}

	r.rec.Instance = fields[r.schema.NameField]
	for i, f := range r.schema.AverageFields {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[f]), 64)
		if err != nil {
			return r.newSyntaxError(fmt.Sprintf("field %d: invalid %s average %q", f, Algorithm(i), fields[f]))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return r.newSyntaxError(fmt.Sprintf("field %d: non-finite %s average %q", f, Algorithm(i), fields[f]))
		}
		r.rec.Average[i] = v
	}
	return nil
}

// Result returns the record that was just read by Scan.
// It is only valid until the next call to Scan or Reset.
func (r *Reader) Result() *Record {
	return &r.rec
}

// Err returns the first error that stopped Scan, if any.
// If Scan stopped because it read the input to completion, or if Scan
// has not yet returned false, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every record from r. It stops at the first error.
func ReadAll(r io.Reader, fileName string) ([]*Record, error) {
	reader := NewReader(r, fileName)
	var recs []*Record
	for reader.Scan() {
		recs = append(recs, reader.Result().Clone())
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
