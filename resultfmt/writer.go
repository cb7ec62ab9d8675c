// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Writer writes the analyzed results format using the V1 layout.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes analyzed results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes rec as a single line.
func (w *Writer) Write(rec *Record) error {
	if rec.Instance == "" {
		return fmt.Errorf("record has no instance name")
	}
	if strings.ContainsAny(rec.Instance, "\t\n") {
		return fmt.Errorf("instance name %q contains a tab or newline", rec.Instance)
	}
	if strings.TrimSpace(rec.Instance) != rec.Instance {
		return fmt.Errorf("instance name %q has surrounding whitespace", rec.Instance)
	}

	fields := make([]string, V1.MinFields)
	fields[V1.NameField] = rec.Instance
	total := 0
	for i, f := range V1.AverageFields {
		total += rec.Runs[i]
		fields[f-2] = strconv.Itoa(rec.Runs[i])
		fields[f-1] = formatFloat(rec.Best[i])
		fields[f] = formatFloat(rec.Average[i])
	}
	fields[1] = strconv.Itoa(total)

	w.buf.WriteString(strings.Join(fields, "\t"))
	w.buf.WriteByte('\n')

	// Write to the buffer can't fail, so we only have to check if
	// this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
