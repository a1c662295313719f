//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package txtfmt provides helpers for formatting string output.
package txtfmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TableRow is a map of string values to be printed, keyed by column title.
type TableRow map[string]string

// TableFormatter formats string output for a table with labeled columns.
type TableFormatter struct {
	titles []string
	writer *tabwriter.Writer
	out    bytes.Buffer
}

// NewTableFormatter creates and instantiates a new TableFormatter.
func NewTableFormatter(columnTitles ...string) *TableFormatter {
	f := &TableFormatter{}
	f.InitWriter(&f.out)
	f.SetColumnTitles(columnTitles...)
	return f
}

// InitWriter optionally sets up the tabwriter to use the supplied
// io.Writer instead of the internal buffer.
func (t *TableFormatter) InitWriter(w io.Writer) {
	t.writer = tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
}

// SetColumnTitles sets the ordered column titles for the table.
func (t *TableFormatter) SetColumnTitles(c ...string) {
	if c == nil {
		t.titles = []string{}
		return
	}
	t.titles = c
}

func (t *TableFormatter) formatHeader() {
	for _, title := range t.titles {
		fmt.Fprintf(t.writer, "%s\t", title)
	}
	fmt.Fprint(t.writer, "\n")
	for _, title := range t.titles {
		fmt.Fprintf(t.writer, "%s\t", strings.Repeat("-", len(title)))
	}
	fmt.Fprint(t.writer, "\n")
}

// Format generates an output string for the set of table rows
// provided. It includes a header with column titles, and fills only
// the requested columns in order.
func (t *TableFormatter) Format(table []TableRow) string {
	if len(t.titles) == 0 {
		return "" // nothing to format
	}

	t.formatHeader()

	for _, row := range table {
		for _, title := range t.titles {
			value, ok := row[title]
			if !ok {
				value = "None"
			}
			fmt.Fprintf(t.writer, "%s\t", value)
		}
		fmt.Fprint(t.writer, "\n")
	}

	t.writer.Flush()
	return t.out.String()
}

// ErrWriter eliminates repetitive error handling by capturing an error
// and ignoring subsequent writes. The original error is available to
// be used by the caller.
type ErrWriter struct {
	writer io.Writer
	Err    error
}

// NewErrWriter returns an initialized ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{writer: w}
}

func (w *ErrWriter) Write(data []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}

	var n int
	n, w.Err = w.writer.Write(data)
	return n, w.Err
}
