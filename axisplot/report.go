// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"
	"syscall"
	"text/tabwriter"

	"golang.org/x/crypto/ssh/terminal"
)

// A Reporter prints the result rows of script commands.
type Reporter interface {
	Row(cells ...string)
	// Flush ends a group of rows. Aligned output is only written
	// once the group is complete.
	Flush() error
}

// NewStdoutReporter returns a Reporter that aligns columns when stdout
// is a capable terminal and writes tab-separated rows otherwise.
func NewStdoutReporter() Reporter {
	if os.Getenv("TERM") == "" || os.Getenv("TERM") == "dumb" || !terminal.IsTerminal(syscall.Stdout) {
		return &ReporterTSV{w: os.Stdout}
	}
	return NewReporterAligned(os.Stdout)
}

// ReporterTSV writes tab-separated rows.
type ReporterTSV struct {
	w io.Writer
}

func (r *ReporterTSV) Row(cells ...string) {
	io.WriteString(r.w, strings.Join(cells, "\t")+"\n")
}

func (r *ReporterTSV) Flush() error { return nil }

// ReporterAligned writes rows as space-padded columns.
type ReporterAligned struct {
	tw *tabwriter.Writer
}

func NewReporterAligned(w io.Writer) *ReporterAligned {
	return &ReporterAligned{tw: tabwriter.NewWriter(w, 1, 4, 2, ' ', 0)}
}

func (r *ReporterAligned) Row(cells ...string) {
	io.WriteString(r.tw, strings.Join(cells, "\t")+"\n")
}

func (r *ReporterAligned) Flush() error {
	return r.tw.Flush()
}
