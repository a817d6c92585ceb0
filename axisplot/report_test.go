// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporters(t *testing.T) {
	var buf bytes.Buffer
	tsv := &ReporterTSV{w: &buf}
	tsv.Row("a", "bb")
	tsv.Row("ccc", "d")
	require.NoError(t, tsv.Flush())
	assert.Equal(t, "a\tbb\nccc\td\n", buf.String())

	buf.Reset()
	al := NewReporterAligned(&buf)
	al.Row("a", "bb")
	al.Row("ccc", "d")
	assert.Empty(t, buf.String())
	require.NoError(t, al.Flush())
	assert.Equal(t, "a    bb\nccc  d\n", buf.String())
}

func TestOptionsRun(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "axes.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(testConfig), 0666))

	var buf bytes.Buffer
	o := &options{config: cfg, width: 640, height: 480}
	err := o.run(strings.NewReader("update\nrange v\n"), NewReporterAligned(&buf))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"area", "10", "5", "300", "200"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"v", "1", "1024"}, strings.Fields(lines[1])[:3])

	o.width = 0
	assert.Error(t, o.run(strings.NewReader(""), &ReporterTSV{w: &buf}))
}

func TestLogLevel(t *testing.T) {
	for v, want := range []logrus.Level{logrus.WarnLevel, logrus.InfoLevel, logrus.DebugLevel, logrus.DebugLevel} {
		o := options{verbose: v}
		assert.Equal(t, want, o.logLevel(), "verbose %d", v)
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-c", "a.toml", "-o", "b.svg", "--width", "100", "-vv"}))
	f := cmd.Flags()
	for name, want := range map[string]string{
		"config":  "a.toml",
		"output":  "b.svg",
		"width":   "100",
		"height":  "480",
		"verbose": "2",
	} {
		assert.Equal(t, want, f.Lookup(name).Value.String(), name)
	}
}
