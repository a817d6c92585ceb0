// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot lays out plot axes and queries them.
//
// axisplot reads a TOML description of a set of axes and runs a
// script of commands against them: include data, update the layout,
// pan and zoom, and print ticks, labels and coordinate transforms.
// The render command draws the axes to an SVG file.
//
// Usage:
//
//	axisplot [-c config.toml] [-o out.svg] [--width W] [--height H] [-v] [script]
//
// The script is read from standard input if no file is given. Each
// line is one command, split into words with shell quoting rules:
//
//	include KEY V...     add data values to axis KEY
//	update               run the update cycle and print the plot area
//	pan KEY X0 X1        pan so the value at screen X0 moves to X1
//	zoom KEY A B         set the range to [A, B]
//	zoomat KEY F X       zoom by factor F around value X
//	reset KEY            return to the configured range
//	ticks KEY            print major and minor ticks
//	transform KEY X      print the screen coordinate of X
//	inverse KEY SX       print the value at screen coordinate SX
//	point XKEY YKEY X Y  print the screen point of (X, Y)
//	format KEY X         print the label of X
//	range KEY            print the actual range, steps and transform
//	render               write the axes to the -o file
//	swatch KEY FILE      write the palette of color axis KEY as a PNG
//
// KEY is an axis key from the configuration or a position name such
// as "bottom". Date/time axes take dates such as 2017-03-01 as
// values, time-span axes take durations such as 1h30m, and category
// axes take labels.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	config  string
	out     string
	width   float64
	height  float64
	verbose int
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.config, "config", "c", "", "read axes from TOML `file` (default: linear x and y)")
	fs.StringVarP(&o.out, "output", "o", "", "write SVG to `file` on render")
	fs.Float64Var(&o.width, "width", 640, "canvas width in pixels")
	fs.Float64Var(&o.height, "height", 480, "canvas height in pixels")
	fs.CountVarP(&o.verbose, "verbose", "v", "log more; repeat for debug output")
}

func (o *options) logLevel() logrus.Level {
	switch {
	case o.verbose >= 2:
		return logrus.DebugLevel
	case o.verbose == 1:
		return logrus.InfoLevel
	}
	return logrus.WarnLevel
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "axisplot [flags] [script]",
		Short:         "Lay out plot axes and query ticks and transforms",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetLevel(o.logLevel())
			var script io.Reader = os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				script = f
			}
			return o.run(script, NewStdoutReporter())
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func (o *options) run(script io.Reader, out Reporter) error {
	if o.width <= 0 || o.height <= 0 {
		return errors.Errorf("bad canvas size %gx%g", o.width, o.height)
	}
	cfg := DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = LoadConfig(o.config); err != nil {
			return err
		}
	}
	as, err := cfg.Build()
	if err != nil {
		return err
	}
	logrus.WithField("axes", len(as)).Info("loaded configuration")

	s := NewSession(as, o.width, o.height, out)
	s.Output = o.out
	s.Area.Left, s.Area.Top = cfg.Area.Left, cfg.Area.Top
	s.Area.Width, s.Area.Height = cfg.Area.Width, cfg.Area.Height
	return s.Run(script)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
