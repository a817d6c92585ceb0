// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Swatch rasterizes pal as a width×height gradient strip. Vertical
// strips run from the last color at the top to the first at the
// bottom, like a color axis on the right of a plot.
//
// The palette is drawn one pixel per color and scaled to size with
// smooth interpolation.
func Swatch(pal []color.Color, width, height int, vertical bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(pal) == 0 || width <= 0 || height <= 0 {
		return dst
	}
	var src *image.RGBA
	if vertical {
		src = image.NewRGBA(image.Rect(0, 0, 1, len(pal)))
		for i, c := range pal {
			src.Set(0, len(pal)-1-i, c)
		}
	} else {
		src = image.NewRGBA(image.Rect(0, 0, len(pal), 1))
		for i, c := range pal {
			src.Set(i, 0, c)
		}
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
