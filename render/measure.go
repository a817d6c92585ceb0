// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/aclements/go-axis/axis"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontMeasurer sizes text using the advances of a font face, scaled
// from the face's height to the requested font size.
type FontMeasurer struct {
	// Face is the face to measure with. Nil means
	// basicfont.Face7x13.
	Face font.Face
}

func (m FontMeasurer) face() font.Face {
	if m.Face == nil {
		return basicfont.Face7x13
	}
	return m.Face
}

// MeasureText returns the size of text at fontSize.
func (m FontMeasurer) MeasureText(text string, fontSize float64) axis.Size {
	f := m.face()
	h := f.Metrics().Height
	if h <= 0 || text == "" {
		return axis.Size{Height: fontSize}
	}
	scale := fontSize / (float64(h) / 64)
	adv := font.MeasureString(f, text)
	return axis.Size{Width: float64(adv) / 64 * scale, Height: fontSize}
}
