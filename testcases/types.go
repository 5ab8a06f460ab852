// seehuhn.de/go/stringart - string art pattern generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases is a catalogue of synthetic targets for exercising the
// string art generator. The targets are simple enough that properties of
// the generated paths can be predicted, and small enough for fast tests.
package testcases

import (
	"image"

	"seehuhn.de/go/stringart"
)

// TestCase defines one generation run.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Config stringart.Config // generation parameters
	Target Target           // what the pattern should look like

	// Prefix, if non-nil, is the expected beginning of the connection
	// sequence.
	Prefix []int
}

// Target produces the target for a canvas of the given size.
type Target interface {
	// Field returns the preprocessed target.
	Field(size int) (*stringart.TargetField, error)
}

// Uniform is a target with the same brightness everywhere.
// It bypasses image preprocessing, so that all values are exact.
type Uniform float32

// Field implements Target.
func (u Uniform) Field(size int) (*stringart.TargetField, error) {
	return stringart.UniformTarget(size, float32(u)), nil
}

// Picture is a target given by a grayscale drawing function, which is
// rendered at the canvas size and then preprocessed like an input image.
type Picture struct {
	// Shade returns the brightness in [0, 1] at (u, v), where both
	// coordinates run from 0 to 1 across the image.
	Shade func(u, v float64) float64

	// Blur enables the default smoothing.
	Blur bool
}

// Image renders the picture as a size×size grayscale image.
func (p Picture) Image(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			u := (float64(x) + 0.5) / float64(size)
			v := (float64(y) + 0.5) / float64(size)
			s := max(0, min(1, p.Shade(u, v)))
			img.Pix[y*img.Stride+x] = uint8(s*255 + 0.5)
		}
	}
	return img
}

// Field implements Target.
func (p Picture) Field(size int) (*stringart.TargetField, error) {
	opt := stringart.DefaultTargetOptions()
	if !p.Blur {
		opt.BlurSigma = 0
	}
	return stringart.PrepareTarget(p.Image(size), size, opt)
}

// Image returns a grayscale rendering of any target, for inspection.
func Image(t Target, size int) (*image.Gray, error) {
	field, err := t.Field(size)
	if err != nil {
		return nil, err
	}
	return field.Image(), nil
}
