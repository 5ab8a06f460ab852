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

package stringart

import (
	"image"
	"image/color"
)

// Canvas is the brightness field accumulated by the committed chords.
// Values start at 1 (white) and only ever decrease, never below 0.
//
// A Canvas is not safe for concurrent modification. Concurrent calls to
// Score are fine as long as no Commit runs at the same time.
type Canvas struct {
	size int
	pix  []float32
}

// NewCanvas returns a fully bright size×size canvas.
func NewCanvas(size int) *Canvas {
	pix := make([]float32, size*size)
	for i := range pix {
		pix[i] = 1
	}
	return &Canvas{size: size, pix: pix}
}

// Size returns the side length of the canvas.
func (c *Canvas) Size() int {
	return c.size
}

// At returns the brightness of pixel (x, y).
func (c *Canvas) At(x, y int) float32 {
	return c.pix[y*c.size+x]
}

// Values returns a copy of the brightness values in row-major order.
func (c *Canvas) Values() []float32 {
	return append([]float32(nil), c.pix...)
}

// Score returns the mean benefit of drawing a chord over the given pixels.
// A pixel contributes how much darker the target is than the canvas,
// or zero where the canvas is already as dark as the target.
// An empty line scores 0.
func (c *Canvas) Score(line []int32, target *TargetField) float64 {
	if len(line) == 0 {
		return 0
	}
	var total float64
	for _, o := range line {
		// (1-target) - (1-canvas)
		benefit := float64(c.pix[o]) - float64(target.pix[o])
		if benefit > 0 {
			total += benefit
		}
	}
	return total / float64(len(line))
}

// Commit darkens all pixels of the line by opacity, clamping at 0.
func (c *Canvas) Commit(line []int32, opacity float32) {
	for _, o := range line {
		c.pix[o] = max(0, c.pix[o]-opacity)
	}
}

// Image returns the canvas as an 8-bit grayscale image.
func (c *Canvas) Image() *image.Gray {
	return grayImage(c.size, c.pix)
}

func grayImage(size int, pix []float32) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := range size {
		row := pix[y*size : (y+1)*size]
		for x, v := range row {
			img.SetGray(x, y, color.Gray{Y: uint8(max(0, min(255, int(v*255+0.5))))})
		}
	}
	return img
}
