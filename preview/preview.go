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

// Package preview draws generated string art patterns.
//
// Render produces a raster image of the finished piece, with the pin circle,
// the pins and every chord of the path drawn with the string opacity.
// WritePDF produces the same picture as a vector PDF page, which can be
// printed at full size as a template for the board.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/raster"
)

// Options controls the appearance of the preview.
type Options struct {
	// PinRadius is the radius of the pin markers in canvas pixels.
	// Zero hides the pins.
	PinRadius int

	// StringOpacity is the alpha value of every chord.
	StringOpacity float64

	// OutlineWidth is the width of the circle outline in canvas pixels.
	// Zero hides the outline.
	OutlineWidth float64

	// Labels enables pin index labels next to the pins.
	Labels bool

	// Scale is the number of output pixels per canvas pixel.
	// Zero means 1.
	Scale float64
}

// DefaultOptions returns the preview options matching cfg.
func DefaultOptions(cfg stringart.Config) Options {
	return Options{
		PinRadius:     cfg.PinRadius,
		StringOpacity: cfg.StringOpacity,
		OutlineWidth:  2,
		Scale:         1,
	}
}

// Colours of the preview elements.
var (
	Background = color.RGBA{255, 255, 255, 255}
	Outline    = color.RGBA{0, 0, 0, 255}
	String     = color.RGBA{0, 0, 0, 255}
	PinFill    = color.RGBA{255, 0, 0, 255}
	PinRing    = color.RGBA{139, 0, 0, 255}
	LabelColor = color.RGBA{64, 64, 64, 255}
)

// Render draws the path 0 → seq[0] → seq[1] → … over the pin layout.
func Render(pins *stringart.Pins, seq []int, opt Options) *image.RGBA {
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}
	size := int(float64(pins.CanvasSize())*scale + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, Background)

	r := raster.NewRasteriser(rect.Rect{URx: float64(size), URy: float64(size)})
	r.CTM = matrix.Matrix{scale, 0, 0, scale, 0, 0}

	center := pins.CenterVec()
	radius := float64(pins.Radius())

	if opt.OutlineWidth > 0 {
		ring := &path.Data{}
		raster.AppendCircle(ring, center, radius+opt.OutlineWidth/2, false)
		raster.AppendCircle(ring, center, max(radius-opt.OutlineWidth/2, 0), false)
		r.FillEvenOdd(ring, blend(img, Outline, 1))
	}

	alpha := opt.StringOpacity
	if alpha > 0 {
		r.Width = 1
		r.Cap = graphics.LineCapButt
		emit := blend(img, String, alpha)
		current := stringart.StartPin
		for _, next := range seq {
			r.StrokeLine(pins.Vec(current), pins.Vec(next), emit)
			current = next
		}
	}

	if opt.PinRadius > 0 {
		pr := float64(opt.PinRadius)
		for i := range pins.Len() {
			dot := &path.Data{}
			raster.AppendCircle(dot, pins.Vec(i), pr, false)
			r.FillNonZero(dot, blend(img, PinRing, 1))
			if pr > 1 {
				inner := &path.Data{}
				raster.AppendCircle(inner, pins.Vec(i), pr-1, false)
				r.FillNonZero(inner, blend(img, PinFill, 1))
			}
		}
	}

	if opt.Labels {
		drawLabels(img, pins, scale, float64(opt.PinRadius))
	}
	return img
}

// blend returns an emit callback which composites col with the given
// alpha over img, weighted by coverage.
func blend(img *image.RGBA, col color.RGBA, alpha float64) raster.EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin*4:]
		for i, cov := range coverage {
			a := float64(cov) * alpha
			if a <= 0 {
				continue
			}
			p := row[i*4 : i*4+4]
			p[0] = mix(p[0], col.R, a)
			p[1] = mix(p[1], col.G, a)
			p[2] = mix(p[2], col.B, a)
			p[3] = 255
		}
	}
}

func mix(dst, src uint8, a float64) uint8 {
	v := float64(dst)*(1-a) + float64(src)*a
	return uint8(max(0, min(255, v+0.5)))
}

func fillRect(img *image.RGBA, col color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
}

// drawLabels writes the pin numbers just outside the pin circle.
func drawLabels(img *image.RGBA, pins *stringart.Pins, scale, pinRadius float64) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: face,
	}

	c := pins.CenterVec()
	cx, cy := c.X*scale, c.Y*scale
	for i := range pins.Len() {
		p := pins.Vec(i)
		px, py := p.X*scale, p.Y*scale
		dx, dy := px-cx, py-cy
		dist := vec.Vec2{X: dx, Y: dy}.Length()
		if dist == 0 {
			continue
		}
		// label centre sits a few pixels beyond the pin marker
		off := pinRadius*scale + 10
		lx := px + dx/dist*off
		ly := py + dy/dist*off

		label := strconv.Itoa(i)
		w := d.MeasureString(label)
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(lx*64) - w/2,
			Y: fixed.Int26_6(ly*64) + fixed.I(face.Ascent-face.Height/2),
		}
		d.DrawString(label)
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
