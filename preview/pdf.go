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

package preview

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stringart"
)

// kappa is the control point distance for a quarter circle Bézier arc.
const kappa = 0.5522847498

// WritePDF writes the pattern as a one-page PDF file. One canvas pixel
// becomes one PDF point, so the page can be printed at a known scale.
// Chords are drawn in a gray level derived from the string opacity, since
// PDF pages without transparency groups cannot accumulate alpha.
func WritePDF(fname string, pins *stringart.Pins, seq []int, opt Options) error {
	size := float64(pins.CanvasSize())
	paper := &pdf.Rectangle{URx: size, URy: size}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	// canvas coordinates have the origin in the top-left corner
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, size})

	if opt.OutlineWidth > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(opt.OutlineWidth)
		pdfCircle(page, pins.CenterVec(), float64(pins.Radius()))
		page.Stroke()
	}

	if len(seq) > 0 && opt.StringOpacity > 0 {
		page.SetStrokeColor(color.DeviceGray(1 - min(opt.StringOpacity, 1)))
		page.SetLineWidth(0.5)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		p := pins.Vec(stringart.StartPin)
		page.MoveTo(p.X, p.Y)
		for _, next := range seq {
			p = pins.Vec(next)
			page.LineTo(p.X, p.Y)
		}
		page.Stroke()
	}

	if opt.PinRadius > 0 {
		page.SetFillColor(color.DeviceGray(0.3))
		for i := range pins.Len() {
			pdfCircle(page, pins.Vec(i), float64(opt.PinRadius))
		}
		page.Fill()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

// pathBuilder is the subset of the page drawing methods used for circles.
type pathBuilder interface {
	MoveTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func pdfCircle(page pathBuilder, c vec.Vec2, r float64) {
	k := kappa * r
	page.MoveTo(c.X+r, c.Y)
	page.CurveTo(c.X+r, c.Y+k, c.X+k, c.Y+r, c.X, c.Y+r)
	page.CurveTo(c.X-k, c.Y+r, c.X-r, c.Y+k, c.X-r, c.Y)
	page.CurveTo(c.X-r, c.Y-k, c.X-k, c.Y-r, c.X, c.Y-r)
	page.CurveTo(c.X+k, c.Y-r, c.X+r, c.Y-k, c.X+r, c.Y)
	page.ClosePath()
}
