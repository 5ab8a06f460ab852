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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// collect renders into a dense w×h buffer.
func collect(w, h int) ([]float32, EmitFunc) {
	buf := make([]float32, w*h)
	return buf, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	}
}

func sum(buf []float32) float64 {
	var s float64
	for _, v := range buf {
		s += float64(v)
	}
	return s
}

// approaches lists the two code paths of fill.
var approaches = []struct {
	name      string
	smallArea int
}{
	{"box", 1 << 30},
	{"scanline", 0},
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
			r.smallArea = a.smallArea
			buf, emit := collect(10, 1)
			r.FillNonZero(triangle, emit)

			const epsilon = 1e-6
			for x := range 10 {
				want := float32(2*x+1) / 20
				if math.Abs(float64(buf[x]-want)) > epsilon {
					t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, want, buf[x])
				}
			}
		})
	}
}

// TestHorizontalLine checks that a pixel-aligned line covers exactly one row.
func TestHorizontalLine(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 12, URy: 12})
	buf, emit := collect(12, 12)
	r.StrokeLine(vec.Vec2{X: 2, Y: 5.5}, vec.Vec2{X: 8, Y: 5.5}, emit)

	for y := range 12 {
		for x := range 12 {
			want := float32(0)
			if y == 5 && x >= 2 && x < 8 {
				want = 1
			}
			if got := buf[y*12+x]; math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("(%d, %d): expected %g, got %g", x, y, want, got)
			}
		}
	}
}

// TestLineArea checks the total coverage of sloped lines with all cap
// styles against the exact area.
func TestLineArea(t *testing.T) {
	a := vec.Vec2{X: 10.3, Y: 7.1}
	b := vec.Vec2{X: 41.7, Y: 33.9}
	length := b.Sub(a).Length()
	const width = 3.0

	cases := []struct {
		name string
		cap  graphics.LineCapStyle
		area float64
		tol  float64
	}{
		{"butt", graphics.LineCapButt, length * width, 1e-4},
		{"square", graphics.LineCapSquare, (length + width) * width, 1e-4},
		{"round", graphics.LineCapRound, length*width + math.Pi*width*width/4, 0.01},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 50, URy: 50})
			r.Width = width
			r.Cap = c.cap
			r.Flatness = 0.01
			buf, emit := collect(50, 50)
			r.StrokeLine(a, b, emit)

			if got := sum(buf); math.Abs(got-c.area) > c.tol*c.area {
				t.Errorf("expected area %.3f, got %.3f", c.area, got)
			}
		})
	}
}

// TestDot checks that a zero-length line with round caps is a disc.
func TestDot(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
	r.Width = 10
	r.Cap = graphics.LineCapRound
	r.Flatness = 0.01
	buf, emit := collect(20, 20)
	p := vec.Vec2{X: 10, Y: 10}
	r.StrokeLine(p, p, emit)

	want := math.Pi * 25
	if got := sum(buf); math.Abs(got-want) > 0.01*want {
		t.Errorf("expected area %.3f, got %.3f", want, got)
	}

	r.Cap = graphics.LineCapButt
	buf, emit = collect(20, 20)
	r.StrokeLine(p, p, emit)
	if got := sum(buf); got != 0 {
		t.Errorf("butt-capped dot: expected no coverage, got %g", got)
	}
}

// TestApproachesAgree renders the same shapes with both fill code paths.
func TestApproachesAgree(t *testing.T) {
	const size = 64
	shapes := []struct {
		name    string
		evenOdd bool
		build   func(p *path.Data)
	}{
		{"disc", false, func(p *path.Data) {
			AppendCircle(p, vec.Vec2{X: 31.3, Y: 30.8}, 20, false)
		}},
		{"annulus", true, func(p *path.Data) {
			AppendCircle(p, vec.Vec2{X: 32, Y: 32}, 25, false)
			AppendCircle(p, vec.Vec2{X: 32, Y: 32}, 22, false)
		}},
		{"clipped", false, func(p *path.Data) {
			AppendCircle(p, vec.Vec2{X: 0, Y: 60}, 30, true)
		}},
	}

	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			p := &path.Data{}
			s.build(p)

			var results [][]float32
			for _, a := range approaches {
				r := NewRasteriser(rect.Rect{URx: size, URy: size})
				r.smallArea = a.smallArea
				buf, emit := collect(size, size)
				if s.evenOdd {
					r.FillEvenOdd(p, emit)
				} else {
					r.FillNonZero(p, emit)
				}
				results = append(results, buf)
			}

			for i := range results[0] {
				if d := math.Abs(float64(results[0][i] - results[1][i])); d > 1e-4 {
					t.Fatalf("pixel (%d, %d): box %g, scanline %g",
						i%size, i/size, results[0][i], results[1][i])
				}
			}
		})
	}
}

// TestCircleArea checks the total coverage of filled circles and rings.
func TestCircleArea(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 100, URy: 100})
	r.Flatness = 0.01
	c := vec.Vec2{X: 50, Y: 50}

	disc := &path.Data{}
	AppendCircle(disc, c, 30, false)
	buf, emit := collect(100, 100)
	r.FillNonZero(disc, emit)
	if want, got := math.Pi*900, sum(buf); math.Abs(got-want) > 0.005*want {
		t.Errorf("disc: expected area %.2f, got %.2f", want, got)
	}

	// same orientation: the hole needs the even-odd rule
	ring := &path.Data{}
	AppendCircle(ring, c, 30, false)
	AppendCircle(ring, c, 20, false)
	buf, emit = collect(100, 100)
	r.FillEvenOdd(ring, emit)
	if want, got := math.Pi*500, sum(buf); math.Abs(got-want) > 0.005*want {
		t.Errorf("even-odd ring: expected area %.2f, got %.2f", want, got)
	}

	// opposite orientation: nonzero leaves the hole as well
	ring = &path.Data{}
	AppendCircle(ring, c, 30, false)
	AppendCircle(ring, c, 20, true)
	buf, emit = collect(100, 100)
	r.FillNonZero(ring, emit)
	if want, got := math.Pi*500, sum(buf); math.Abs(got-want) > 0.005*want {
		t.Errorf("nonzero ring: expected area %.2f, got %.2f", want, got)
	}
}

// TestCTM checks that the transformation matrix scales the output.
func TestCTM(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 40, URy: 40})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Width = 2
	buf, emit := collect(40, 40)
	r.StrokeLine(vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 12, Y: 5}, emit)

	// 10×2 user units become 20×4 pixels, rows 8 to 11
	if got := sum(buf); math.Abs(got-80) > 1e-3 {
		t.Errorf("expected area 80, got %g", got)
	}
	for x := 4; x < 24; x++ {
		for y := 8; y < 12; y++ {
			if v := buf[y*40+x]; math.Abs(float64(v)-1) > 1e-5 {
				t.Errorf("(%d, %d): expected full coverage, got %g", x, y, v)
			}
		}
	}
}

// TestReset checks that Reset restores the defaults.
func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.Width = 7
	r.Cap = graphics.LineCapRound
	r.Flatness = 3
	r.CTM = matrix.Matrix{3, 0, 0, 3, 1, 1}

	clip := rect.Rect{URx: 20, URy: 30}
	r.Reset(clip)
	if r.Width != 1 || r.Cap != graphics.LineCapButt || r.Flatness != defaultFlatness ||
		r.CTM != matrix.Identity || r.Clip != clip {
		t.Errorf("Reset left state %+v", r)
	}
}
