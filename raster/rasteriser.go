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

// Package raster computes anti-aliased pixel coverage for filled outlines.
//
// It is used to draw the string art preview: chords become thin outlines,
// pins become small discs and the pin circle becomes an annulus. Coverage
// is the exact area of each pixel inside the outline, in [0, 1].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one run of pixels in row y, starting
// at column xMin. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the (extended) edge at height y.
func (e *edge) xAt(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

// Rasteriser converts outlines to coverage values. Create one instance
// and reuse it: internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip is the device-space output rectangle, with integer coordinates.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the width of stroked lines, in user space units.
	Width float64

	// Cap is the end style of stroked lines.
	Cap graphics.LineCapStyle

	// smallArea is the largest bounding box area, in pixels, which is
	// rasterised with one buffer for the whole box. Larger outlines are
	// processed one scanline at a time with an active edge list.
	smallArea int

	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // area right of the edge within the pixel
	edges     []edge
	active    []int
	rowUsed   []bool
	crossings []float64
	outline   []vec.Vec2
	bbox      bboxAcc
}

type bboxAcc struct {
	empty                  bool
	xMin, xMax, yMin, yMax float64
}

func (b *bboxAcc) add(x, y float64) {
	if b.empty {
		b.xMin, b.xMax, b.yMin, b.yMax = x, x, y, y
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, x)
	b.xMax = max(b.xMax, x)
	b.yMin = min(b.yMin, y)
	b.yMax = max(b.yMax, y)
}

// Default parameter values.
const (
	defaultFlatness  = 0.25
	defaultSmallArea = 65536

	// horizontalThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalThreshold = 1e-10

	// zeroLength is the shortest line which is stroked.
	zeroLength = 1e-10
)

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// identity CTM, unit line width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.smallArea = defaultSmallArea

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
}

// toDevice applies the CTM.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device-space length of a user-space vector.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.addPath(p)
	r.fill(false, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.addPath(p)
	r.fill(true, emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bbox = bboxAcc{empty: true}
}

// addPath walks p and adds its edges, closing every subpath.
func (r *Rasteriser) addPath(p *path.Data) {
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// elevate to a cubic with the same shape
			c := p.Coords[k]
			end := p.Coords[k+1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3.0))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3.0))
			r.flattenCubic(cur, c1, c2, end)
			cur = end
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, with
// the number of segments chosen by Wang's formula in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(r.deviceLength(d1), r.deviceLength(d2))

	n := 1
	if m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// addEdge adds the user-space segment a→b.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p := r.toDevice(a)
	q := r.toDevice(b)
	r.bbox.add(p.X, p.Y)
	r.bbox.add(q.X, q.Y)

	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})
}

// fill rasterises the collected edges.
func (r *Rasteriser) fill(evenOdd bool, emit EmitFunc) {
	if len(r.edges) == 0 || r.bbox.empty {
		return
	}
	xMin := max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallArea {
		r.fillBox(xMin, xMax, yMin, yMax, evenOdd, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, evenOdd, emit)
	}
}

// Every edge piece inside a pixel adds its signed height to cover and
// the part of that height right of the edge to area. Scanning a row from
// left to right, the coverage of pixel i is area[i] plus the sum of cover
// over all pixels left of i.

// accumulate adds the contribution of e to scanline y. The buffers hold
// the pixels xMin..xMax-1; contributions left of the buffer are folded
// into its first pixel, contributions right of it are dropped.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xl, xr := e.xAt(top), e.xAt(bot)
	if xl > xr {
		xl, xr = xr, xl
	}
	pl := int(math.Floor(xl))
	pr := int(math.Floor(xr))

	add := func(y0, y1 float64) {
		h := sign * float32(y1-y0)
		xm := e.xAt((y0 + y1) / 2)
		pix := int(math.Floor(xm))
		switch {
		case pix < xMin:
			cover[0] += h
			area[0] += h
		case pix < xMax:
			i := pix - xMin
			cover[i] += h
			area[i] += h * float32(1-(xm-float64(pix)))
		}
	}

	if pr < xMin {
		h := sign * float32(bot-top)
		cover[0] += h
		area[0] += h
		return
	}
	if pl >= xMax {
		return
	}
	if pl == pr {
		add(top, bot)
		return
	}

	// split the piece where it crosses pixel column boundaries
	r.crossings = append(r.crossings[:0], top, bot)
	dydx := 1 / e.dxdy
	for x := pl + 1; x <= pr; x++ {
		if yx := e.y0 + dydx*(float64(x)-e.x0); yx > top && yx < bot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := range len(r.crossings) - 1 {
		if r.crossings[i+1] > r.crossings[i] {
			add(r.crossings[i], r.crossings[i+1])
		}
	}
}

// integrate turns the accumulated cover/area of one row into coverage,
// in place in cover.
func integrate(cover, area []float32, evenOdd bool) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if evenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// emitRow sends the non-zero part of a row.
func emitRow(y, xMin int, coverage []float32, emit EmitFunc) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo < hi {
		emit(y, xMin+lo, coverage[lo:hi])
	}
}

// fillBox handles small outlines, using one buffer for the whole bounding box.
func (r *Rasteriser) fillBox(xMin, xMax, yMin, yMax int, evenOdd bool, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(e.yMin())), yMin)
		y1 := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := y0; y < y1; y++ {
			row := (y - yMin) * w
			r.accumulate(e, y, r.cover[row:row+w], r.area[row:row+w], xMin, xMax)
			r.rowUsed[y-yMin] = true
		}
	}

	for j, used := range r.rowUsed {
		if !used {
			continue
		}
		row := j * w
		cov := r.cover[row : row+w]
		integrate(cov, r.area[row:row+w], evenOdd)
		emitRow(yMin+j, xMin, cov, emit)
	}
}

// fillScanlines handles large outlines, one scanline at a time with an
// active edge list.
func (r *Rasteriser) fillScanlines(xMin, xMax, yMin, yMax int, evenOdd bool, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].yMin() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if e.yMin() < yf+1 {
				r.accumulate(e, y, r.cover, r.area, xMin, xMax)
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, evenOdd)
		emitRow(y, xMin, r.cover, emit)
	}
}
