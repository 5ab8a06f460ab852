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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLine renders the straight line from a to b with the current
// Width and Cap. Lines shorter than zeroLength produce output only for
// round and square caps.
func (r *Rasteriser) StrokeLine(a, b vec.Vec2, emit EmitFunc) {
	d := r.Width / 2
	if d <= 0 {
		return
	}

	r.outline = r.outline[:0]
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLength {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
		case graphics.LineCapSquare:
			r.outline = append(r.outline,
				a.Add(vec.Vec2{X: d, Y: d}), a.Add(vec.Vec2{X: -d, Y: d}),
				a.Add(vec.Vec2{X: -d, Y: -d}), a.Add(vec.Vec2{X: d, Y: -d}))
		}
	} else {
		t := delta.Mul(1 / length)
		n := vec.Vec2{X: -t.Y, Y: t.X}

		// +N side forwards, cap at b, -N side backwards, cap at a
		r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
		r.addCap(b, t, n, d)
		r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
		r.addCap(a, t.Mul(-1), n.Mul(-1), d)
	}

	r.fillOutline(emit)
}

// addCap adds the cap at end point p. The vector t points away from the
// line, n is the normal on the side the outline arrives from.
func (r *Rasteriser) addCap(p, t, n vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		// from +n through t to -n
		r.addArc(p, d, n, -math.Pi)
	}
}

// addArc appends points on the circular arc around center which starts in
// direction startDir and sweeps the given angle (positive is
// counter-clockwise in a y-up system). The number of points is chosen so
// that the chords stay within Flatness of the arc.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(r.deviceLength(vec.Vec2{X: radius}), r.deviceLength(vec.Vec2{Y: radius}))

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		} else {
			n = 8
		}
	}

	for i := 0; i <= n; i++ {
		angle := sweep * float64(i) / float64(n)
		sin, cos := math.Sincos(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// fillOutline fills the closed polygon in r.outline with the nonzero rule.
func (r *Rasteriser) fillOutline(emit EmitFunc) {
	if len(r.outline) < 3 {
		return
	}
	r.beginEdges()
	for i, p := range r.outline {
		q := r.outline[(i+1)%len(r.outline)]
		r.addEdge(p, q)
	}
	r.fill(false, emit)
}

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498

// AppendCircle adds a closed circle of the given radius around c to p,
// made from four cubic Bézier segments. Clockwise selects the direction
// of travel, which matters when several circles are filled together with
// the nonzero rule.
func AppendCircle(p *path.Data, c vec.Vec2, radius float64, clockwise bool) {
	k := kappa * radius
	s := 1.0
	if clockwise {
		s = -1
	}

	pt := func(dx, dy float64) vec.Vec2 { return vec.Vec2{X: c.X + dx, Y: c.Y + s*dy} }

	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, pt(radius, 0))
	quarters := [4][3]vec.Vec2{
		{pt(radius, k), pt(k, radius), pt(0, radius)},
		{pt(-k, radius), pt(-radius, k), pt(-radius, 0)},
		{pt(-radius, -k), pt(-k, -radius), pt(0, -radius)},
		{pt(k, -radius), pt(radius, -k), pt(radius, 0)},
	}
	for _, q := range quarters {
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, q[0], q[1], q[2])
	}
	p.Cmds = append(p.Cmds, path.CmdClose)
}
