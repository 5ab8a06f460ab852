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
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Pins holds the fixed positions of the pins on the circle.
// Pin 0 is at the rightmost point of the circle; the following pins
// proceed clockwise on screen (y grows downwards) in equal angular steps.
//
// Pins is immutable once created and safe for concurrent use.
type Pins struct {
	canvasSize int
	center     int
	radius     int
	pos        []image.Point
}

// NewPins places numPins pins on a circle of radius canvasSize/2 - Margin,
// centred in a square canvas of the given size. Coordinates are truncated
// towards zero, so identical arguments always give identical pins.
func NewPins(numPins, canvasSize int) (*Pins, error) {
	if numPins < 2 {
		return nil, &ConfigError{"num_pins", numPins, "need at least 2 pins"}
	}
	if canvasSize <= 0 {
		return nil, &ConfigError{"canvas_size", canvasSize, "must be positive"}
	}
	center := canvasSize / 2
	radius := center - Margin
	if radius < MinRadius {
		return nil, &ConfigError{"canvas_size", canvasSize,
			fmt.Sprintf("pin circle radius %d is below %d (margin %d)", radius, MinRadius, Margin)}
	}

	pos := make([]image.Point, numPins)
	seen := make(map[image.Point]int, numPins)
	c := float64(center)
	r := float64(radius)
	for i := range pos {
		angle := 2 * math.Pi * float64(i) / float64(numPins)
		p := image.Point{
			X: int(c + r*math.Cos(angle)),
			Y: int(c + r*math.Sin(angle)),
		}
		if j, dup := seen[p]; dup {
			return nil, &ConfigError{"num_pins", numPins,
				fmt.Sprintf("pins %d and %d coincide at %v on a circle of radius %d", j, i, p, radius)}
		}
		seen[p] = i
		pos[i] = p
	}

	return &Pins{
		canvasSize: canvasSize,
		center:     center,
		radius:     radius,
		pos:        pos,
	}, nil
}

// Len returns the number of pins.
func (p *Pins) Len() int {
	return len(p.pos)
}

// At returns the pixel coordinates of pin i.
func (p *Pins) At(i int) image.Point {
	return p.pos[i]
}

// Vec returns the centre of the pixel holding pin i.
func (p *Pins) Vec(i int) vec.Vec2 {
	q := p.pos[i]
	return vec.Vec2{X: float64(q.X) + 0.5, Y: float64(q.Y) + 0.5}
}

// Points returns a copy of all pin coordinates, in index order.
func (p *Pins) Points() []image.Point {
	return append([]image.Point(nil), p.pos...)
}

// CanvasSize returns the side length of the canvas the pins were laid out on.
func (p *Pins) CanvasSize() int {
	return p.canvasSize
}

// Center returns the centre of the pin circle.
func (p *Pins) Center() image.Point {
	return image.Point{X: p.center, Y: p.center}
}

// CenterVec returns the centre of the pin circle in the coordinates used
// by Vec, i.e. the centre of the pixel at Center.
func (p *Pins) CenterVec() vec.Vec2 {
	return vec.Vec2{X: float64(p.center) + 0.5, Y: float64(p.center) + 0.5}
}

// Radius returns the radius of the pin circle.
func (p *Pins) Radius() int {
	return p.radius
}

// Equal reports whether q describes the same layout as p.
func (p *Pins) Equal(q *Pins) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil || p.canvasSize != q.canvasSize || len(p.pos) != len(q.pos) {
		return false
	}
	for i := range p.pos {
		if p.pos[i] != q.pos[i] {
			return false
		}
	}
	return true
}
