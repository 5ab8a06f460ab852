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

package testcases

import (
	"math"

	"seehuhn.de/go/stringart"
)

// shapeCases have simple pictures as targets, preprocessed the same way
// as decoded input images.
var shapeCases = []TestCase{
	{
		Name:   "disk",
		Config: small(36, 200),
		Target: Picture{Shade: disk(0.5, 0.5, 0.2), Blur: true},
	},
	{
		Name:   "vertical_bar",
		Config: small(36, 150),
		Target: Picture{Shade: bar(0.45, 0.55)},
	},
	{
		Name:   "gradient",
		Config: small(48, 300),
		Target: Picture{Shade: func(u, v float64) float64 { return u }, Blur: true},
	},
	{
		Name:   "ring",
		Config: small(60, 400),
		Target: Picture{Shade: ring(0.5, 0.5, 0.15, 0.25), Blur: true},
	},
}

// small returns a configuration on a 240 pixel canvas.
func small(pins, connections int) stringart.Config {
	return stringart.Config{
		NumPins:        pins,
		NumConnections: connections,
		CanvasSize:     240,
		StringOpacity:  0.2,
		PinRadius:      2,
	}
}

// disk is black inside the circle of radius r around (cu, cv).
func disk(cu, cv, r float64) func(u, v float64) float64 {
	return func(u, v float64) float64 {
		if math.Hypot(u-cu, v-cv) <= r {
			return 0
		}
		return 1
	}
}

// ring is black between the radii r1 and r2 around (cu, cv).
func ring(cu, cv, r1, r2 float64) func(u, v float64) float64 {
	return func(u, v float64) float64 {
		if d := math.Hypot(u-cu, v-cv); d >= r1 && d <= r2 {
			return 0
		}
		return 1
	}
}

// bar is black for u0 <= u <= u1.
func bar(u0, u1 float64) func(u, v float64) float64 {
	return func(u, v float64) float64 {
		if u >= u0 && u <= u1 {
			return 0
		}
		return 1
	}
}
