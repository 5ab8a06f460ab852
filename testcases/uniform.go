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

import "seehuhn.de/go/stringart"

// uniformCases have targets without any structure. Every chord scores the
// same in the first iteration, so these cases pin down the tie-break rule.
var uniformCases = []TestCase{
	{
		Name: "midgray_4",
		Config: stringart.Config{
			NumPins:        4,
			NumConnections: 3,
			CanvasSize:     400,
			StringOpacity:  0.3,
			PinRadius:      3,
		},
		Target: Uniform(0.5),
		Prefix: []int{1},
	},
	{
		// With nothing to draw all scores are zero, and the path walks
		// around the lowest pins which are not excluded.
		Name: "white_4",
		Config: stringart.Config{
			NumPins:        4,
			NumConnections: 7,
			CanvasSize:     400,
			StringOpacity:  0.3,
			PinRadius:      3,
		},
		Target: Uniform(1),
		Prefix: []int{1, 2, 0, 1, 2, 0, 1},
	},
	{
		Name: "white_12",
		Config: stringart.Config{
			NumPins:        12,
			NumConnections: 6,
			CanvasSize:     300,
			StringOpacity:  0.5,
			PinRadius:      2,
		},
		Target: Uniform(1),
		Prefix: []int{1, 2, 0, 1, 2, 0},
	},
	{
		Name: "black_24",
		Config: stringart.Config{
			NumPins:        24,
			NumConnections: 100,
			CanvasSize:     200,
			StringOpacity:  0.25,
			PinRadius:      2,
		},
		Target: Uniform(0),
	},
}
