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

// edgeCases sit at the boundaries of the accepted configurations.
var edgeCases = []TestCase{
	{
		// with two pins the path can only go back and forth
		Name: "two_pins",
		Config: stringart.Config{
			NumPins:        2,
			NumConnections: 5,
			CanvasSize:     120,
			StringOpacity:  1,
		},
		Target: Uniform(0.5),
		Prefix: []int{1, 0, 1, 0, 1},
	},
	{
		Name: "no_connections",
		Config: stringart.Config{
			NumPins:        16,
			NumConnections: 0,
			CanvasSize:     200,
			StringOpacity:  0.3,
			PinRadius:      3,
		},
		Target: Uniform(0.5),
		Prefix: []int{},
	},
	{
		// smallest canvas accepted for the fixed margin
		Name: "tiny_canvas",
		Config: stringart.Config{
			NumPins:        4,
			NumConnections: 10,
			CanvasSize:     2*stringart.Margin + 2*stringart.MinRadius,
			StringOpacity:  0.5,
		},
		Target: Picture{Shade: disk(0.5, 0.5, 0.05), Blur: true},
	},
	{
		Name: "opaque_strings",
		Config: stringart.Config{
			NumPins:        30,
			NumConnections: 60,
			CanvasSize:     160,
			StringOpacity:  1,
			PinRadius:      1,
		},
		Target: Picture{Shade: bar(0.3, 0.7)},
	},
}
