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

// Package stringart generates string art patterns: a single continuous
// thread, wound around pins on a circle, which reproduces a grayscale
// image by the accumulated darkness of its straight chords.
//
// The path is built greedily. Starting at pin 0, every step draws the chord
// from the current pin which removes the most remaining darkness from the
// working canvas, compared against the preprocessed target image.
//
// A typical run:
//
//	img, err := stringart.LoadImage("portrait.jpg")
//	...
//	cfg := stringart.DefaultConfig()
//	target, err := stringart.PrepareTarget(img, cfg.CanvasSize, stringart.DefaultTargetOptions())
//	...
//	res, err := stringart.Generate(ctx, cfg, target)
//	...
//	err = res.Sequence.WriteJSON(w)
//
// The sequence can be read back with ReadSequence, and Replay rebuilds the
// exact canvas of the run from it.
package stringart

//go:generate go run ./testcases/export
