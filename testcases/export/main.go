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

// Command export writes the targets of all test cases as PNG images,
// together with a JSON index of the case configurations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stringart/preview"
	"seehuhn.de/go/stringart/testcases"
)

const outDir = "testdata/targets"

type jsonTestCase struct {
	Name           string  `json:"name"`
	Target         string  `json:"target"`
	NumPins        int     `json:"num_pins"`
	NumConnections int     `json:"num_connections"`
	CanvasSize     int     `json:"canvas_size"`
	StringOpacity  float64 `json:"string_opacity"`
	Prefix         []int   `json:"prefix,omitempty"`
}

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(outDir, name+".png")
			if err := writeTarget(tc, fname); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name:           name,
				Target:         filepath.Base(fname),
				NumPins:        tc.Config.NumPins,
				NumConnections: tc.Config.NumConnections,
				CanvasSize:     tc.Config.CanvasSize,
				StringOpacity:  tc.Config.StringOpacity,
				Prefix:         tc.Prefix,
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		log.Fatal(err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func writeTarget(tc testcases.TestCase, fname string) (err error) {
	img, err := testcases.Image(tc.Target, tc.Config.CanvasSize)
	if err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return preview.WritePNG(f, img)
}
