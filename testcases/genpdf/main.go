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

// Command genpdf generates every test case and writes the resulting
// pattern as PDF template, PNG preview and JSON sequence.
// Run from the module root directory.
package main

import (
	"context"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/preview"
	"seehuhn.de/go/stringart/testcases"
)

const outDir = "testdata/patterns"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			log.Printf("%s: done", name)
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	target, err := tc.Target.Field(tc.Config.CanvasSize)
	if err != nil {
		return err
	}
	res, err := stringart.Generate(context.Background(), tc.Config, target,
		stringart.WithWorkers(runtime.GOMAXPROCS(0)))
	if err != nil {
		return err
	}

	base := filepath.Join(outDir, name)
	opt := preview.DefaultOptions(tc.Config)
	if err := preview.WritePDF(base+".pdf", res.Pins, res.Sequence.Pins, opt); err != nil {
		return err
	}
	if err := writeFile(base+".png", func(f *os.File) error {
		return preview.WritePNG(f, preview.Render(res.Pins, res.Sequence.Pins, opt))
	}); err != nil {
		return err
	}
	return writeFile(base+".json", func(f *os.File) error {
		return res.Sequence.WriteJSON(f)
	})
}

func writeFile(fname string, write func(*os.File) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
