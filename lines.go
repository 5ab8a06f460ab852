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
	"sync"
	"sync/atomic"
)

// LineCache holds the rasterised chord between every pair of pins.
// Chords are computed on first use and kept for the lifetime of the cache.
// Since the pixels depend only on the pin geometry, one cache can serve
// any number of runs which share the same Pins.
//
// The cache is a flat array with one slot per unordered pin pair; the slot
// for i < j is j*(j-1)/2 + i. Each slot stores row-major pixel offsets
// (y*size + x) so that the hot loops in Canvas index the fields directly.
//
// A LineCache is safe for concurrent use.
type LineCache struct {
	pins  *Pins
	size  int
	slots []lineSlot
	count atomic.Int64
}

type lineSlot struct {
	once sync.Once
	offs []int32
}

// NewLineCache returns an empty cache for the given pins.
func NewLineCache(pins *Pins) *LineCache {
	n := pins.Len()
	return &LineCache{
		pins:  pins,
		size:  pins.CanvasSize(),
		slots: make([]lineSlot, n*(n-1)/2),
	}
}

// Pins returns the pin layout the cache was built for.
func (c *LineCache) Pins() *Pins {
	return c.pins
}

// Len returns the number of pin pairs rasterised so far.
func (c *LineCache) Len() int {
	return int(c.count.Load())
}

// checkLayout reports an error unless the cache was built for the pins
// NewPins(numPins, canvasSize) returns.
func (c *LineCache) checkLayout(numPins, canvasSize int) error {
	want, err := NewPins(numPins, canvasSize)
	if err != nil {
		return err
	}
	if !c.pins.Equal(want) {
		return &ConfigError{"line_cache", fmt.Sprintf("%d pins on %d", c.pins.Len(), c.pins.CanvasSize()),
			"cache was built for a different layout"}
	}
	return nil
}

// pairIndex maps the unordered pair {i, j} to its slot.
func (c *LineCache) pairIndex(i, j int) int {
	n := c.pins.Len()
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		panic(fmt.Sprintf("stringart: invalid pin pair (%d, %d) for %d pins", i, j, n))
	}
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

// Line returns the canvas offsets (y*size + x) of all pixels on the chord
// between pins i and j, in walking order from the lower to the higher pin
// index. The result is identical for (i, j) and (j, i) and must not be
// modified by the caller.
//
// Line panics if i == j or if either index is out of range.
func (c *LineCache) Line(i, j int) []int32 {
	slot := &c.slots[c.pairIndex(i, j)]
	slot.once.Do(func() {
		lo, hi := min(i, j), max(i, j)
		slot.offs = bresenham(c.pins.At(lo), c.pins.At(hi), c.size)
		c.count.Add(1)
	})
	return slot.offs
}

// Points returns the pixels of the chord between pins i and j as
// coordinates.  See Line for the ordering.
func (c *LineCache) Points(i, j int) []image.Point {
	offs := c.Line(i, j)
	res := make([]image.Point, len(offs))
	for k, o := range offs {
		res[k] = image.Point{X: int(o) % c.size, Y: int(o) / c.size}
	}
	return res
}

// Warm rasterises all pin pairs, using the given number of goroutines.
// Pairs which are already cached are left untouched.
func (c *LineCache) Warm(workers int) {
	n := c.pins.Len()
	workers = max(workers, 1)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 1 + w; j < n; j += workers {
				for i := range j {
					c.Line(i, j)
				}
			}
		}()
	}
	wg.Wait()
}

// bresenham walks the integer line from a to b and returns the offsets of
// all visited pixels inside the size×size canvas. Pixels outside the
// canvas are skipped but do not end the walk.
func bresenham(a, b image.Point, size int) []int32 {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X >= b.X {
		sx = -1
	}
	if a.Y >= b.Y {
		sy = -1
	}

	offs := make([]int32, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := a.X, a.Y
	for {
		if x >= 0 && x < size && y >= 0 && y < size {
			offs = append(offs, int32(y*size+x))
		}
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return offs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
