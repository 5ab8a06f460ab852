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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises how well a canvas matches its target.
type Stats struct {
	// MeanAbs is the mean absolute brightness difference.
	MeanAbs float64

	// RMS is the root mean square brightness difference.
	RMS float64

	// Deficit is the mean darkness still missing, i.e. the mean over all
	// pixels of max(0, canvas - target). This is the quantity the solver
	// reduces greedily.
	Deficit float64

	// Excess is the mean darkness drawn where the target is lighter.
	Excess float64
}

// Residual compares canvas and target pixel by pixel.
// Both must have the same size.
func Residual(canvas *Canvas, target *TargetField) Stats {
	if canvas.size != target.size {
		panic("stringart: canvas and target sizes differ")
	}
	n := len(canvas.pix)
	if n == 0 {
		return Stats{}
	}

	c := make([]float64, n)
	t := make([]float64, n)
	for i := range n {
		c[i] = float64(canvas.pix[i])
		t[i] = float64(target.pix[i])
	}

	diff := make([]float64, n)
	floats.SubTo(diff, c, t)

	deficit := make([]float64, n)
	excess := make([]float64, n)
	for i, d := range diff {
		deficit[i] = max(0, d)
		excess[i] = max(0, -d)
	}

	return Stats{
		MeanAbs: floats.Distance(c, t, 1) / float64(n),
		RMS:     math.Sqrt(stat.Mean(squares(diff), nil)),
		Deficit: stat.Mean(deficit, nil),
		Excess:  stat.Mean(excess, nil),
	}
}

func squares(x []float64) []float64 {
	res := make([]float64, len(x))
	floats.MulTo(res, x, x)
	return res
}
