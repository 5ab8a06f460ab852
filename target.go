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
	"image/color"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// TargetField is the preprocessed target image: one brightness value in
// [0, 1] per canvas pixel, row-major. The darkness a pixel asks for is
// 1 - value. A TargetField is immutable.
type TargetField struct {
	size int
	pix  []float32
}

// NewTargetField wraps a row-major slice of size×size brightness values.
// The slice is copied.
func NewTargetField(size int, values []float32) (*TargetField, error) {
	if size <= 0 {
		return nil, &ConfigError{"canvas_size", size, "must be positive"}
	}
	if len(values) != size*size {
		return nil, fmt.Errorf("%w: %d target values for a %dx%d canvas", ErrInput, len(values), size, size)
	}
	for i, v := range values {
		if !(v >= 0 && v <= 1) {
			return nil, fmt.Errorf("%w: target value %g at (%d, %d) outside [0, 1]",
				ErrInput, v, i%size, i/size)
		}
	}
	return &TargetField{size: size, pix: append([]float32(nil), values...)}, nil
}

// UniformTarget returns a target with the same brightness v everywhere.
func UniformTarget(size int, v float32) *TargetField {
	pix := make([]float32, size*size)
	for i := range pix {
		pix[i] = v
	}
	return &TargetField{size: size, pix: pix}
}

// Size returns the side length of the target.
func (t *TargetField) Size() int {
	return t.size
}

// At returns the brightness of pixel (x, y).
func (t *TargetField) At(x, y int) float32 {
	return t.pix[y*t.size+x]
}

// Darkness returns the darkness 1 - At(x, y) the target asks for.
func (t *TargetField) Darkness(x, y int) float32 {
	return 1 - t.pix[y*t.size+x]
}

// Values returns a copy of the brightness values in row-major order.
func (t *TargetField) Values() []float32 {
	return append([]float32(nil), t.pix...)
}

// Image returns the target as an 8-bit grayscale image.
func (t *TargetField) Image() *image.Gray {
	return grayImage(t.size, t.pix)
}

// Resampler selects the interpolation used to fit the input image to the
// canvas.
type Resampler int

// Supported resamplers.  The first three use golang.org/x/image/draw,
// the last two github.com/nfnt/resize.
const (
	CatmullRom Resampler = iota
	ApproxBiLinear
	BiLinear
	Lanczos3
	MitchellNetravali
)

var resamplerNames = map[Resampler]string{
	CatmullRom:        "catmullrom",
	ApproxBiLinear:    "approxbilinear",
	BiLinear:          "bilinear",
	Lanczos3:          "lanczos3",
	MitchellNetravali: "mitchell",
}

func (r Resampler) String() string {
	if name, ok := resamplerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Resampler(%d)", int(r))
}

// ParseResampler converts a name as returned by Resampler.String back to
// a Resampler.
func ParseResampler(name string) (Resampler, error) {
	for r, n := range resamplerNames {
		if n == name {
			return r, nil
		}
	}
	return 0, &ConfigError{"resample", name, "unknown resampler"}
}

// TargetOptions controls PrepareTarget.
type TargetOptions struct {
	Resample Resampler

	// BlurSigma is the standard deviation of the Gaussian smoothing,
	// in pixels. Zero disables smoothing.
	BlurSigma float64

	// BlurRadius is the half-width of the smoothing kernel.  The kernel
	// has 2*BlurRadius+1 taps.
	BlurRadius int

	// Outside is the brightness given to pixels outside the pin circle
	// before smoothing. The zero value makes them black, which also
	// darkens the target near the pins.
	Outside float32
}

// DefaultTargetOptions returns the preprocessing used unless the caller
// asks for something else: bilinear resampling, a black surround and a
// 5×5 Gaussian with σ = 1.
func DefaultTargetOptions() TargetOptions {
	return TargetOptions{
		Resample:   BiLinear,
		BlurSigma:  1,
		BlurRadius: 2,
	}
}

// PrepareTarget converts an image into the target for a size×size canvas.
// The image is converted to grayscale, stretched to the canvas, normalised
// to [0, 1], restricted to the pin circle and smoothed. Pixels outside the
// pin circle are set to opt.Outside before smoothing.
func PrepareTarget(img image.Image, size int, opt TargetOptions) (*TargetField, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image", ErrInput)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image %v", ErrInput, b)
	}
	radius := size/2 - Margin
	if size <= 0 || radius < MinRadius {
		return nil, &ConfigError{"canvas_size", size, "too small for the pin margin"}
	}

	if !(opt.Outside >= 0 && opt.Outside <= 1) {
		return nil, &ConfigError{"outside", opt.Outside, "must be in [0, 1]"}
	}

	gray, err := resample(img, size, opt.Resample)
	if err != nil {
		return nil, err
	}

	pix := make([]float32, size*size)
	for y := range size {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+size]
		for x, v := range row {
			pix[y*size+x] = float32(v) / 255
		}
	}

	applyMask(pix, size, size/2, radius, opt.Outside)
	if opt.BlurSigma > 0 && opt.BlurRadius > 0 {
		gaussianBlur(pix, size, opt.BlurRadius, opt.BlurSigma)
	}

	return &TargetField{size: size, pix: pix}, nil
}

// resample converts img to an 8-bit grayscale image of size×size pixels.
func resample(img image.Image, size int, r Resampler) (*image.Gray, error) {
	dst := image.NewGray(image.Rect(0, 0, size, size))

	switch r {
	case CatmullRom, ApproxBiLinear, BiLinear:
		var s draw.Scaler
		switch r {
		case CatmullRom:
			s = draw.CatmullRom
		case ApproxBiLinear:
			s = draw.ApproxBiLinear
		default:
			s = draw.BiLinear
		}
		// convert first, so that the scaler interpolates luminance values
		src := image.NewGray(img.Bounds())
		draw.Draw(src, src.Bounds(), img, img.Bounds().Min, draw.Src)
		s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	case Lanczos3, MitchellNetravali:
		interp := resize.Lanczos3
		if r == MitchellNetravali {
			interp = resize.MitchellNetravali
		}
		scaled := resize.Resize(uint(size), uint(size), img, interp)
		b := scaled.Bounds()
		for y := range size {
			for x := range size {
				c := color.GrayModel.Convert(scaled.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				dst.Pix[y*dst.Stride+x] = c.Y
			}
		}

	default:
		return nil, &ConfigError{"resample", r, "unknown resampler"}
	}
	return dst, nil
}

// applyMask sets all pixels outside the circle of the given radius around
// (c, c) to fill.
func applyMask(pix []float32, size, c, radius int, fill float32) {
	r2 := radius * radius
	for y := range size {
		dy := y - c
		for x := range size {
			dx := x - c
			if dx*dx+dy*dy > r2 {
				pix[y*size+x] = fill
			}
		}
	}
}

// gaussianBlur smooths pix in place with a separable Gaussian kernel of
// 2*radius+1 taps. Borders are reflected without repeating the edge pixel
// (dcb|abcd|cba).
func gaussianBlur(pix []float32, size, radius int, sigma float64) {
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	tmp := make([]float32, len(pix))
	line := make([]float64, size)

	// horizontal pass: pix -> tmp
	for y := range size {
		row := pix[y*size : (y+1)*size]
		for x := range size {
			line[x] = convolveAt(kernel, radius, size, x, func(i int) float32 { return row[i] })
		}
		for x, v := range line {
			tmp[y*size+x] = float32(v)
		}
	}

	// vertical pass: tmp -> pix
	for x := range size {
		for y := range size {
			line[y] = convolveAt(kernel, radius, size, y, func(i int) float32 { return tmp[i*size+x] })
		}
		for y, v := range line {
			pix[y*size+x] = float32(min(1, max(0, v)))
		}
	}
}

func convolveAt(kernel []float64, radius, n, pos int, get func(int) float32) float64 {
	var acc float64
	for k, w := range kernel {
		acc += w * float64(get(reflect101(pos+k-radius, n)))
	}
	return acc
}

// reflect101 maps an out-of-range index back into [0, n).
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*(n-1) - i
		}
	}
	return i
}
