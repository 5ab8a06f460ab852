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

// Command stringart turns an image into a string art pattern.
//
// It writes four files next to the given output prefix: a PNG preview,
// a PDF template, the connection sequence as JSON and a text sheet with
// building instructions.
//
// Usage:
//
//	stringart [flags] image
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/preview"
)

func main() {
	def := stringart.DefaultConfig()
	numPins := flag.Int("pins", def.NumPins, "number of pins")
	numConnections := flag.Int("connections", def.NumConnections, "number of connections")
	canvasSize := flag.Int("size", def.CanvasSize, "canvas size in pixels")
	opacity := flag.Float64("opacity", def.StringOpacity, "darkness added by one string, in (0, 1]")
	pinRadius := flag.Int("pin-radius", def.PinRadius, "pin marker radius in the preview")
	defTarget := stringart.DefaultTargetOptions()
	resample := flag.String("resample", defTarget.Resample.String(),
		"resampling filter: catmullrom, approxbilinear, bilinear, lanczos3 or mitchell")
	blur := flag.Float64("blur", defTarget.BlurSigma, "smoothing sigma in pixels, 0 to disable")
	outside := flag.Float64("outside", float64(defTarget.Outside), "brightness outside the pin circle, in [0, 1]")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "goroutines for scoring candidates")
	labels := flag.Bool("labels", false, "label pins in the preview")
	scale := flag.Float64("scale", 1, "preview pixels per canvas pixel")
	out := flag.String("o", "string_art", "output file prefix")
	replay := flag.String("replay", "", "render an exported JSON sequence instead of generating one")
	quiet := flag.Bool("q", false, "suppress progress output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] image\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "stringart: ", log.LstdFlags)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	popt := preview.Options{
		PinRadius:    *pinRadius,
		OutlineWidth: 2,
		Labels:       *labels,
		Scale:        *scale,
	}

	cfg := stringart.Config{
		NumPins:        *numPins,
		NumConnections: *numConnections,
		CanvasSize:     *canvasSize,
		StringOpacity:  *opacity,
		PinRadius:      *pinRadius,
	}

	if *replay != "" {
		// flags fill in parameters the file does not record
		if err := runReplay(*replay, *out, cfg, popt, logger); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	topt := defTarget
	topt.BlurSigma = *blur
	topt.Outside = float32(*outside)
	r, err := stringart.ParseResampler(strings.ToLower(*resample))
	if err != nil {
		log.Fatal(err)
	}
	topt.Resample = r

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, flag.Arg(0), *out, cfg, topt, popt, *workers, logger)
	if errors.Is(err, context.Canceled) {
		logger.Print("interrupted, nothing written")
		os.Exit(1)
	} else if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, in, out string, cfg stringart.Config, topt stringart.TargetOptions,
	popt preview.Options, workers int, logger *log.Logger) error {
	img, err := stringart.LoadImage(in)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Printf("loaded %s (%dx%d)", in, b.Dx(), b.Dy())

	target, err := stringart.PrepareTarget(img, cfg.CanvasSize, topt)
	if err != nil {
		return err
	}

	pins, err := stringart.NewPins(cfg.NumPins, cfg.CanvasSize)
	if err != nil {
		return err
	}
	lines := stringart.NewLineCache(pins)
	if workers > 1 {
		lines.Warm(workers)
		logger.Printf("rasterised %d chords", lines.Len())
	}

	res, err := stringart.Generate(ctx, cfg, target,
		stringart.WithLineCache(lines),
		stringart.WithWorkers(workers),
		stringart.WithLogger(logger),
		stringart.WithProgress(func(done, total int) {
			logger.Printf("generated %d/%d connections", done, total)
		}))
	if err != nil {
		return err
	}

	st := stringart.Residual(res.Canvas, target)
	logger.Printf("residual: mean abs %.4f, rms %.4f, deficit %.4f, excess %.4f",
		st.MeanAbs, st.RMS, st.Deficit, st.Excess)

	popt.StringOpacity = cfg.StringOpacity
	return writeOutputs(out, res.Pins, res.Sequence, popt, logger)
}

func runReplay(in, out string, fallback stringart.Config, popt preview.Options, logger *log.Logger) (err error) {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	seq, err := stringart.ReadSequenceWith(f, fallback)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	pins, err := stringart.NewPins(seq.NumPins, seq.CanvasSize)
	if err != nil {
		return err
	}
	logger.Printf("replaying %d connections on %d pins", len(seq.Pins), seq.NumPins)

	popt.StringOpacity = seq.StringOpacity
	return writeOutputs(out, pins, seq, popt, logger)
}

func writeOutputs(prefix string, pins *stringart.Pins, seq *stringart.Sequence,
	popt preview.Options, logger *log.Logger) error {
	img := preview.Render(pins, seq.Pins, popt)
	files := []struct {
		suffix string
		write  func(*os.File) error
	}{
		{".png", func(f *os.File) error { return preview.WritePNG(f, img) }},
		{".json", func(f *os.File) error { return seq.WriteJSON(f) }},
		{".txt", func(f *os.File) error { return seq.WriteText(f) }},
	}
	for _, file := range files {
		fname := prefix + file.suffix
		if err := writeFile(fname, file.write); err != nil {
			return err
		}
		logger.Printf("wrote %s", fname)
	}

	fname := prefix + ".pdf"
	if err := preview.WritePDF(fname, pins, seq.Pins, popt); err != nil {
		return err
	}
	logger.Printf("wrote %s", fname)
	return nil
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
