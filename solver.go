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
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// progressInterval is the number of iterations between progress reports.
const progressInterval = 50

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets the number of goroutines used to score the candidate
// pins of one iteration. Values below 2 score sequentially.
// The result does not depend on the number of workers.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithLineCache makes the solver use an existing cache, for example one
// shared with an earlier run on the same pins.
func WithLineCache(c *LineCache) Option {
	return func(s *Solver) { s.lines = c }
}

// WithProgress installs a callback which is called every few iterations
// and once more when the run is complete.
func WithProgress(fn func(done, total int)) Option {
	return func(s *Solver) { s.progress = fn }
}

// WithLogger makes the solver log the start and end of a run.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// Solver builds the connection sequence one chord at a time. At every step
// it draws the chord from the current pin which most reduces the
// remaining darkness deficit of the canvas, and never revisits a decision.
type Solver struct {
	cfg    Config
	target *TargetField
	pins   *Pins
	lines  *LineCache
	canvas *Canvas

	workers  int
	progress func(done, total int)
	logger   *log.Logger

	scores []float64 // per pin, reused across iterations
	done   bool
}

// Result is the outcome of a completed run.
type Result struct {
	Config   Config
	Pins     *Pins
	Canvas   *Canvas
	Sequence *Sequence
}

// NewSolver validates the configuration and prepares a run on the given
// target. All configuration and input errors are reported here, before
// any chord is drawn.
func NewSolver(cfg Config, target *TargetField, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("%w: no target", ErrInput)
	}
	if target.Size() != cfg.CanvasSize {
		return nil, fmt.Errorf("%w: target is %dx%d, canvas is %dx%d",
			ErrInput, target.Size(), target.Size(), cfg.CanvasSize, cfg.CanvasSize)
	}

	s := &Solver{cfg: cfg, target: target}
	for _, opt := range opts {
		opt(s)
	}

	if s.lines != nil {
		if err := s.lines.checkLayout(cfg.NumPins, cfg.CanvasSize); err != nil {
			return nil, err
		}
		s.pins = s.lines.Pins()
	} else {
		pins, err := NewPins(cfg.NumPins, cfg.CanvasSize)
		if err != nil {
			return nil, err
		}
		s.pins = pins
		s.lines = NewLineCache(pins)
	}

	s.canvas = NewCanvas(cfg.CanvasSize)
	s.scores = make([]float64, cfg.NumPins)
	return s, nil
}

// Pins returns the pin layout of the run.
func (s *Solver) Pins() *Pins {
	return s.pins
}

// Lines returns the line cache used by the solver.
func (s *Solver) Lines() *LineCache {
	return s.lines
}

// Run performs all iterations and returns the result. The context is
// checked once per iteration, before any scoring; if it is cancelled, Run
// returns the context's error and no result.
//
// A Solver can be run only once.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	if s.done {
		return nil, errors.New("stringart: solver already used")
	}
	s.done = true

	total := s.cfg.NumConnections
	if s.logger != nil {
		s.logger.Printf("generating %d connections on %d pins, canvas %dx%d, opacity %g",
			total, s.cfg.NumPins, s.cfg.CanvasSize, s.cfg.CanvasSize, s.cfg.StringOpacity)
	}

	seq := make([]int, 0, total)
	opacity := float32(s.cfg.StringOpacity)
	current, previous := 0, -1
	for i := range total {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		best := s.step(current, previous)
		s.canvas.Commit(s.lines.Line(current, best), opacity)
		seq = append(seq, best)
		previous, current = current, best

		if s.progress != nil && i%progressInterval == 0 {
			s.progress(i+1, total)
		}
	}
	if s.progress != nil {
		s.progress(total, total)
	}
	if s.logger != nil {
		s.logger.Printf("done: %d connections, %d chords rasterised", len(seq), s.lines.Len())
	}

	return &Result{
		Config: s.cfg,
		Pins:   s.pins,
		Canvas: s.canvas,
		Sequence: &Sequence{
			NumPins:       s.cfg.NumPins,
			CanvasSize:    s.cfg.CanvasSize,
			StringOpacity: s.cfg.StringOpacity,
			Pins:          seq,
		},
	}, nil
}

// step returns the pin to connect to from current. Candidates are all
// pins except current and previous, the pin the path just arrived from.
// With only two pins, previous is the only pin left and stays eligible.
//
// Ties go to the lowest pin index: the scan runs in index order and only a
// strictly greater score replaces the incumbent. The sentinel is below
// any possible score, so some candidate is always chosen.
func (s *Solver) step(current, previous int) int {
	n := s.pins.Len()
	if n == 2 {
		previous = -1
	}

	s.score(current, previous)

	best := current
	bestScore := -1.0
	for pin := range n {
		if pin == current || pin == previous {
			continue
		}
		if s.scores[pin] > bestScore {
			bestScore = s.scores[pin]
			best = pin
		}
	}
	return best
}

// score fills s.scores for all eligible candidates. The canvas is only
// read here, so the candidates can be scored in parallel.
func (s *Solver) score(current, previous int) {
	n := s.pins.Len()
	if s.workers < 2 {
		for pin := range n {
			if pin == current || pin == previous {
				continue
			}
			s.scores[pin] = s.canvas.Score(s.lines.Line(current, pin), s.target)
		}
		return
	}

	var wg sync.WaitGroup
	for w := range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pin := w; pin < n; pin += s.workers {
				if pin == current || pin == previous {
					continue
				}
				s.scores[pin] = s.canvas.Score(s.lines.Line(current, pin), s.target)
			}
		}()
	}
	wg.Wait()
}

// Generate runs the greedy solver on the target and returns the result.
// Configuration and input errors are reported before generation starts.
func Generate(ctx context.Context, cfg Config, target *TargetField, opts ...Option) (*Result, error) {
	s, err := NewSolver(cfg, target, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx)
}
