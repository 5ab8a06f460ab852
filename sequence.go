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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// StartPin is the pin every path starts from.
const StartPin = 0

const (
	instructions = "Start at pin 0, then follow the sequence. Each number represents the next pin to connect to."
	pathFormat   = "Continuous path - connect pin 0 to pin connections[0], then to connections[1], etc."
)

// Sequence is the ordered list of pins visited by the path. The path
// starts at StartPin, which is not part of Pins.
type Sequence struct {
	NumPins       int
	CanvasSize    int
	StringOpacity float64
	Pins          []int
}

// Config returns the generation parameters recorded in the sequence.
// PinRadius is not recorded and is left at zero.
func (s *Sequence) Config() Config {
	return Config{
		NumPins:        s.NumPins,
		NumConnections: len(s.Pins),
		CanvasSize:     s.CanvasSize,
		StringOpacity:  s.StringOpacity,
	}
}

// Path returns the full list of pins, including the start pin.
func (s *Sequence) Path() []int {
	path := make([]int, 0, len(s.Pins)+1)
	path = append(path, StartPin)
	return append(path, s.Pins...)
}

// Validate checks that the sequence describes a path which can be built:
// pin indices in range and no chord from a pin to itself.
func (s *Sequence) Validate() error {
	if err := s.Config().Validate(); err != nil {
		return err
	}
	prev := StartPin
	for k, p := range s.Pins {
		if p < 0 || p >= s.NumPins {
			return fmt.Errorf("%w: connection %d: pin %d out of range [0, %d)", ErrInput, k, p, s.NumPins)
		}
		if p == prev {
			return fmt.Errorf("%w: connection %d: pin %d connects to itself", ErrInput, k, p)
		}
		prev = p
	}
	return nil
}

// Replay draws the chords of the sequence, in order, on a fresh canvas.
// For a sequence produced by Generate, the result is identical to the
// canvas of the run.
func (s *Sequence) Replay() (*Canvas, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	pins, err := NewPins(s.NumPins, s.CanvasSize)
	if err != nil {
		return nil, err
	}
	return s.ReplayWith(NewLineCache(pins))
}

// ReplayWith is like Replay, but uses an existing line cache.
func (s *Sequence) ReplayWith(lines *LineCache) (*Canvas, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := lines.checkLayout(s.NumPins, s.CanvasSize); err != nil {
		return nil, err
	}

	canvas := NewCanvas(s.CanvasSize)
	opacity := float32(s.StringOpacity)
	current := StartPin
	for _, p := range s.Pins {
		canvas.Commit(lines.Line(current, p), opacity)
		current = p
	}
	return canvas, nil
}

type jsonSequence struct {
	Connections    []int   `json:"connections"`
	NumPins        int     `json:"num_pins"`
	NumConnections int     `json:"num_connections"`
	CanvasSize     int     `json:"canvas_size"`
	StringOpacity  float64 `json:"string_opacity"`
	Instructions   string  `json:"instructions"`
	Format         string  `json:"format"`
}

// WriteJSON writes the sequence in the JSON exchange format. The
// "connections" array starts with the start pin.
func (s *Sequence) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonSequence{
		Connections:    s.Path(),
		NumPins:        s.NumPins,
		NumConnections: len(s.Pins),
		CanvasSize:     s.CanvasSize,
		StringOpacity:  s.StringOpacity,
		Instructions:   instructions,
		Format:         pathFormat,
	})
}

// ReadSequence parses a sequence written by WriteJSON and validates it.
// All parameters must be present in the input.
func ReadSequence(r io.Reader) (*Sequence, error) {
	return ReadSequenceWith(r, Config{})
}

// jsonInput accepts files which omit some of the parameters.
type jsonInput struct {
	Connections    []int    `json:"connections"`
	NumPins        *int     `json:"num_pins"`
	NumConnections *int     `json:"num_connections"`
	CanvasSize     *int     `json:"canvas_size"`
	StringOpacity  *float64 `json:"string_opacity"`
}

// ReadSequenceWith is like ReadSequence, but parameters missing from the
// input are taken from fallback, so that files which only record the pins,
// without canvas_size and string_opacity, can be read.
// Values present in the input always win.
func ReadSequenceWith(r io.Reader, fallback Config) (*Sequence, error) {
	var data jsonInput
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if len(data.Connections) == 0 || data.Connections[0] != StartPin {
		return nil, fmt.Errorf("%w: connections must start with pin %d", ErrInput, StartPin)
	}
	n := len(data.Connections) - 1
	if data.NumConnections != nil && *data.NumConnections != n {
		return nil, fmt.Errorf("%w: num_connections is %d, but %d connections are listed",
			ErrInput, *data.NumConnections, n)
	}

	s := &Sequence{
		NumPins:       fallback.NumPins,
		CanvasSize:    fallback.CanvasSize,
		StringOpacity: fallback.StringOpacity,
		Pins:          data.Connections[1:],
	}
	if data.NumPins != nil {
		s.NumPins = *data.NumPins
	}
	if data.CanvasSize != nil {
		s.CanvasSize = *data.CanvasSize
	}
	if data.StringOpacity != nil {
		s.StringOpacity = *data.StringOpacity
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteText writes a human-readable building instruction sheet.
func (s *Sequence) WriteText(w io.Writer) error {
	path := s.Path()
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}

	_, err := fmt.Fprintf(w, `String Art Connection Sequence

Number of pins: %d
Number of connections: %d
Canvas size: %dx%d

Instructions:
Start at pin 0, then follow the sequence below.
Each number represents the next pin to connect to.

Connection sequence:
%s

Pin Layout:
Pins are arranged in a circle, numbered 0 to %d clockwise starting from the rightmost point (3 o'clock position).
`, s.NumPins, len(s.Pins), s.CanvasSize, s.CanvasSize, strings.Join(parts, ", "), s.NumPins-1)
	return err
}
