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
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceJSONRoundTrip(t *testing.T) {
	cfg := smallConfig()
	res, err := Generate(context.Background(), cfg, diskTarget(cfg.CanvasSize))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, res.Sequence.WriteJSON(buf))

	seq, err := ReadSequence(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, res.Sequence, seq)

	canvas, err := seq.Replay()
	require.NoError(t, err)
	assert.Equal(t, res.Canvas.Values(), canvas.Values())
}

func TestSequenceJSONFields(t *testing.T) {
	seq := &Sequence{NumPins: 4, CanvasSize: 400, StringOpacity: 0.3, Pins: []int{1, 2, 0}}
	buf := &bytes.Buffer{}
	require.NoError(t, seq.WriteJSON(buf))

	var data map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, []any{0.0, 1.0, 2.0, 0.0}, data["connections"])
	assert.Equal(t, 4.0, data["num_pins"])
	assert.Equal(t, 3.0, data["num_connections"])
	assert.Equal(t, 400.0, data["canvas_size"])
	assert.Equal(t, 0.3, data["string_opacity"])
	assert.Contains(t, data["instructions"], "Start at pin 0")
	assert.Contains(t, data["format"], "Continuous path")
}

func TestReadSequenceErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":     `{"connections": [0, 1`,
		"empty":      `{"connections": [], "num_pins": 4, "num_connections": 0, "canvas_size": 400, "string_opacity": 0.3}`,
		"no start":   `{"connections": [1, 2], "num_pins": 4, "num_connections": 1, "canvas_size": 400, "string_opacity": 0.3}`,
		"count":      `{"connections": [0, 1, 2], "num_pins": 4, "num_connections": 5, "canvas_size": 400, "string_opacity": 0.3}`,
		"range":      `{"connections": [0, 1, 4], "num_pins": 4, "num_connections": 2, "canvas_size": 400, "string_opacity": 0.3}`,
		"negative":   `{"connections": [0, -1], "num_pins": 4, "num_connections": 1, "canvas_size": 400, "string_opacity": 0.3}`,
		"self loop":  `{"connections": [0, 2, 2], "num_pins": 4, "num_connections": 2, "canvas_size": 400, "string_opacity": 0.3}`,
		"start loop": `{"connections": [0, 0], "num_pins": 4, "num_connections": 1, "canvas_size": 400, "string_opacity": 0.3}`,
	}
	for name, in := range cases {
		_, err := ReadSequence(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInput, name)
	}

	// parameters are checked like a generation config
	in := `{"connections": [0, 1], "num_pins": 4, "num_connections": 1, "canvas_size": 400, "string_opacity": 0}`
	_, err := ReadSequence(strings.NewReader(in))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "string_opacity", cerr.Param)
}

func TestReplayWithWrongCache(t *testing.T) {
	pins, err := NewPins(8, 200)
	require.NoError(t, err)
	seq := &Sequence{NumPins: 4, CanvasSize: 200, StringOpacity: 0.5, Pins: []int{1, 2}}

	_, err = seq.ReplayWith(NewLineCache(pins))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestReplayOpacity(t *testing.T) {
	seq := &Sequence{NumPins: 2, CanvasSize: 120, StringOpacity: 0.25, Pins: []int{1, 0, 1}}
	canvas, err := seq.Replay()
	require.NoError(t, err)

	pins, err := NewPins(2, 120)
	require.NoError(t, err)
	for _, p := range NewLineCache(pins).Points(0, 1) {
		assert.Equal(t, float32(0.25), canvas.At(p.X, p.Y), "%v", p)
	}
	assert.Equal(t, float32(1), canvas.At(0, 0))
}

func TestWriteText(t *testing.T) {
	seq := &Sequence{NumPins: 4, CanvasSize: 400, StringOpacity: 0.3, Pins: []int{1, 2, 0}}
	buf := &bytes.Buffer{}
	require.NoError(t, seq.WriteText(buf))

	text := buf.String()
	assert.True(t, strings.HasPrefix(text, "String Art Connection Sequence\n"))
	assert.Contains(t, text, "Number of pins: 4\n")
	assert.Contains(t, text, "Number of connections: 3\n")
	assert.Contains(t, text, "Canvas size: 400x400\n")
	assert.Contains(t, text, "\n0, 1, 2, 0\n")
	assert.Contains(t, text, "numbered 0 to 3 clockwise")
}

func TestReadSequenceWithFallback(t *testing.T) {
	// pins only, no canvas size or opacity
	in := `{
  "connections": [0, 2, 1, 3],
  "num_pins": 4,
  "num_connections": 3,
  "instructions": "Start at pin 0, then follow the sequence.",
  "format": "Continuous path"
}`
	_, err := ReadSequence(strings.NewReader(in))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "canvas_size", cerr.Param)

	fallback := Config{NumPins: 99, CanvasSize: 400, StringOpacity: 0.3}
	seq, err := ReadSequenceWith(strings.NewReader(in), fallback)
	require.NoError(t, err)
	assert.Equal(t, &Sequence{NumPins: 4, CanvasSize: 400, StringOpacity: 0.3, Pins: []int{2, 1, 3}}, seq)

	canvas, err := seq.Replay()
	require.NoError(t, err)
	assert.Equal(t, 400, canvas.Size())

	// values in the file take precedence
	full := `{"connections": [0, 1], "num_pins": 4, "num_connections": 1, "canvas_size": 200, "string_opacity": 0.5}`
	seq, err = ReadSequenceWith(strings.NewReader(full), fallback)
	require.NoError(t, err)
	assert.Equal(t, 200, seq.CanvasSize)
	assert.Equal(t, 0.5, seq.StringOpacity)

	// without num_connections the count is not checked
	seq, err = ReadSequenceWith(strings.NewReader(`{"connections": [0, 3, 1]}`), fallback)
	require.NoError(t, err)
	assert.Equal(t, 99, seq.NumPins)
	assert.Equal(t, []int{3, 1}, seq.Pins)
}
