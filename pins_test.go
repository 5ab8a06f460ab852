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
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPinsLayout(t *testing.T) {
	pins, err := NewPins(4, 400)
	require.NoError(t, err)

	assert.Equal(t, 4, pins.Len())
	assert.Equal(t, 150, pins.Radius())
	assert.Equal(t, image.Point{X: 200, Y: 200}, pins.Center())

	// pin 0 at 3 o'clock, then clockwise on screen; truncation towards
	// zero moves pin 3 one pixel to the left
	assert.Equal(t, []image.Point{{350, 200}, {200, 350}, {50, 200}, {199, 50}}, pins.Points())
}

func TestNewPinsOnCircle(t *testing.T) {
	for _, n := range []int{2, 3, 50, 200, 400} {
		pins, err := NewPins(n, 800)
		require.NoError(t, err, "n=%d", n)

		c := pins.Center()
		for i := range n {
			p := pins.At(i)
			d := math.Hypot(float64(p.X-c.X), float64(p.Y-c.Y))
			assert.InDelta(t, 350, d, 1.5, "pin %d of %d", i, n)
		}
	}
}

func TestNewPinsDeterministic(t *testing.T) {
	a, err := NewPins(211, 1000)
	require.NoError(t, err)
	b, err := NewPins(211, 1000)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Points(), b.Points())

	c, err := NewPins(211, 1200)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestNewPinsErrors(t *testing.T) {
	cases := []struct {
		name      string
		pins      int
		size      int
		wantParam string
	}{
		{"one pin", 1, 800, "num_pins"},
		{"zero pins", 0, 800, "num_pins"},
		{"zero canvas", 10, 0, "canvas_size"},
		{"negative canvas", 10, -5, "canvas_size"},
		{"canvas equals margin", 10, 2 * Margin, "canvas_size"},
		{"canvas just below", 10, 2*Margin + 1, "canvas_size"},
		{"coincident pins", 100, 2*Margin + 10, "num_pins"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewPins(c.pins, c.size)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig))

			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, c.wantParam, cerr.Param)
		})
	}

	// the smallest accepted canvas
	_, err := NewPins(4, 2*Margin+2*MinRadius)
	assert.NoError(t, err)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		param  string
		modify func(*Config)
	}{
		{"num_pins", func(c *Config) { c.NumPins = 1 }},
		{"num_connections", func(c *Config) { c.NumConnections = -1 }},
		{"canvas_size", func(c *Config) { c.CanvasSize = 0 }},
		{"canvas_size", func(c *Config) { c.CanvasSize = 100 }},
		{"string_opacity", func(c *Config) { c.StringOpacity = 0 }},
		{"string_opacity", func(c *Config) { c.StringOpacity = 1.5 }},
		{"string_opacity", func(c *Config) { c.StringOpacity = math.NaN() }},
		{"pin_radius", func(c *Config) { c.PinRadius = -1 }},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.modify(&cfg)
		err := cfg.Validate()

		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr, "%+v", cfg)
		assert.Equal(t, c.param, cerr.Param)
		assert.ErrorIs(t, err, ErrConfig)
	}

	cfg := DefaultConfig()
	cfg.NumConnections = 0
	cfg.StringOpacity = 1
	assert.NoError(t, cfg.Validate())
}

func TestPinsEqual(t *testing.T) {
	a, err := NewPins(12, 300)
	require.NoError(t, err)
	b, err := NewPins(12, 300)
	require.NoError(t, err)
	c, err := NewPins(12, 302)
	require.NoError(t, err)
	d, err := NewPins(13, 300)
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))

	// same count and canvas, different positions
	e := &Pins{canvasSize: 300, center: b.center, radius: b.radius, pos: b.Points()}
	e.pos[5].X++
	assert.False(t, a.Equal(e))
}

func TestPinsCenterVec(t *testing.T) {
	pins, err := NewPins(4, 400)
	require.NoError(t, err)
	c := pins.CenterVec()
	assert.Equal(t, 200.5, c.X)
	assert.Equal(t, 200.5, c.Y)

	// pins 0 and 2 are symmetric about the centre
	assert.Equal(t, c.X-pins.Vec(2).X, pins.Vec(0).X-c.X)
	assert.Equal(t, c.Y, pins.Vec(0).Y)
}
