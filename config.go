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
	"fmt"
	"math"
)

// Layout constants.
const (
	// Margin is the distance in pixels between the canvas edge and the
	// circle the pins sit on.
	Margin = 50

	// MinRadius is the smallest pin circle radius accepted by NewPins.
	// Canvases with CanvasSize/2 - Margin below this value are rejected.
	MinRadius = 1
)

// ErrConfig is wrapped by all errors caused by invalid parameters.
var ErrConfig = errors.New("invalid configuration")

// ErrInput is wrapped by all errors caused by missing or unreadable
// target image data.
var ErrInput = errors.New("invalid input image")

// ConfigError reports a single invalid configuration parameter.
type ConfigError struct {
	Param  string // parameter name, as used in exported files
	Value  any    // offending value
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Param, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrConfig).
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// Config holds the parameters of a generation run.
type Config struct {
	// NumPins is the number of pins on the circle. Must be at least 2.
	NumPins int

	// NumConnections is the number of chords in the generated path.
	// Must be non-negative.
	NumConnections int

	// CanvasSize is the side length of the square working canvas in pixels.
	// It must leave a pin circle radius of at least MinRadius after the
	// Margin is subtracted.
	CanvasSize int

	// StringOpacity is the amount of darkness added to every pixel of a
	// chord each time the chord is drawn. Must be in (0, 1].
	StringOpacity float64

	// PinRadius is the radius of pin markers in the visualisation.
	// It does not influence generation.
	PinRadius int
}

// DefaultConfig returns the default parameters.
func DefaultConfig() Config {
	return Config{
		NumPins:        200,
		NumConnections: 3000,
		CanvasSize:     800,
		StringOpacity:  0.3,
		PinRadius:      3,
	}
}

// Radius returns the radius of the pin circle for this configuration.
func (c Config) Radius() int {
	return c.CanvasSize/2 - Margin
}

// Validate checks all parameters and returns a *ConfigError for the first
// invalid one.
func (c Config) Validate() error {
	switch {
	case c.NumPins < 2:
		return &ConfigError{"num_pins", c.NumPins, "need at least 2 pins"}
	case c.NumConnections < 0:
		return &ConfigError{"num_connections", c.NumConnections, "must not be negative"}
	case c.CanvasSize <= 0:
		return &ConfigError{"canvas_size", c.CanvasSize, "must be positive"}
	case c.Radius() < MinRadius:
		return &ConfigError{"canvas_size", c.CanvasSize,
			fmt.Sprintf("pin circle radius %d is below %d (margin %d)", c.Radius(), MinRadius, Margin)}
	case math.IsNaN(c.StringOpacity) || c.StringOpacity <= 0 || c.StringOpacity > 1:
		return &ConfigError{"string_opacity", c.StringOpacity, "must be in (0, 1]"}
	case c.PinRadius < 0:
		return &ConfigError{"pin_radius", c.PinRadius, "must not be negative"}
	}
	return nil
}
