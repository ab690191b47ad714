// Package color provides a validated four-channel color value and
// Porter-Duff "over" compositing between two colors.
package color

import (
	"fmt"
	"math"
)

// Color is an immutable RGBA color with float64 channels in [0, 1].
// The zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// New constructs a Color from four channels, each in [0, 1].
// It returns a *ChannelError naming the first invalid channel.
func New(r, g, b, a float64) (Color, error) {
	if !inRange01(r) {
		return Color{}, &ChannelError{Channel: "red", Value: r}
	}
	if !inRange01(g) {
		return Color{}, &ChannelError{Channel: "green", Value: g}
	}
	if !inRange01(b) {
		return Color{}, &ChannelError{Channel: "blue", Value: b}
	}
	if !inRange01(a) {
		return Color{}, &ChannelError{Channel: "alpha", Value: a}
	}
	return Color{r: r, g: g, b: b, a: a}, nil
}

// MustNew is like New but panics on an invalid channel.
// Intended for package-level literals and test tables.
func MustNew(r, g, b, a float64) Color {
	c, err := New(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

// Red returns the red channel.
func (c Color) Red() float64 { return c.r }

// Green returns the green channel.
func (c Color) Green() float64 { return c.g }

// Blue returns the blue channel.
func (c Color) Blue() float64 { return c.b }

// Alpha returns the alpha channel, 0 (transparent) to 1 (opaque).
func (c Color) Alpha() float64 { return c.a }

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a float64) (Color, error) {
	return New(c.r, c.g, c.b, a)
}

// Equal reports whether both colors have identical channels.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ApproxEqual reports whether every channel of both colors is within tol.
func (c Color) ApproxEqual(other Color, tol float64) bool {
	return math.Abs(c.r-other.r) <= tol &&
		math.Abs(c.g-other.g) <= tol &&
		math.Abs(c.b-other.b) <= tol &&
		math.Abs(c.a-other.a) <= tol
}

// String returns a human-readable representation of the color.
func (c Color) String() string {
	return fmt.Sprintf("color(r=%g g=%g b=%g a=%g)", c.r, c.g, c.b, c.a)
}

// Lerp linearly interpolates between two colors.
// t=0 returns a, t=1 returns b; t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	if t <= 0 || math.IsNaN(t) {
		return a
	}
	if t >= 1 {
		return b
	}
	return Color{
		r: a.r + t*(b.r-a.r),
		g: a.g + t*(b.g-a.g),
		b: a.b + t*(b.b-a.b),
		a: a.a + t*(b.a-a.a),
	}
}

// inRange01 reports whether x is a real number in [0, 1].
func inRange01(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{a: 1}
	White       = Color{r: 1, g: 1, b: 1, a: 1}
	Red         = Color{r: 1, a: 1}
	Green       = Color{g: 1, a: 1}
	Blue        = Color{b: 1, a: 1}
)
