package color

import (
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for channel normalization.
const maxByte = 255.0

// RGBA implements the image/color.Color interface, returning
// alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(math.Round(c.r * c.a * 0xFFFF)),
		uint32(math.Round(c.g * c.a * 0xFFFF)),
		uint32(math.Round(c.b * c.a * 0xFFFF)),
		uint32(math.Round(c.a * 0xFFFF))
}

// NRGBA returns the color as rounded 8-bit non-premultiplied channels.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: channelToByte(c.r),
		G: channelToByte(c.g),
		B: channelToByte(c.b),
		A: channelToByte(c.a),
	}
}

// FromStd converts any image/color.Color through the NRGBA model.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{
		r: float64(n.R) / maxByte,
		g: float64(n.G) / maxByte,
		b: float64(n.B) / maxByte,
		a: float64(n.A) / maxByte,
	}
}

// Named looks up an SVG 1.1 color name (case-insensitive).
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return FromStd(c), true
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA"; the leading '#'
// is optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Color{}, &ParseError{Input: s, Reason: "invalid hex digit"}
			}
			// 0xA expands to 0xAA.
			ch[i] = uint8(v * 0x11)
		}
		return fromBytes(ch[0], ch[1], ch[2], 0xFF), nil
	case 6, 8:
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Color{}, &ParseError{Input: s, Reason: "invalid hex digit"}
		}
		if len(hex) == 6 {
			v = v<<8 | 0xFF
		}
		return fromBytes(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
	default:
		return Color{}, &ParseError{Input: s, Reason: "expected 3, 6 or 8 hex digits"}
	}
}

// Parse parses a hex string or an SVG color name.
func Parse(s string) (Color, error) {
	if s == "" {
		return Color{}, &ParseError{Input: s, Reason: "empty color"}
	}
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	if c, err := ParseHex(s); err == nil {
		return c, nil
	}
	return Color{}, &ParseError{Input: s, Reason: "not a hex value or known color name"}
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when the rounded
// 8-bit alpha is below 0xff. An alpha that rounds to 0xff (such as
// 0.999) prints in the short form, keeping Hex consistent with NRGBA.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xFF {
		return "#" + hexByte(n.R) + hexByte(n.G) + hexByte(n.B)
	}
	return "#" + hexByte(n.R) + hexByte(n.G) + hexByte(n.B) + hexByte(n.A)
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xF]})
}

func fromBytes(r, g, b, a uint8) Color {
	return Color{
		r: float64(r) / maxByte,
		g: float64(g) / maxByte,
		b: float64(b) / maxByte,
		a: float64(a) / maxByte,
	}
}

// channelToByte converts a 0-1 channel to 0-255 with proper rounding.
func channelToByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
