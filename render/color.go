// render/color.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA colour with each channel normalized to [0,1].
type Color struct {
	R, G, B, A float64
}

// InvalidColor is returned by ParseHexColor for input it cannot parse.
// It is never a drawable colour.
var InvalidColor = Color{R: -1, G: -1, B: -1, A: -1}

// ParseHexColor parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'. Short forms repeat each digit. Forms without alpha are opaque.
// Anything else yields InvalidColor; callers check with IsValid.
func ParseHexColor(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for i := 0; i < len(hex); i++ {
			b.WriteByte(hex[i])
			b.WriteByte(hex[i])
		}
		hex = b.String()
	case 6, 8:
	default:
		return InvalidColor
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return InvalidColor
	}
	if len(hex) == 6 {
		val = val<<8 | 0xFF
	}

	return Color{
		R: float64((val>>24)&0xFF) / 255.0,
		G: float64((val>>16)&0xFF) / 255.0,
		B: float64((val>>8)&0xFF) / 255.0,
		A: float64(val&0xFF) / 255.0,
	}
}

// IsValid reports whether c came from a successful parse (or was built by hand
// with channels in range).
func (c Color) IsValid() bool {
	return c != InvalidColor && c.A >= 0
}

// Visible reports whether drawing with c would leave a mark.
func (c Color) Visible() bool {
	return c.IsValid() && c.A > 0
}

// RGBA8 converts c to 8-bit straight alpha, the form raylib wants.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: channel8(c.A)}
}

// String renders c back as "#rrggbbaa".
func (c Color) String() string {
	if !c.IsValid() {
		return "invalid"
	}
	px := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x%02x", px.R, px.G, px.B, px.A)
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
