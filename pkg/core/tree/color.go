package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/layoutc/pkg/errors"
)

// Color is the paint attribute of a View. Layout never reads it.
type Color struct {
	R, G, B uint8
	A       float64 // 0 (transparent) to 1 (opaque)
}

// Named colors.
var (
	White = Color{R: 255, G: 255, B: 255, A: 1}
	Black = Color{A: 1}
	Red   = Color{R: 255, A: 1}
	Green = Color{G: 255, A: 1}
	Blue  = Color{B: 255, A: 1}
)

var namedColors = map[string]Color{
	"white": White,
	"black": Black,
	"red":   Red,
	"green": Green,
	"blue":  Blue,
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA returns a color with the given opacity, clamped to [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: min(max(a, 0), 1)}
}

// ParseColor accepts a color name (white, black, red, green, blue) or a hex
// string "#rrggbb" / "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, errors.New(errors.ErrCodeInvalidInput, "invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	if len(hex) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), float64(uint8(v))/255), nil
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(c.A*255+0.5))
}
