package scene

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a 4-channel normalized RGBA value. All interpolation happens in
// this representation; string inputs are converted up-front.
type Color struct {
	R, G, B, A float64
}

// Single-letter shortcuts carried over from the plotting world.
var shortColors = map[string]Color{
	"b": {0, 0, 1, 1},
	"g": {0, 0.5, 0, 1},
	"r": {1, 0, 0, 1},
	"c": {0, 0.75, 0.75, 1},
	"m": {0.75, 0, 0.75, 1},
	"y": {0.75, 0.75, 0, 1},
	"k": {0, 0, 0, 1},
	"w": {1, 1, 1, 1},
}

// RGBA builds a color from normalized channel values.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseColor converts a color specification to RGBA. Accepted forms are hex
// strings ("#1a2b3c", "#abc"), SVG 1.1 color names ("tomato"), and the
// one-letter shortcuts ("r", "k"). Unknown specs return an error; callers
// treat that as a recoverable value mismatch.
func ParseColor(spec string) (Color, error) {
	s := strings.TrimSpace(strings.ToLower(spec))
	if s == "" {
		return Color{}, fmt.Errorf("empty color spec")
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex color %q: %w", spec, err)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if rgba, ok := colornames.Map[s]; ok {
		return Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
			A: float64(rgba.A) / 255,
		}, nil
	}
	return Color{}, fmt.Errorf("unrecognized color %q", spec)
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(spec string) Color {
	c, err := ParseColor(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp blends two colors per channel, alpha included.
func (c Color) Lerp(to Color, p float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*p,
		G: c.G + (to.G-c.G)*p,
		B: c.B + (to.B-c.B)*p,
		A: c.A + (to.A-c.A)*p,
	}
}

// Brightness is the mean of the RGB channels. Dark-mode detection treats
// anything below 0.5 as dark.
func (c Color) Brightness() float64 {
	return (c.R + c.G + c.B) / 3
}

// Hex renders the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// RGBA255 returns 8-bit channels for image encoders.
func (c Color) RGBA255() (r, g, b, a uint8) {
	return uint8(clamp01(c.R)*255 + 0.5),
		uint8(clamp01(c.G)*255 + 0.5),
		uint8(clamp01(c.B)*255 + 0.5),
		uint8(clamp01(c.A)*255 + 0.5)
}

// IsZero reports whether the color is the unset zero value. A fully
// transparent black never occurs as a real scene color, so the zero value
// doubles as "absent".
func (c Color) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
