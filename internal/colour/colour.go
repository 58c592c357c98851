// Package colour provides the colour model, palette extraction and scheme
// synthesis used by palgen.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour as three 8-bit channel intensities.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Sum returns the sum of the three channel intensities (0-765).
func (rgb RGB) Sum() int {
	return int(rgb.R) + int(rgb.G) + int(rgb.B)
}

// Offset adds delta to every channel, clamping each result to [0, 255].
// A negative delta darkens the colour, a positive delta lightens it.
func (rgb RGB) Offset(delta int) RGB {
	return RGB{
		R: clampChannel(int(rgb.R) + delta),
		G: clampChannel(int(rgb.G) + delta),
		B: clampChannel(int(rgb.B) + delta),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToColor converts an RGB value to a color.Color (RGBA, fully opaque).
func ToColor(rgb RGB) color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ParseHex parses a "#rrggbb" hex string into an RGB value.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Distance calculates the Euclidean distance between two colours in RGB
// space, on the 0-255 channel scale.
func Distance(a, b RGB) float64 {
	ca := colorful.Color{R: float64(a.R) / 255.0, G: float64(a.G) / 255.0, B: float64(a.B) / 255.0}
	cb := colorful.Color{R: float64(b.R) / 255.0, G: float64(b.G) / 255.0, B: float64(b.B) / 255.0}
	return ca.DistanceRgb(cb) * 255.0
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastLabel returns the WCAG conformance label for a contrast ratio:
// "AAA" at 7:1 or better, "AA" at 4.5:1 or better, "Fail" otherwise.
func ContrastLabel(ratio float64) string {
	switch {
	case ratio >= 7.0:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	default:
		return "Fail"
	}
}
