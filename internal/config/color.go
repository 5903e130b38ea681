package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "r,g,b" (0-255 components), "#rrggbb" and "hsv(h,s,v)"
// with h in degrees and s, v in 0..1. The result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return toRGBA(c), nil
	case strings.HasPrefix(strings.ToLower(s), "hsv(") && strings.HasSuffix(s, ")"):
		vals, err := parseFloats(s[len("hsv(") : len(s)-1])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hsv color %q: %w", s, err)
		}
		h, sat, v := vals[0], vals[1], vals[2]
		if sat < 0 || sat > 1 || v < 0 || v > 1 {
			return color.RGBA{}, fmt.Errorf("invalid hsv color %q: saturation and value must be in [0,1]", s)
		}
		return toRGBA(colorful.Hsv(normalizeHue(h), sat, v)), nil
	default:
		vals, err := parseFloats(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid rgb color %q: %w", s, err)
		}
		for _, v := range vals {
			if math.IsNaN(v) || v < 0 || v > 255 {
				return color.RGBA{}, fmt.Errorf("invalid rgb color %q: components must be in [0,255]", s)
			}
		}
		return color.RGBA{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2]), A: 255}, nil
	}
}

// FormatColor renders c in the "r,g,b" form accepted by ParseColor.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func parseFloats(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
