package textmetrics

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for strings that are not hex sRGB colors.
var ErrInvalidColor = errors.New("invalid hex color")

// Level is a WCAG 2.x conformance level for a contrast ratio.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA-large"
	LevelFail    Level = "fail"
)

// ParseHex accepts "#rrggbb", "rrggbb", "#rgb" and "rgb".
func ParseHex(hex string) (colorful.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if (len(s) != 6 && len(s) != 3) || strings.Trim(strings.ToLower(s), "0123456789abcdef") != "" {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	return c, nil
}

// RelativeLuminance returns the WCAG relative luminance of a hex color,
// from 0 for black to 1 for white.
func RelativeLuminance(hex string) (float64, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return luminance(c), nil
}

// ContrastRatio returns (L1 + 0.05) / (L2 + 0.05) for the lighter and darker
// of two colors: 1 for identical colors, 21 for black on white.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	la, lb := luminance(ca), luminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// WCAGLevel grades a contrast ratio. Large text (18pt, or 14pt bold) needs
// 4.5 for AAA and 3 for AA; normal text needs 7 and 4.5.
func WCAGLevel(ratio float64, largeText bool) Level {
	if largeText {
		switch {
		case ratio >= 4.5:
			return LevelAAA
		case ratio >= 3:
			return LevelAA
		default:
			return LevelFail
		}
	}
	switch {
	case ratio >= 7:
		return LevelAAA
	case ratio >= 4.5:
		return LevelAA
	case ratio >= 3:
		return LevelAALarge
	default:
		return LevelFail
	}
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
