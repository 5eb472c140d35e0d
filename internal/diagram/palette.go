package diagram

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorPair is a light Fill for an element's interior and a dark Stroke for
// its border and text.
type ColorPair struct {
	Fill   color.RGBA
	Stroke color.RGBA
}

var (
	Blue   = ColorPair{Fill: mustHex("#dbe4ff"), Stroke: mustHex("#1971c2")}
	Green  = ColorPair{Fill: mustHex("#d3f9d8"), Stroke: mustHex("#2f9e44")}
	Yellow = ColorPair{Fill: mustHex("#fff3bf"), Stroke: mustHex("#f08c00")}
	Red    = ColorPair{Fill: mustHex("#ffe3e3"), Stroke: mustHex("#e03131")}
	Purple = ColorPair{Fill: mustHex("#e5dbff"), Stroke: mustHex("#9c36b5")}
	Gray   = ColorPair{Fill: mustHex("#f1f3f5"), Stroke: mustHex("#495057")}
)

// Flat colors.
var (
	White     = mustHex("#ffffff")
	Black     = mustHex("#212529")
	LightGray = mustHex("#dee2e6")
	// Muted is used for divider labels.
	Muted = mustHex("#868e96")
)

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func orColor(c color.Color, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
