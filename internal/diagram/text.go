package diagram

import (
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Anchor selects which point of a text run is placed at the given coordinates.
type Anchor int

const (
	AnchorLeftBaseline Anchor = iota
	AnchorLeftTop
	AnchorMiddleMiddle
	AnchorMiddleBottom
)

// TextWidth returns the width of the tight bounding box of s, which can
// differ from the advance width by the side bearings.
func TextWidth(f *Font, s string) float64 {
	w, _ := TextSize(f, s)
	return w
}

// TextSize returns the bounding box width and height of s in whole pixels.
func TextSize(f *Font, s string) (w, h float64) {
	if f == nil || s == "" {
		return 0, 0
	}
	b, _ := font.BoundString(f.Face, s)
	return float64(b.Max.X.Ceil() - b.Min.X.Floor()), float64(b.Max.Y.Ceil() - b.Min.Y.Floor())
}

// WrapText greedily packs the words of s into lines no wider than maxWidth.
// Words are never split, so a single long word may overflow its line.
// The result always has at least one element.
func WrapText(s string, f *Font, maxWidth float64) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if TextWidth(f, candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// DrawText draws s so that the anchor point of the run lands on (x, y).
// Vertical anchors use the face's ascent and descent lines.
func (c *Canvas) DrawText(x, y float64, s string, f *Font, col color.Color, anchor Anchor) {
	if s == "" || f == nil {
		return
	}
	metrics := f.Face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	switch anchor {
	case AnchorLeftTop:
		y += ascent
	case AnchorMiddleMiddle:
		x -= fixedToFloat(font.MeasureString(f.Face, s)) / 2
		y += (ascent - descent) / 2
	case AnchorMiddleBottom:
		x -= fixedToFloat(font.MeasureString(f.Face, s)) / 2
		y -= descent
	}
	c.dc.SetFontFace(f.Face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

// DrawWrappedText wraps s to maxWidth and draws the lines top-down from
// (x, y). It returns the height consumed.
func (c *Canvas) DrawWrappedText(x, y, maxWidth float64, s string, f *Font, col color.Color, lineGap float64) float64 {
	if f == nil {
		return 0
	}
	lineHeight := LineHeight(f) + lineGap
	lines := WrapText(s, f, maxWidth)
	for i, line := range lines {
		c.DrawText(x, y+float64(i)*lineHeight, line, f, col, AnchorLeftTop)
	}
	return float64(len(lines)) * lineHeight
}

// LineHeight is the distance from the ascender line to the descender line.
func LineHeight(f *Font) float64 {
	metrics := f.Face.Metrics()
	return fixedToFloat(metrics.Ascent + metrics.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
