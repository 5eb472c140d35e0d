package diagram

import (
	"image/color"
	"math"
)

const (
	DefaultBoxRadius       = 8.0
	DefaultContainerRadius = 10.0
	DefaultArrowWidth      = 2.0
	DefaultArrowHeadSize   = 10.0
	DefaultDividerPad      = 30.0

	boxOutlineWidth = 2.0

	// Title bar geometry, relative to the container origin.
	titleOffsetX = 12.0
	titleOffsetY = 10.0
	titleBarRule = 34.0

	badgePadX = 12.0
	badgePadY = 4.0

	dividerLabelGap = 10.0
)

// BoxStyle configures DrawBox. Zero values take the defaults: Blue fill and
// stroke, radius 8, text in the outline color.
type BoxStyle struct {
	Fill      color.Color
	Outline   color.Color
	TextColor color.Color
	Label     string
	Font      *Font
	Radius    float64
}

// DrawBox draws a rounded rectangle with an optional label centered in it.
func (c *Canvas) DrawBox(x, y, w, h float64, style BoxStyle) {
	outline := orColor(style.Outline, Blue.Stroke)
	radius := style.Radius
	if radius == 0 {
		radius = DefaultBoxRadius
	}
	c.roundedRect(x, y, w, h, radius, orColor(style.Fill, Blue.Fill), outline, boxOutlineWidth)
	if style.Label != "" && style.Font != nil {
		cx := x + math.Floor(w/2)
		cy := y + math.Floor(h/2)
		c.DrawText(cx, cy, style.Label, style.Font, orColor(style.TextColor, outline), AnchorMiddleMiddle)
	}
}

// ContainerStyle configures DrawContainer. Zero values take Gray fill and
// stroke and radius 10.
type ContainerStyle struct {
	Fill      color.Color
	Outline   color.Color
	TextColor color.Color
	Title     string
	Font      *Font
	Radius    float64
}

// DrawContainer draws a rounded box with a title bar: the title sits at the
// top-left and a rule separates it from the body.
func (c *Canvas) DrawContainer(x, y, w, h float64, style ContainerStyle) {
	outline := orColor(style.Outline, Gray.Stroke)
	radius := style.Radius
	if radius == 0 {
		radius = DefaultContainerRadius
	}
	c.roundedRect(x, y, w, h, radius, orColor(style.Fill, Gray.Fill), outline, boxOutlineWidth)
	if style.Title != "" && style.Font != nil {
		c.DrawText(x+titleOffsetX, y+titleOffsetY, style.Title, style.Font, orColor(style.TextColor, outline), AnchorLeftTop)
		rule := y + titleBarRule
		c.line(x, rule, x+w, rule, outline, 1)
	}
}

// ArrowStyle configures DrawArrow. Zero values take Gray stroke, width 2 and
// a head of 10.
type ArrowStyle struct {
	Color    color.Color
	Dashed   bool
	Width    float64
	HeadSize float64
}

// DrawArrow draws a shaft from (x1,y1) to (x2,y2) and a filled head at the
// end. The head is always solid, even for a dashed shaft.
func (c *Canvas) DrawArrow(x1, y1, x2, y2 float64, style ArrowStyle) {
	col := orColor(style.Color, Gray.Stroke)
	width := style.Width
	if width == 0 {
		width = DefaultArrowWidth
	}
	head := style.HeadSize
	if head == 0 {
		head = DefaultArrowHeadSize
	}
	if style.Dashed {
		c.DrawDashedLine(x1, y1, x2, y2, col, width)
	} else {
		c.line(x1, y1, x2, y2, col, width)
	}
	tri := ArrowHead(x1, y1, x2, y2, head)
	c.fillPolygon(tri[:], col)
}

// BadgeStyle configures DrawBadge. Zero values take Green fill and stroke
// and a regular face at 11px.
type BadgeStyle struct {
	Fill      color.Color
	Outline   color.Color
	TextColor color.Color
	Font      *Font
}

// DrawBadge draws a pill sized to text plus padding and returns its size.
func (c *Canvas) DrawBadge(x, y float64, text string, style BadgeStyle) (w, h float64) {
	f := style.Font
	if f == nil {
		f = FindFont(RegularFontPaths, 11)
	}
	outline := orColor(style.Outline, Green.Stroke)
	tw, th := TextSize(f, text)
	w = tw + badgePadX*2
	h = th + badgePadY*2
	c.roundedRect(x, y, w, h, math.Floor(h/2), orColor(style.Fill, Green.Fill), outline, 1)
	c.DrawText(x+badgePadX, y+badgePadY, text, f, orColor(style.TextColor, outline), AnchorLeftTop)
	return w, h
}

// DividerStyle configures DrawDivider. A zero Width spans the canvas, a zero
// Pad means 30 and a nil Color is LightGray.
type DividerStyle struct {
	Width float64
	Pad   float64
	Color color.Color
	Label string
	Font  *Font
}

// DrawDivider draws a horizontal rule at y from Pad to Width-Pad, with an
// optional label centered just above it.
func (c *Canvas) DrawDivider(y float64, style DividerStyle) {
	width := style.Width
	if width == 0 {
		width = float64(c.Width())
	}
	pad := style.Pad
	if pad == 0 {
		pad = DefaultDividerPad
	}
	c.line(pad, y, width-pad, y, orColor(style.Color, LightGray), 1)
	if style.Label != "" && style.Font != nil {
		c.DrawText(math.Floor(width/2), y-dividerLabelGap, style.Label, style.Font, Muted, AnchorMiddleBottom)
	}
}
