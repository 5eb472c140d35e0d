package diagram

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
)

// Canvas is an RGBA buffer and the drawing context bound to it.
// It is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewCanvas allocates a width x height buffer filled with bg.
// A nil bg means opaque white.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	bg = orColor(bg, White)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	dc := gg.NewContextForRGBA(img)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Canvas{img: img, dc: dc}
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the live buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Context exposes the underlying gg context for drawing beyond these helpers.
func (c *Canvas) Context() *gg.Context { return c.dc }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *Canvas) roundedRect(x, y, w, h, radius float64, fill, outline color.Color, width float64) {
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.SetColor(fill)
	c.dc.FillPreserve()
	c.dc.SetColor(outline)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *Canvas) line(x1, y1, x2, y2 float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *Canvas) fillPolygon(points []Point, col color.Color) {
	if len(points) == 0 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}
