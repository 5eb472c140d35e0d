package sheets

import (
	"fmt"
	"image/color"

	"github.com/rook-computer/diagramkit/internal/diagram"
	"github.com/rook-computer/diagramkit/internal/layout"
)

// PaletteSheet shows every color pair as a labelled swatch with its hex
// values.
type PaletteSheet struct{}

func (PaletteSheet) Name() string     { return "palette" }
func (PaletteSheet) Size() (int, int) { return 720, 520 }

type namedPair struct {
	name string
	pair diagram.ColorPair
}

var palette = []namedPair{
	{"Blue", diagram.Blue},
	{"Green", diagram.Green},
	{"Yellow", diagram.Yellow},
	{"Red", diagram.Red},
	{"Purple", diagram.Purple},
	{"Gray", diagram.Gray},
}

func (s PaletteSheet) Draw(c *diagram.Canvas, fonts diagram.Fonts) {
	width, height := s.Size()
	page := layout.Inset(layout.Rect{W: float64(width), H: float64(height)}, 30)
	header, body := layout.SplitHorizontal(page, 50)
	c.DrawText(header.X, header.Y, "Palette", fonts.Bold, diagram.Black, diagram.AnchorLeftTop)
	c.DrawDivider(header.Bottom()-8, diagram.DividerStyle{Width: float64(width), Label: "fill / stroke", Font: fonts.Tiny})

	for i, row := range layout.Rows(body, len(palette), 12) {
		entry := palette[i]
		swatch, rest := layout.SplitVertical(row, 180)
		c.DrawBox(swatch.X, swatch.Y, swatch.W, swatch.H, diagram.BoxStyle{
			Fill:    entry.pair.Fill,
			Outline: entry.pair.Stroke,
			Label:   entry.name,
			Font:    fonts.Medium,
		})

		x := rest.X + 24
		for _, value := range []color.RGBA{entry.pair.Fill, entry.pair.Stroke} {
			text := hex(value)
			_, th := diagram.TextSize(fonts.Tiny, text)
			_, cy := rest.Center()
			w, _ := c.DrawBadge(x, cy-(th/2+4), text, diagram.BadgeStyle{
				Fill:    entry.pair.Fill,
				Outline: entry.pair.Stroke,
				Font:    fonts.Tiny,
			})
			x += w + 12
		}
		c.DrawArrow(x, rest.Y+rest.H/2, x+60, rest.Y+rest.H/2, diagram.ArrowStyle{Color: entry.pair.Stroke})
		c.DrawArrow(x+80, rest.Y+rest.H/2, x+140, rest.Y+rest.H/2, diagram.ArrowStyle{Color: entry.pair.Stroke, Dashed: true})
	}
}

func hex(c color.RGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }
