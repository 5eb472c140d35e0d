package sheets

import (
	"github.com/rook-computer/diagramkit/internal/diagram"
	"github.com/rook-computer/diagramkit/internal/layout"
)

// ArchitectureSheet is a three-tier system overview: clients, services and
// storage, with request and write arrows between them.
type ArchitectureSheet struct{}

func (ArchitectureSheet) Name() string     { return "architecture" }
func (ArchitectureSheet) Size() (int, int) { return 960, 600 }

type port struct {
	in, out diagram.Point
}

func (s ArchitectureSheet) Draw(c *diagram.Canvas, fonts diagram.Fonts) {
	width, height := s.Size()
	page := layout.Inset(layout.Rect{W: float64(width), H: float64(height)}, 30)

	header, body := layout.SplitHorizontal(page, 60)
	title := "System overview"
	c.DrawText(header.X, header.Y, title, fonts.Bold, diagram.Black, diagram.AnchorLeftTop)
	badgeX := header.X + diagram.TextWidth(fonts.Bold, title) + 16
	w, _ := c.DrawBadge(badgeX, header.Y+4, "v2", diagram.BadgeStyle{Font: fonts.Tiny})
	c.DrawBadge(badgeX+w+8, header.Y+4, "draft", diagram.BadgeStyle{
		Fill:    diagram.Yellow.Fill,
		Outline: diagram.Yellow.Stroke,
		Font:    fonts.Tiny,
	})
	c.DrawDivider(header.Bottom()-10, diagram.DividerStyle{Width: float64(width)})

	body, footer := layout.SplitHorizontal(body, body.H-110)
	tiers := layout.Columns(body, 3, 60)
	titles := []string{"Clients", "Services", "Storage"}
	pairs := []diagram.ColorPair{diagram.Blue, diagram.Purple, diagram.Green}
	labels := [][]string{
		{"Web app", "CLI"},
		{"API gateway", "Render worker"},
		{"Postgres", "Object store"},
	}

	var ports [3][2]port
	for i, tier := range tiers {
		c.DrawContainer(tier.X, tier.Y, tier.W, tier.H, diagram.ContainerStyle{Title: titles[i], Font: fonts.Medium})
		_, inner := layout.SplitHorizontal(tier, 44)
		for j, slot := range layout.Rows(layout.Inset(inner, 16), 2, 24) {
			box := layout.CenterIn(slot, slot.W, 56)
			c.DrawBox(box.X, box.Y, box.W, box.H, diagram.BoxStyle{
				Fill:    pairs[i].Fill,
				Outline: pairs[i].Stroke,
				Label:   labels[i][j],
				Font:    fonts.Small,
			})
			_, cy := box.Center()
			ports[i][j] = port{in: diagram.Point{X: box.X, Y: cy}, out: diagram.Point{X: box.Right(), Y: cy}}
		}
	}

	clients, services, storage := ports[0], ports[1], ports[2]
	for _, client := range clients {
		arrow(c, client.out, services[0].in, diagram.ArrowStyle{Color: diagram.Blue.Stroke})
	}
	arrow(c, services[0].out, storage[0].in, diagram.ArrowStyle{})
	arrow(c, services[1].out, storage[1].in, diagram.ArrowStyle{Color: diagram.Red.Stroke, Dashed: true})

	c.DrawWrappedText(footer.X, footer.Y+20, footer.W-140,
		"Solid arrows are synchronous requests. The dashed arrow marks the render worker's "+
			"asynchronous writes to the object store, which are retried until acknowledged.",
		fonts.Small, diagram.Gray.Stroke, 4)
}

func arrow(c *diagram.Canvas, from, to diagram.Point, style diagram.ArrowStyle) {
	c.DrawArrow(from.X, from.Y, to.X, to.Y, style)
}
