package sheets

import (
	"github.com/rook-computer/diagramkit/internal/diagram"
	"github.com/rook-computer/diagramkit/internal/layout"
)

// FlowSheet is a left-to-right pipeline with a caption under each stage.
type FlowSheet struct{}

func (FlowSheet) Name() string     { return "flow" }
func (FlowSheet) Size() (int, int) { return 1100, 420 }

type stage struct {
	label   string
	caption string
	pair    diagram.ColorPair
	status  string
}

var pipeline = []stage{
	{"Parse", "Read the source description and reject malformed input early.", diagram.Blue, "ok"},
	{"Measure", "Compute text extents with the bounding box of each label.", diagram.Purple, "ok"},
	{"Draw", "Stroke shapes, arrows and text onto the canvas in call order.", diagram.Green, "ok"},
	{"Encode", "Serialize the canvas buffer as PNG.", diagram.Yellow, "slow"},
	{"Publish", "Upload the image next to the document that embeds it.", diagram.Red, "flaky"},
}

func (s FlowSheet) Draw(c *diagram.Canvas, fonts diagram.Fonts) {
	width, height := s.Size()
	page := layout.Inset(layout.Rect{W: float64(width), H: float64(height)}, 30)
	c.DrawContainer(page.X, page.Y, page.W, page.H, diagram.ContainerStyle{Title: "Render pipeline", Font: fonts.Bold})

	_, body := layout.SplitHorizontal(page, 44)
	body = layout.Inset(body, 20)
	lanes, notes := layout.SplitHorizontal(body, 170)
	columns := layout.Columns(lanes, len(pipeline), 50)

	for i, col := range columns {
		st := pipeline[i]
		box := layout.CenterIn(col, col.W, 64)
		box.Y = col.Y + 40
		c.DrawBox(box.X, box.Y, box.W, box.H, diagram.BoxStyle{
			Fill:    st.pair.Fill,
			Outline: st.pair.Stroke,
			Label:   st.label,
			Font:    fonts.Medium,
		})
		badge := diagram.Green
		if st.status != "ok" {
			badge = diagram.Red
		}
		c.DrawBadge(box.X, col.Y, st.status, diagram.BadgeStyle{Fill: badge.Fill, Outline: badge.Stroke, Font: fonts.Tiny})
		c.DrawWrappedText(col.X, box.Bottom()+12, col.W, st.caption, fonts.Tiny, diagram.Gray.Stroke, 2)

		if i > 0 {
			prev := columns[i-1]
			_, y := box.Center()
			c.DrawArrow(prev.Right()+4, y, col.X-4, y, diagram.ArrowStyle{Dashed: st.status == "flaky"})
		}
	}

	c.DrawDivider(notes.Y+20, diagram.DividerStyle{
		Width: float64(width),
		Pad:   page.X + 20,
		Label: "notes",
		Font:  fonts.Tiny,
	})
	c.DrawWrappedText(notes.X, notes.Y+32, notes.W,
		"Stages run strictly in order on one canvas. A dashed arrow marks a hand-off that may need a retry.",
		fonts.Small, diagram.Black, 4)
}
