package sheets

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/rook-computer/diagramkit/internal/diagram"
)

// Sheet is a named sample diagram.
type Sheet interface {
	Name() string
	Size() (width int, height int)
	Draw(c *diagram.Canvas, fonts diagram.Fonts)
}

var registry = map[string]Sheet{}

func register(s Sheet) { registry[s.Name()] = s }

func init() {
	register(ArchitectureSheet{})
	register(PaletteSheet{})
	register(FlowSheet{})
}

// Names lists the registered sheets in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Sheet, bool) {
	s, ok := registry[name]
	return s, ok
}

type Options struct {
	// Background of the canvas; nil is white.
	Background color.Color
	// Link, when set, is stamped as a QR code in the bottom-right corner.
	Link string
}

const (
	linkSizePx = 96
	linkMargin = 20
)

// Render draws s onto a fresh canvas of its size. The only failure is
// encoding opts.Link as a QR code.
func Render(s Sheet, fonts diagram.Fonts, opts Options) (*diagram.Canvas, error) {
	width, height := s.Size()
	canvas := diagram.NewCanvas(width, height, opts.Background)
	s.Draw(canvas, fonts)
	if opts.Link != "" {
		x := float64(width - linkSizePx - linkMargin)
		y := float64(height - linkSizePx - linkMargin)
		if err := canvas.DrawQRCode(opts.Link, x, y, linkSizePx); err != nil {
			return nil, fmt.Errorf("stamp link on sheet %s: %w", s.Name(), err)
		}
	}
	return canvas, nil
}
