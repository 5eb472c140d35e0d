//go:build linux

package display

import (
	"fmt"
	"image"
	"image/color"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/diagramkit/internal/logging"
)

// Framebuffer shows rendered diagrams on a Linux framebuffer device.
type Framebuffer struct {
	Device string
	// Hold is how long the image stays up before the console returns to
	// text mode.
	Hold       time.Duration
	Background color.Color
	Logger     logging.Logger
}

// Show fits img to the device, paints it in graphics mode and blocks for Hold.
func (s *Framebuffer) Show(img image.Image) error {
	log := logging.OrNoop(s.Logger)
	dev, err := fb.Open(s.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", s.Device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	log.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if err := SetGraphicsMode(); err != nil {
		log.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	}
	defer func() {
		if err := RestoreTextMode(); err != nil {
			log.Errorf("tty", "KD_TEXT failed: %v", err)
		}
	}()

	bg := s.Background
	if bg == nil {
		bg = color.White
	}
	frame := Fit(img, bounds.Dx(), bounds.Dy(), bg)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	log.Infof("fb", "frame shown, holding for %s", s.Hold)
	time.Sleep(s.Hold)
	return nil
}
