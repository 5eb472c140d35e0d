//go:build !linux

package display

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/rook-computer/diagramkit/internal/logging"
)

var ErrUnsupported = errors.New("framebuffer output is only supported on linux")

type Framebuffer struct {
	Device     string
	Hold       time.Duration
	Background color.Color
	Logger     logging.Logger
}

// Show always fails with ErrUnsupported.
func (s *Framebuffer) Show(img image.Image) error { return ErrUnsupported }
