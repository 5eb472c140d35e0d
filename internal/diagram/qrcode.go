package diagram

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 128

// DrawQRCode encodes payload and places a size x size code with its top-left
// corner at (x, y). An empty payload draws nothing.
func (c *Canvas) DrawQRCode(payload string, x, y float64, size int) error {
	if payload == "" {
		return nil
	}
	if size <= 0 {
		size = defaultQRCodeSizePx
	}

	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encode qr code: %w", err)
	}
	c.dc.DrawImage(code.Image(size), int(x), int(y))
	return nil
}
