package display

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Fit scales src to fit inside a width x height image, preserving aspect
// ratio, and centers it on bg.
func Fit(src image.Image, width, height int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()
	if srcWidth == 0 || srcHeight == 0 || width == 0 || height == 0 {
		return dst
	}

	scaledWidth, scaledHeight := width, srcHeight*width/srcWidth
	if scaledHeight > height {
		scaledWidth, scaledHeight = srcWidth*height/srcHeight, height
	}
	offsetX := (width - scaledWidth) / 2
	offsetY := (height - scaledHeight) / 2
	target := image.Rect(offsetX, offsetY, offsetX+scaledWidth, offsetY+scaledHeight)
	xdraw.ApproxBiLinear.Scale(dst, target, src, src.Bounds(), xdraw.Over, nil)
	return dst
}
