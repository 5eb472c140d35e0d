package diagram

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"
)

func near(a, b color.Color, tol uint32) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	diff := func(x, y uint32) uint32 {
		if x > y {
			return (x - y) >> 8
		}
		return (y - x) >> 8
	}
	return diff(ar, br) <= tol && diff(ag, bg) <= tol && diff(ab, bb) <= tol && diff(aa, ba) <= tol
}

// ink is the inclusive bounding box of pixels in r that differ from bg.
type ink struct {
	minX, minY, maxX, maxY int
	found                  bool
}

func (k ink) centerX() float64 { return float64(k.minX+k.maxX) / 2 }
func (k ink) centerY() float64 { return float64(k.minY+k.maxY) / 2 }

func inkBounds(img *image.RGBA, r image.Rectangle, bg color.RGBA) ink {
	k := ink{minX: r.Max.X, minY: r.Max.Y, maxX: r.Min.X - 1, maxY: r.Min.Y - 1}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == bg {
				continue
			}
			k.found = true
			k.minX = min(k.minX, x)
			k.minY = min(k.minY, y)
			k.maxX = max(k.maxX, x)
			k.maxY = max(k.maxY, y)
		}
	}
	return k
}

func containsNear(img *image.RGBA, r image.Rectangle, want color.Color, tol uint32) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if near(img.RGBAAt(x, y), want, tol) {
				return true
			}
		}
	}
	return false
}

func distance2(a, b color.RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func TestNewCanvas_Background(t *testing.T) {
	tests := []struct {
		name string
		bg   color.Color
		want color.RGBA
	}{
		{"default white", nil, White},
		{"palette fill", Yellow.Fill, Yellow.Fill},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(100, 50, tt.bg)
			if c.Width() != 100 || c.Height() != 50 {
				t.Fatalf("unexpected size %dx%d", c.Width(), c.Height())
			}
			for _, p := range [][2]int{{0, 0}, {99, 0}, {0, 49}, {99, 49}} {
				if got := c.Image().RGBAAt(p[0], p[1]); got != tt.want {
					t.Errorf("pixel %v = %v, want %v", p, got, tt.want)
				}
			}
		})
	}
}

func TestDrawBox(t *testing.T) {
	c := NewCanvas(100, 60, nil)
	c.DrawBox(10, 10, 80, 40, BoxStyle{})

	if got := c.Image().RGBAAt(50, 30); got != Blue.Fill {
		t.Errorf("center = %v, want fill %v", got, Blue.Fill)
	}
	if got := c.Image().RGBAAt(50, 10); !near(got, Blue.Stroke, 8) {
		t.Errorf("top edge = %v, want outline %v", got, Blue.Stroke)
	}
	if got := c.Image().RGBAAt(2, 2); got != White {
		t.Errorf("outside = %v, want background", got)
	}
}

func TestDrawBox_LabelUsesOutlineColor(t *testing.T) {
	fonts := LoadFontsFrom(nil, nil)
	c := NewCanvas(200, 80, nil)
	c.DrawBox(10, 10, 180, 60, BoxStyle{Fill: White, Outline: Red.Stroke, Label: "Service", Font: fonts.Medium})

	found := false
	for y := 25; y < 55 && !found; y++ {
		for x := 40; x < 160; x++ {
			if near(c.Image().RGBAAt(x, y), Red.Stroke, 24) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("expected label pixels in the outline color inside the box")
	}
}

func TestDrawContainer_TitleRule(t *testing.T) {
	fonts := LoadFontsFrom(nil, nil)
	c := NewCanvas(300, 200, nil)
	c.DrawContainer(10, 10, 280, 180, ContainerStyle{Title: "Backend", Font: fonts.Bold})

	if got := c.Image().RGBAAt(150, 44); got == Gray.Fill {
		t.Errorf("expected the title rule at y=44, found plain fill")
	}
	if got := c.Image().RGBAAt(150, 120); got != Gray.Fill {
		t.Errorf("body = %v, want fill %v", got, Gray.Fill)
	}
}

func TestDrawBox_TextColorOverridesOutline(t *testing.T) {
	fonts := LoadFontsFrom(nil, nil)
	c := NewCanvas(200, 80, nil)
	c.DrawBox(10, 10, 180, 60, BoxStyle{
		Fill:      White,
		Outline:   Blue.Stroke,
		TextColor: Red.Stroke,
		Label:     "Service",
		Font:      fonts.Medium,
	})

	label := image.Rect(20, 20, 180, 60)
	if !containsNear(c.Image(), label, Red.Stroke, 24) {
		t.Errorf("expected label pixels in the text color")
	}
	if containsNear(c.Image(), label, Blue.Stroke, 24) {
		t.Errorf("label drawn in the outline color")
	}
}

func TestDrawContainer_TitlePosition(t *testing.T) {
	fonts := LoadFontsFrom(nil, nil)
	c := NewCanvas(300, 200, nil)
	c.DrawContainer(20, 20, 260, 160, ContainerStyle{Title: "Hg", Font: fonts.Bold})

	// Title bar interior, clear of the outline, its corner arc and the rule at y=54.
	k := inkBounds(c.Image(), image.Rect(26, 26, 270, 52), Gray.Fill)
	if !k.found {
		t.Fatalf("no title ink found")
	}
	if k.minX < 32-1 || k.minY < 30-1 {
		t.Errorf("title ink starts at (%d,%d), want at or after (32,30)", k.minX, k.minY)
	}
	if k.minX > 32+4 {
		t.Errorf("title ink starts at x=%d, want left-anchored at 32", k.minX)
	}
}

func TestDrawContainer_TextColor(t *testing.T) {
	fonts := LoadFontsFrom(nil, nil)
	c := NewCanvas(300, 200, nil)
	c.DrawContainer(20, 20, 260, 160, ContainerStyle{Title: "Backend", Font: fonts.Bold, TextColor: Red.Stroke})

	if !containsNear(c.Image(), image.Rect(26, 26, 270, 52), Red.Stroke, 24) {
		t.Errorf("expected title pixels in the text color")
	}
}

func TestDrawContainer_NoTitleNoRule(t *testing.T) {
	c := NewCanvas(300, 200, nil)
	c.DrawContainer(10, 10, 280, 180, ContainerStyle{Title: "Backend"})

	if got := c.Image().RGBAAt(150, 44); got != Gray.Fill {
		t.Errorf("rule drawn without a font: %v", got)
	}
}

func TestDrawArrow(t *testing.T) {
	c := NewCanvas(100, 60, nil)
	c.DrawArrow(10, 30, 90, 30, ArrowStyle{Color: Red.Stroke})

	if got := c.Image().RGBAAt(50, 29); !near(got, Red.Stroke, 8) {
		t.Errorf("shaft = %v, want %v", got, Red.Stroke)
	}
	// Inside the head but clear of the 2px shaft.
	if got := c.Image().RGBAAt(83, 32); !near(got, Red.Stroke, 8) {
		t.Errorf("head = %v, want %v", got, Red.Stroke)
	}
	if got := c.Image().RGBAAt(50, 40); got != White {
		t.Errorf("below shaft = %v, want background", got)
	}
}

func TestDrawArrow_Dashed(t *testing.T) {
	c := NewCanvas(100, 60, nil)
	c.DrawArrow(10, 30, 90, 30, ArrowStyle{Color: Red.Stroke, Dashed: true})

	// First dash covers x 10..20, then a gap to 26.
	if got := c.Image().RGBAAt(15, 29); !near(got, Red.Stroke, 8) {
		t.Errorf("dash = %v, want %v", got, Red.Stroke)
	}
	if got := c.Image().RGBAAt(22, 29); got != White {
		t.Errorf("gap = %v, want background", got)
	}
	if got := c.Image().RGBAAt(83, 32); !near(got, Red.Stroke, 8) {
		t.Errorf("head not solid on a dashed arrow: %v", got)
	}
}

func TestDrawArrow_ZeroLength(t *testing.T) {
	if segs := DashSegments(20, 20, 20, 20, DashLength, GapLength); len(segs) != 0 {
		t.Fatalf("expected no dashes for a zero-length shaft, got %d", len(segs))
	}

	c := NewCanvas(40, 40, nil)
	c.DrawArrow(20, 20, 20, 20, ArrowStyle{Dashed: true})

	// atan2(0,0) is 0, so the head points right with its back at x~11.3.
	if got := c.Image().RGBAAt(15, 20); !near(got, Gray.Stroke, 8) {
		t.Errorf("head = %v, want %v", got, Gray.Stroke)
	}
	reach := DefaultArrowHeadSize + 1.5
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if c.Image().RGBAAt(x, y) == White {
				continue
			}
			if d := math.Hypot(float64(x)+0.5-20, float64(y)+0.5-20); d > reach {
				t.Fatalf("pixel (%d,%d) drawn %.1f from the tip, beyond the head", x, y, d)
			}
		}
	}
}

func TestDrawBadge(t *testing.T) {
	c := NewCanvas(120, 60, nil)
	f := FindFont(nil, 11)
	tw, th := TextSize(f, "OK")

	w, h := c.DrawBadge(10, 10, "OK", BadgeStyle{Font: f})
	if w <= tw || h <= th {
		t.Fatalf("badge %vx%v does not exceed text %vx%v", w, h, tw, th)
	}
	if w != tw+2*badgePadX || h != th+2*badgePadY {
		t.Errorf("badge %vx%v, want %vx%v", w, h, tw+2*badgePadX, th+2*badgePadY)
	}
}

func TestDrawBadge_TextColor(t *testing.T) {
	c := NewCanvas(120, 60, nil)
	w, h := c.DrawBadge(10, 10, "OK", BadgeStyle{Font: FindFont(nil, 14), TextColor: Red.Stroke})

	inner := image.Rect(10+int(badgePadX), 10+int(badgePadY), 10+int(w-badgePadX), 10+int(h-badgePadY))
	if !containsNear(c.Image(), inner, Red.Stroke, 24) {
		t.Errorf("expected badge text in the text color")
	}
}

func TestDrawBadge_DefaultFont(t *testing.T) {
	c := NewCanvas(120, 60, nil)
	w, h := c.DrawBadge(10, 10, "OK", BadgeStyle{})

	tw, th := TextSize(FindFont(RegularFontPaths, 11), "OK")
	if w != tw+2*badgePadX || h != th+2*badgePadY {
		t.Errorf("badge %vx%v, want %vx%v", w, h, tw+2*badgePadX, th+2*badgePadY)
	}
}

func TestDrawDivider(t *testing.T) {
	c := NewCanvas(200, 40, nil)
	c.DrawDivider(20, DividerStyle{})

	if got := c.Image().RGBAAt(100, 20); got == White {
		t.Errorf("expected the rule at mid-width")
	}
	if got := c.Image().RGBAAt(10, 20); got != White {
		t.Errorf("rule drawn inside the padding: %v", got)
	}
	if got := c.Image().RGBAAt(190, 20); got != White {
		t.Errorf("rule drawn inside the right padding: %v", got)
	}
}

func TestDrawDivider_Label(t *testing.T) {
	f := FindFont(nil, 11)
	c := NewCanvas(300, 80, nil)
	c.DrawDivider(60, DividerStyle{Label: "notes", Font: f})

	// Rows 59 and 60 carry the rule itself.
	k := inkBounds(c.Image(), image.Rect(0, 0, 300, 58), White)
	if !k.found {
		t.Fatalf("no label ink found")
	}
	if math.Abs(k.centerX()-150) > 3 {
		t.Errorf("label centered at x=%.1f, want ~150", k.centerX())
	}
	descent := fixedToFloat(f.Face.Metrics().Descent)
	if float64(k.maxY) > 50+descent+1 {
		t.Errorf("label ink ends at y=%d, want at or above %.1f", k.maxY, 50+descent)
	}

	darkest := White
	for y := k.minY; y <= k.maxY; y++ {
		for x := k.minX; x <= k.maxX; x++ {
			p := c.Image().RGBAAt(x, y)
			if int(p.R)+int(p.G)+int(p.B) < int(darkest.R)+int(darkest.G)+int(darkest.B) {
				darkest = p
			}
		}
	}
	if distance2(darkest, Muted) >= distance2(darkest, LightGray) {
		t.Errorf("label color %v is closer to the rule color than to Muted", darkest)
	}
}

func TestDrawQRCode(t *testing.T) {
	c := NewCanvas(200, 200, nil)
	before := append([]byte(nil), c.Image().Pix...)
	if err := c.DrawQRCode("", 0, 0, 100); err != nil {
		t.Fatalf("empty payload: %v", err)
	}
	if !bytes.Equal(before, c.Image().Pix) {
		t.Fatalf("empty payload modified the canvas")
	}

	if err := c.DrawQRCode("https://example.com/docs", 50, 50, 100); err != nil {
		t.Fatalf("DrawQRCode: %v", err)
	}
	dark := 0
	for y := 50; y < 150; y++ {
		for x := 50; x < 150; x++ {
			if p := c.Image().RGBAAt(x, y); p.R < 0x40 && p.G < 0x40 && p.B < 0x40 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Errorf("expected dark modules inside the QR tile")
	}
	if got := c.Image().RGBAAt(10, 10); got != White {
		t.Errorf("QR code drawn outside its tile: %v", got)
	}
}
