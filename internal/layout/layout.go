package layout

// Rect is an axis-aligned rectangle in canvas units, anchored at its
// top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Normalize ensures W and H are non-negative by moving the origin.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	return r
}

// Inset shrinks r by pad on all sides. It never returns a negative size;
// an over-inset rect collapses onto its center.
func Inset(r Rect, pad float64) Rect {
	r = Normalize(r)
	if pad <= 0 {
		return r
	}
	if 2*pad >= r.W {
		r.X, r.W = r.X+r.W/2, 0
	} else {
		r.X, r.W = r.X+pad, r.W-2*pad
	}
	if 2*pad >= r.H {
		r.Y, r.H = r.Y+r.H/2, 0
	} else {
		r.Y, r.H = r.Y+pad, r.H-2*pad
	}
	return r
}

// SplitVertical splits r into left and right parts.
// leftWidth is clamped to [0, r.W].
func SplitVertical(r Rect, leftWidth float64) (left Rect, right Rect) {
	r = Normalize(r)
	leftWidth = clamp(leftWidth, 0, r.W)
	left = Rect{X: r.X, Y: r.Y, W: leftWidth, H: r.H}
	right = Rect{X: r.X + leftWidth, Y: r.Y, W: r.W - leftWidth, H: r.H}
	return left, right
}

// SplitHorizontal splits r into top and bottom parts.
// topHeight is clamped to [0, r.H].
func SplitHorizontal(r Rect, topHeight float64) (top Rect, bottom Rect) {
	r = Normalize(r)
	topHeight = clamp(topHeight, 0, r.H)
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: topHeight}
	bottom = Rect{X: r.X, Y: r.Y + topHeight, W: r.W, H: r.H - topHeight}
	return top, bottom
}

// Columns divides r into n equal columns separated by gap.
func Columns(r Rect, n int, gap float64) []Rect {
	r = Normalize(r)
	if n <= 0 {
		return nil
	}
	w := (r.W - gap*float64(n-1)) / float64(n)
	if w < 0 {
		w = 0
	}
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: r.X + float64(i)*(w+gap), Y: r.Y, W: w, H: r.H}
	}
	return out
}

// Rows divides r into n equal rows separated by gap.
func Rows(r Rect, n int, gap float64) []Rect {
	r = Normalize(r)
	if n <= 0 {
		return nil
	}
	h := (r.H - gap*float64(n-1)) / float64(n)
	if h < 0 {
		h = 0
	}
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: r.X, Y: r.Y + float64(i)*(h+gap), W: r.W, H: h}
	}
	return out
}

// CenterIn returns a w x h rect centered in r.
func CenterIn(r Rect, w, h float64) Rect {
	r = Normalize(r)
	cx, cy := r.Center()
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
