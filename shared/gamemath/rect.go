package gamemath

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float32
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Set overwrites all fields in place. Pooled rects are reused through Set.
func (r *Rect) Set(x, y, w, h float32) {
	r.X, r.Y, r.W, r.H = x, y, w, h
}

func (r Rect) Right() float32 { return r.X + r.W }
func (r Rect) Top() float32   { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports a strict overlap; rects that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Top() && r.Top() > o.Y
}

// Intersection returns the overlapping area of r and o.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Overlaps(o) {
		return Rect{}, false
	}
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Top(), o.Top())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Top()
}
