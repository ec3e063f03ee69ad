package tilemap

import "github.com/automoto/balloon/shared/gamemath"

// RectPool recycles rectangles between collision queries so a running level
// does not allocate a new rect per tile per frame. Not safe for concurrent use.
type RectPool struct {
	free      []*gamemath.Rect
	allocated int
}

func NewRectPool() *RectPool {
	return &RectPool{}
}

// Obtain returns a zeroed rect, reusing a released one when available.
func (p *RectPool) Obtain() *gamemath.Rect {
	if n := len(p.free); n > 0 {
		r := p.free[n-1]
		p.free = p.free[:n-1]
		*r = gamemath.Rect{}
		return r
	}
	p.allocated++
	return &gamemath.Rect{}
}

// Free hands a rect back. nil is ignored.
func (p *RectPool) Free(r *gamemath.Rect) {
	if r == nil {
		return
	}
	p.free = append(p.free, r)
}

// Available is the number of rects waiting for reuse.
func (p *RectPool) Available() int { return len(p.free) }

// Allocated is the number of rects ever created by the pool.
func (p *RectPool) Allocated() int { return p.allocated }
