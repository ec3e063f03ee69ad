package balloon

import (
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
)

// Level is what the balloon needs from the level each tick.
type Level interface {
	MaskSource
	// Query returns the occupied tiles in the inclusive cell range. The
	// slice is only valid until the next call.
	Query(startX, startY, endX, endY int) []tilemap.Boundary
	// WindAt is the force-field acceleration at a world position.
	WindAt(p gamemath.Vec2) gamemath.Vec2
}

// Body is the balloon's position and velocity. Position is the bottom-left
// corner of its FrameSize box, world Y up.
type Body struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Params   Params

	scratch Scratch
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Collided bool
	// Next is the position the balloon tried to move to.
	Next gamemath.Vec2
}

func NewBody(spawn gamemath.Vec2, p Params) *Body {
	return &Body{
		Position: spawn,
		Velocity: gamemath.Vec2{Y: p.LaunchSpeed},
		Params:   p,
	}
}

func (b *Body) Bounds() gamemath.Rect {
	return gamemath.NewRect(b.Position.X, b.Position.Y, FrameSize, FrameSize)
}

// Scratch exposes the collision buffer for inspection.
func (b *Body) Scratch() *Scratch {
	return &b.scratch
}

// Step advances the body by dt seconds under the given state. The move is
// rejected entirely when any solid tile pixel overlaps the new bounds.
func (b *Body) Step(dt float32, state State, level Level) StepResult {
	p := b.Params
	v := b.Velocity

	switch state {
	case Lift:
		v.Y += p.LiftAccel * dt
	case Heavy:
		v.Y -= p.HeavyAccel * dt
	}
	if level != nil {
		v = v.Add(level.WindAt(b.Bounds().Center()).Scale(dt))
	}
	v.Y = gamemath.ClampSpeed(v.Y, p.MaxSpeed)

	if b.Position.Y > p.WindBandMin && b.Position.Y < p.WindBandMax {
		v.X += p.WindBandForce * dt
	}
	v.X = gamemath.ClampSpeed(v.X, p.MaxSpeed)

	next := b.Position.Add(v.Scale(dt))
	v = v.Scale(p.Damping)
	result := StepResult{Next: next}

	if level != nil {
		cx := gamemath.FloorDiv(next.X, p.TileSize)
		cy := gamemath.FloorDiv(next.Y, p.TileSize)
		cells := level.Query(cx-1, cy-1, cx+1, cy+1)
		if len(cells) > 0 {
			bounds := gamemath.NewRect(next.X, next.Y, FrameSize, FrameSize)
			resolver := Resolver{Masks: level, Bounce: p.Bounce}
			if hit, response := resolver.Resolve(&b.scratch, bounds, v, cells); hit {
				result.Collided = true
				v = response
				next = b.Position
			}
		}
	}

	b.Velocity = v
	b.Position = next
	return result
}
