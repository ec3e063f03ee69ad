package systems

import (
	"image/color"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/automoto/balloon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

var objectColors = map[tilemap.ObjectKind]color.RGBA{
	tilemap.KindFan:    cfg.SkyBlue,
	tilemap.KindSpikes: cfg.Red,
	tilemap.KindRope:   cfg.Orange,
	tilemap.KindDoor:   cfg.Gray,
	tilemap.KindExit:   cfg.LightGreen,
}

// DrawObjects renders map objects as flat rectangles.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.MapObject.Each(ecs.World, func(e *donburi.Entry) {
		mo := components.MapObject.Get(e)
		c, ok := objectColors[mo.Kind]
		if !ok {
			return
		}
		x, y, w, h := screenRect(ecs, screen, mo.Bounds)
		vector.FillRect(screen, x, y, w, h, c, false)
	})
}

// DrawBalloon renders the balloon: the pop clip once it is terminal, the
// transition clip while animating, otherwise the state's texture.
func DrawBalloon(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Balloon.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		physics := components.Physics.Get(e)

		name, frame := state.Frame()
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil && !anim.CurrentAnimation.Looped {
			name, frame = anim.CurrentSheet, anim.CurrentAnimation.Frame()
		}
		img := spriteFrame(name, frame)
		if img == nil {
			return
		}

		x, y := worldToScreen(ecs, screen, float64(physics.Position.X), float64(physics.Position.Y+balloon.FrameSize))
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}

// screenRect converts a world rect (Y up, origin bottom-left) to screen
// coordinates with the origin at the top-left.
func screenRect(ecs *ecs.ECS, screen *ebiten.Image, r gamemath.Rect) (x, y, w, h float32) {
	sx, sy := worldToScreen(ecs, screen, float64(r.X), float64(r.Top()))
	return float32(sx), float32(sy), r.W, r.H
}
