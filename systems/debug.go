package systems

import (
	"image/color"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugBalloonColor = color.RGBA{0, 0, 255, 255}
	debugObjectColor  = color.RGBA{0, 255, 255, 255}
	debugWindColor    = color.RGBA{255, 255, 255, 160}
)

// DrawDebug outlines collision rectangles and the wind field when enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.DrawWind {
		drawWind(ecs, screen)
	}
	if !cfg.Debug.DrawBounds {
		return
	}

	tags.MapObject.Each(ecs.World, func(e *donburi.Entry) {
		x, y, w, h := screenRect(ecs, screen, components.MapObject.Get(e).Bounds)
		vector.StrokeRect(screen, x, y, w, h, 1, debugObjectColor, false)
	})
	tags.Balloon.Each(ecs.World, func(e *donburi.Entry) {
		x, y, w, h := screenRect(ecs, screen, components.Physics.Get(e).Bounds())
		vector.StrokeRect(screen, x, y, w, h, 1, debugBalloonColor, false)
	})
}

// drawWind samples the wind field at every cell centre and draws a short
// line along the push.
func drawWind(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Level == nil {
		return
	}

	grid := level.Grid
	half := float32(grid.TileSize) / 2
	for cy := 0; cy < grid.Height; cy++ {
		for cx := 0; cx < grid.Width; cx++ {
			center := grid.CellRect(cx, cy).Center()
			force := level.WindAt(center)
			if force.IsZero() {
				continue
			}
			tip := center.Add(force.Normalize().Scale(half))
			drawWorldLine(ecs, screen, center, tip)
		}
	}
}

func drawWorldLine(ecs *ecs.ECS, screen *ebiten.Image, from, to gamemath.Vec2) {
	x0, y0 := worldToScreen(ecs, screen, float64(from.X), float64(from.Y))
	x1, y1 := worldToScreen(ecs, screen, float64(to.X), float64(to.Y))
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, debugWindColor, false)
}
