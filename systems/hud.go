package systems

import (
	"fmt"
	"image"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/fonts"
	"github.com/automoto/balloon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// ButtonRects lays the state buttons out in a row centred at the bottom of
// a screen of the given size, in StateButtons order.
func ButtonRects(screenWidth, screenHeight int) []image.Rectangle {
	n := len(cfg.StateButtons)
	size, gap := cfg.UI.ButtonSize, cfg.UI.ButtonGap
	total := n*size + (n-1)*gap
	x := (screenWidth - total) / 2
	y := screenHeight - cfg.UI.ButtonMargin - size

	rects := make([]image.Rectangle, n)
	for i := range rects {
		rects[i] = image.Rect(x, y, x+size, y+size)
		x += size + gap
	}
	return rects
}

// ButtonAt returns the index of the state button under a screen point.
func ButtonAt(screenWidth, screenHeight, x, y int) (int, bool) {
	p := image.Pt(x, y)
	for i, r := range ButtonRects(screenWidth, screenHeight) {
		if p.In(r) {
			return i, true
		}
	}
	return -1, false
}

// DrawHUD renders the level name, the state buttons and the retry hint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	text.Draw(screen, level.Info.Name, fonts.Regular.Get(), 8, 20, cfg.White)

	balloonEntry, ok := tags.Balloon.First(ecs.World)
	if !ok {
		return
	}
	state := components.State.Get(balloonEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	labelFont := fonts.Small.Get()
	for i, r := range ButtonRects(width, height) {
		s := cfg.StateButtons[i]
		c := cfg.Gray
		switch {
		case !level.Info.Enabled(s):
		case s == state.Selected:
			c = cfg.LightBlue
		default:
			c = cfg.DarkBlue
		}
		vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
		text.Draw(screen, fmt.Sprintf("%d", i+1), labelFont, r.Min.X+3, r.Min.Y+11, cfg.White)
		text.Draw(screen, abbreviate(s.String()), labelFont, r.Min.X+3, r.Max.Y-4, cfg.White)
	}

	if state.Current().Terminal() && state.TerminalTimer >= cfg.Level.ResetDelay {
		drawCentered(screen, "click or press R to retry", fonts.Bold.Get(), width, height/2)
	}
}

func abbreviate(name string) string {
	if len(name) > 5 {
		return name[:5]
	}
	return name
}

// drawCentered draws s horizontally centred on a screen of the given width
// with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int) {
	text.Draw(screen, s, face, centeredX(face, s, width), y, cfg.White)
}

func centeredX(face font.Face, s string, width int) int {
	bounds := text.BoundString(face, s)
	return (width - bounds.Dx()) / 2
}
