package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pausedText = "PAUSED  (P to resume)"

// UpdatePause toggles pause and records quit requests.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		log.Debug("pause toggled")
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		pause.Quit = true
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)
	drawCentered(screen, pausedText, fonts.Bold.Get(), width, height/2)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}

// QuitRequested reports whether the player asked to leave the game.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).Quit
}
