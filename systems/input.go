package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionStateNormal:  {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	cfg.ActionStateLift:    {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	cfg.ActionStateHeavy:   {ebiten.KeyDigit3, ebiten.KeyNumpad3},
	cfg.ActionStateSpinner: {ebiten.KeyDigit4, ebiten.KeyNumpad4},
	cfg.ActionStateMagnet:  {ebiten.KeyDigit5, ebiten.KeyNumpad5},
	cfg.ActionStateBuzzsaw: {ebiten.KeyDigit6, ebiten.KeyNumpad6},
	cfg.ActionPause:        {ebiten.KeyP},
	cfg.ActionReset:        {ebiten.KeyR},
	cfg.ActionQuit:         {ebiten.KeyEscape},
	cfg.ActionDebug:        {ebiten.KeyF1},
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls raw input and updates the Input component.
// Must run before every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.Clicked = false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.Clicked = true
		input.ClickX, input.ClickY = ebiten.CursorPosition()
		return
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		input.Clicked = true
		input.ClickX, input.ClickY = ebiten.TouchPosition(touchIDs[0])
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
