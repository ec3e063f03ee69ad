package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateControls turns actions into game requests: state hotkeys and
// buttons, kill and retry, and the debug overlay.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.DrawBounds = !cfg.Debug.DrawBounds
		cfg.Debug.DrawWind = cfg.Debug.DrawBounds
	}

	if terminal, frames := BalloonTerminal(ecs); terminal {
		retry := input.Clicked || GetAction(input, cfg.ActionReset).JustPressed
		if retry && frames >= cfg.Level.ResetDelay {
			if err := ResetLevel(ecs); err != nil {
				log.Error("reset level", zap.Error(err))
			}
		}
		return
	}

	if GetAction(input, cfg.ActionReset).JustPressed {
		KillBalloon(ecs)
		return
	}

	// Lowest button first; later presses in the same tick are rejected
	// while the first transition runs.
	for i, action := range cfg.StateHotkeys {
		if GetAction(input, action).JustPressed {
			_ = RequestState(ecs, cfg.StateButtons[i])
		}
	}
	handleButtonClick(ecs, input)
}

func handleButtonClick(ecs *ecs.ECS, input *components.InputData) {
	if !input.Clicked {
		return
	}
	if i, ok := ButtonAt(cfg.C.Width, cfg.C.Height, input.ClickX, input.ClickY); ok {
		_ = RequestState(ecs, cfg.StateButtons[i])
	}
}
