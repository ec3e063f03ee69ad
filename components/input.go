package components

import (
	cfg "github.com/automoto/balloon/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Clicked is set for the frame a mouse button or touch went down.
	Clicked        bool
	ClickX, ClickY int // screen pixels
}

var Input = donburi.NewComponentType[InputData]()
