package config

import "github.com/automoto/balloon/shared/balloon"

// Type alias so game code can say config.StateID like the rest of config.
type StateID = balloon.State

// Re-export balloon state constants.
const (
	StateNormal  = balloon.Normal
	StateLift    = balloon.Lift
	StateHeavy   = balloon.Heavy
	StateSpinner = balloon.Spinner
	StateMagnet  = balloon.Magnet
	StateBuzzsaw = balloon.Buzzsaw
	StatePop     = balloon.Pop
	StateDead    = balloon.Dead
)

// StateButtons is the on-screen button order; hotkeys 1-6 follow it.
var StateButtons = balloon.SteadyStates
