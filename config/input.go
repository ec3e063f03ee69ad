package config

// ActionID represents a logical game action. Key bindings live with the
// input system so this package stays free of ebiten.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionStateNormal
	ActionStateLift
	ActionStateHeavy
	ActionStateSpinner
	ActionStateMagnet
	ActionStateBuzzsaw
	ActionPause
	ActionReset
	ActionQuit
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// StateHotkeys lists the hotkey action of each state button, in
// StateButtons order.
var StateHotkeys = [len(StateButtons)]ActionID{
	ActionStateNormal,
	ActionStateLift,
	ActionStateHeavy,
	ActionStateSpinner,
	ActionStateMagnet,
	ActionStateBuzzsaw,
}
