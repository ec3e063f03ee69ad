package components

import (
	"github.com/automoto/balloon/shared/balloon"
	"github.com/yohamta/donburi"
)

type StateData struct {
	*balloon.StateMachine
	Selected      balloon.State // last accepted button, highlighted in the UI
	TerminalTimer int           // frames since the balloon popped or died
}

var State = donburi.NewComponentType[StateData]()
