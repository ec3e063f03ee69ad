package components

import (
	"github.com/automoto/balloon/shared/balloon"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	*balloon.Body
	Last balloon.StepResult // result of the most recent tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
