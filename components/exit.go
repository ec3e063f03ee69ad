package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ExitData flies the balloon into the exit once it reaches the goal.
type ExitData struct {
	X, Y *gween.Tween
}

var Exit = donburi.NewComponentType[ExitData]()
