package components

import (
	"github.com/automoto/balloon/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData plays a tick-driven clip that is not part of a state
// transition, such as the pop after the balloon dies.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     string
}

func (a *AnimationData) SetAnimation(sheet string, anim *animations.Animation) {
	if a.CurrentSheet == sheet && a.CurrentAnimation != nil {
		return
	}
	a.CurrentSheet = sheet
	a.CurrentAnimation = anim
	if anim != nil {
		anim.Restart()
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
