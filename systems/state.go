package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/balloon/assets/animations"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var (
	ErrNoBalloon      = errors.New("no balloon in the world")
	ErrButtonDisabled = errors.New("state disabled in this level")
)

// TickSeconds is the simulated time of one update at the configured TPS.
func TickSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}

// UpdateStates advances state transitions. It runs before UpdateBalloon so
// physics acts on the state the transition has flipped to this tick.
func UpdateStates(ecs *ecs.ECS) {
	dt := TickSeconds()
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.Update(dt)

		if !state.Current().Terminal() {
			return
		}
		state.TerminalTimer++

		anim := components.Animation.Get(e)
		clip := state.Clip()
		if anim.CurrentSheet != clip.Name {
			anim.SetAnimation(clip.Name, animations.FromClip(clip, cfg.C.TPS))
		}
	})
}

// RequestState asks the balloon to change to s. The request fails when the
// current level has the state's button disabled or the machine rejects it.
func RequestState(ecs *ecs.ECS, s balloon.State) error {
	entry, ok := tags.Balloon.First(ecs.World)
	if !ok {
		return ErrNoBalloon
	}
	if level, ok := components.Level.First(ecs.World); ok {
		if !components.Level.Get(level).Info.Enabled(s) {
			return fmt.Errorf("%w: %s", ErrButtonDisabled, s)
		}
	}

	state := components.State.Get(entry)
	if err := state.Request(s); err != nil {
		log.Debug("state request rejected", zap.Stringer("target", s), zap.Error(err))
		return err
	}
	state.Selected = s
	return nil
}

// KillBalloon moves the balloon to DEAD.
func KillBalloon(ecs *ecs.ECS) {
	if entry, ok := tags.Balloon.First(ecs.World); ok {
		components.State.Get(entry).Kill()
		log.Info("balloon killed")
	}
}

// PopBalloon moves the balloon to POP.
func PopBalloon(ecs *ecs.ECS) {
	if entry, ok := tags.Balloon.First(ecs.World); ok {
		components.State.Get(entry).Pop()
		log.Info("balloon popped")
	}
}

// BalloonTerminal reports whether the balloon is popped or dead, and for how
// many frames.
func BalloonTerminal(ecs *ecs.ECS) (bool, int) {
	entry, ok := tags.Balloon.First(ecs.World)
	if !ok {
		return false, 0
	}
	state := components.State.Get(entry)
	return state.Current().Terminal(), state.TerminalTimer
}
