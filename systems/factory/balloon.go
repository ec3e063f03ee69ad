package factory

import (
	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateBalloon spawns the balloon centred on spawn in NORMAL state.
func CreateBalloon(ecs *ecs.ECS, space *resolv.Space, spawn gamemath.Vec2, log *zap.Logger) *donburi.Entry {
	b := archetypes.Balloon.Spawn(ecs)

	half := float32(balloon.FrameSize) / 2
	pos := spawn.Sub(gamemath.Vec2{X: half, Y: half})

	obj := resolv.NewObject(float64(pos.X), float64(pos.Y), balloon.FrameSize, balloon.FrameSize, tags.ResolvBalloon)
	obj.SetShape(resolv.NewRectangle(0, 0, balloon.FrameSize, balloon.FrameSize))
	obj.Data = b
	space.Add(obj)

	components.Object.SetValue(b, components.ObjectData{Object: obj})
	components.Physics.SetValue(b, components.PhysicsData{
		Body: balloon.NewBody(pos, cfg.Params()),
	})
	components.State.SetValue(b, components.StateData{
		StateMachine: balloon.NewStateMachine(cfg.TransitionClips, cfg.Transition.Duration, log),
		Selected:     balloon.Normal,
	})
	components.Animation.SetValue(b, components.AnimationData{})

	return b
}
