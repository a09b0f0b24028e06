package systems

import (
	"math"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const runThreshold = 0.1

// UpdateStates derives each character's animation state from its kernel
// object after the world tick.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		state := components.State.Get(e)

		next := characterState(o)
		if next == state.CurrentState {
			state.StateTimer++
			return
		}
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
	})
}

func characterState(o *object.Object) cfg.StateID {
	switch {
	case o.InMidAir() && o.Char != nil && o.Char.TouchingWall && o.VelY > 0:
		return cfg.WallSlide
	case o.InMidAir() && o.VelY < 0:
		return cfg.Jump
	case o.InMidAir():
		return cfg.Fall
	case math.Abs(o.VelX) > runThreshold:
		return cfg.Running
	}
	return cfg.Idle
}

// UpdateAnimations advances every animation and hands the active one to the
// kernel object so collisions use the frame on screen. A new frame can change
// the collision bounds, so the object's grid cells are refreshed with it.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if e.HasComponent(components.State) {
			state := components.State.Get(e)
			if anim.SetAnimation(state.CurrentState) {
				components.Object.Get(e).SetAnimation(anim.CurrentAnimation)
			}
		}
		if anim.CurrentAnimation == nil {
			return
		}
		frame := anim.CurrentAnimation.Frame()
		anim.CurrentAnimation.Update()
		if anim.CurrentAnimation.Frame() != frame && e.HasComponent(components.Object) {
			components.Object.Get(e).Reindex()
		}
	})
}
