package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing with its feet at (x, y) and
// settles it onto whatever is below.
func CreatePlayer(ecs *ecs.ECS, world *object.World, x, y int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	w, h := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	top := y - h

	obj := object.New("player", object.KindPlayer, x, top, w, h)
	obj.Z = cfg.ZPlayer
	obj.Speed = cfg.Player.Speed
	obj.Data = player
	obj.Char = newCharacter()

	animData := GenerateAnimations("player", w, h, world.Simulation().AlphaThreshold)
	if animData.CurrentAnimation != nil {
		obj.SetAnimation(animData.CurrentAnimation)
		// Latch and detach distances come from the idle pose.
		obj.SetReferenceAnimation(animData.CurrentAnimation)
	}

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Animation.Set(player, animData)
	components.Player.SetValue(player, components.PlayerData{SpawnX: x, SpawnY: top})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	world.Add(obj)
	if !world.Settle(obj) {
		obj.SetInMidAir(true)
	}
	return player
}

func newCharacter() *object.Character {
	c := object.NewCharacter()
	c.MaxJumps = cfg.Player.MaxJumps
	c.RemainingJumps = cfg.Player.MaxJumps
	c.JumpImpulse = cfg.Player.JumpImpulse
	c.WallJumpImpulse = cfg.Player.WallJumpImpulse
	c.Accel = cfg.Player.Accel
	c.Decel = cfg.Player.Decel
	c.AirControl = cfg.Player.AirControl
	c.CoyoteFrames = cfg.Player.CoyoteFrames
	c.JumpBufferFrames = cfg.Player.JumpBufferFrames
	c.MaxJumpHoldFrames = cfg.Player.MaxJumpHoldFrames
	c.WallSlideSpeed = cfg.Player.WallSlideSpeed
	return c
}
