package systems

import (
	cfg "github.com/automoto/tilerun/config"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns input into character intents. The kernel applies them
// on the next world tick.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, input, playerEntry)
	})
}

func updateSinglePlayer(e *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object

	if GetAction(input, cfg.ActionRestart).JustPressed {
		respawn(e, player, playerObject)
		return
	}

	handlePlayerInput(input, playerObject)
}

func handlePlayerInput(input *components.InputData, o *object.Object) {
	jumpAction := GetAction(input, cfg.ActionJump)
	moveLeftAction := GetAction(input, cfg.ActionMoveLeft)
	moveRightAction := GetAction(input, cfg.ActionMoveRight)
	running := GetAction(input, cfg.ActionRun).Pressed

	switch {
	case moveLeftAction.Pressed && !moveRightAction.Pressed:
		o.MoveLeft(running)
	case moveRightAction.Pressed && !moveLeftAction.Pressed:
		o.MoveRight(running)
	default:
		o.StopX()
	}

	if jumpAction.JustPressed {
		o.BufferJump()
		o.SetJumpHeld(true)
	}
	if jumpAction.JustReleased {
		o.SetJumpHeld(false)
	}
}

// respawn puts the player back at its spawn point.
func respawn(e *ecs.ECS, player *components.PlayerData, o *object.Object) {
	o.Detach()
	o.VelX, o.VelY = 0, 0
	o.StopX()
	o.SetPosition(player.SpawnX, player.SpawnY)
	if kernel := GetKernel(e); kernel == nil || !kernel.World.Settle(o) {
		o.SetInMidAir(true)
	}
}
