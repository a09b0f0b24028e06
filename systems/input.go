package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput samples keyboard and gamepads into the Input singleton. It
// runs first so every later system sees the same tick.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.LastHeld = input.Held
	input.Held = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for _, b := range cfg.Input.Bindings {
		if keyHeld(b.Keys) {
			input.Held[b.Action] = true
			input.Gamepad = false
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			if buttonHeld(id, b.Buttons) || stickLeans(id, b.StickDir) {
				input.Held[b.Action] = true
				input.Gamepad = true
			}
		}
	}
}

func keyHeld(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func buttonHeld(id ebiten.GamepadID, buttons []ebiten.StandardGamepadButton) bool {
	for _, btn := range buttons {
		if ebiten.IsStandardGamepadButtonPressed(id, btn) {
			return true
		}
	}
	return false
}

func stickLeans(id ebiten.GamepadID, dir int) bool {
	if dir == 0 {
		return false
	}
	v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	return v*float64(dir) > cfg.Input.StickDeadzone
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction reports an action's held state and its edges since last tick.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	now, before := input.Held[id], input.LastHeld[id]
	return components.ActionState{
		Pressed:      now,
		JustPressed:  now && !before,
		JustReleased: !now && before,
	}
}
