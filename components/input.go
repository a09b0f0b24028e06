package components

import (
	cfg "github.com/automoto/tilerun/config"
	"github.com/yohamta/donburi"
)

// ActionState is an action's state this tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData keeps two ticks of held actions. Edges are derived from them.
type InputData struct {
	Held     [cfg.ActionCount]bool
	LastHeld [cfg.ActionCount]bool
	// Gamepad is true when the last action came from a controller.
	Gamepad bool
}

var Input = donburi.NewComponentType[InputData]()
