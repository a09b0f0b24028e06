package components

import (
	"github.com/automoto/tilerun/shared/object"
	"github.com/automoto/tilerun/shared/simconfig"
	"github.com/yohamta/donburi"
)

// KernelData is the singleton holding the collision world of the scene.
type KernelData struct {
	World *object.World
	// Tuning is nil when no tuning file is watched.
	Tuning *simconfig.Watcher
	// Pending is set by the tuning panel and applied before the next tick.
	Pending *simconfig.Simulation
}

var Kernel = donburi.NewComponentType[KernelData]()
