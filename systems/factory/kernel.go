package factory

import (
	"image"
	"log"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/object"
	"github.com/automoto/tilerun/shared/simconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateKernel spawns the collision world for a level. With a tuning path
// the file is watched and reloaded while the scene runs.
func CreateKernel(ecs *ecs.ECS, level image.Rectangle, sim simconfig.Simulation, tuningPath string) *donburi.Entry {
	kernel := archetypes.Kernel.Spawn(ecs)

	world := object.NewWorld(level, sim)
	world.Verbose = cfg.Debug.Verbose
	data := &components.KernelData{World: world}

	if tuningPath != "" {
		w, err := cfg.WatchSimulation(tuningPath)
		if err != nil {
			log.Printf("factory: not watching %s: %v", tuningPath, err)
		} else {
			data.Tuning = w
		}
	}

	components.Kernel.Set(kernel, data)
	return kernel
}
