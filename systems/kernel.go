package systems

import (
	"image"
	"log"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi/ecs"
)

// GetKernel returns the collision world singleton, or nil before the level
// is loaded.
func GetKernel(e *ecs.ECS) *components.KernelData {
	entry, ok := components.Kernel.First(e.World)
	if !ok {
		return nil
	}
	return components.Kernel.Get(entry)
}

// UpdateKernel applies pending tuning, points the world at the camera view
// and runs one world tick.
func UpdateKernel(e *ecs.ECS) {
	kernel := GetKernel(e)
	if kernel == nil {
		return
	}
	world := kernel.World

	if kernel.Tuning != nil {
		if sim, ok := kernel.Tuning.Latest(); ok {
			log.Printf("systems: tuning reloaded")
			kernel.Pending = &sim
		}
	}
	if kernel.Pending != nil {
		world.SetSimulation(*kernel.Pending)
		applyCollisionNames(e)
		kernel.Pending = nil
	}

	world.SetView(CameraView(e))
	world.Update()
}

// applyCollisionNames re-evaluates which tiles are decorative after the
// tuning changed.
func applyCollisionNames(e *ecs.ECS) {
	kernel := GetKernel(e)
	sim := kernel.World.Simulation()
	for _, o := range kernel.World.ObjectsOfType(object.KindTile) {
		o.DisableCollision(sim.CollisionDisabledFor(o.Name))
	}
}

// CameraView returns the level rectangle visible on screen.
func CameraView(e *ecs.ECS) image.Rectangle {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return image.Rectangle{}
	}
	camera := components.Camera.Get(entry)
	w, h := screenSize()
	x := int(camera.Position.X) - w/2
	y := int(camera.Position.Y) - h/2
	return image.Rect(x, y, x+w, y+h)
}
