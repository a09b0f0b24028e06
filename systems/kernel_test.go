package systems

import (
	"image"
	"testing"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/simconfig"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPendingTuningReappliesCollisionNames(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	sim := simconfig.Default()
	sim.DisabledCollisionNames = []string{"torch"}

	kernelEntry := factory.CreateKernel(e, image.Rect(0, 0, 320, 240), sim, "")
	kernel := components.Kernel.Get(kernelEntry)
	level := &assets.Level{LevelData: &leveldata.LevelData{}}

	torch := components.Object.Get(factory.CreateTile(e, kernel.World, level,
		leveldata.Tile{X: 0, Y: 200, W: 16, H: 16, Name: "torch"})).Object
	ground := components.Object.Get(factory.CreateTile(e, kernel.World, level,
		leveldata.Tile{X: 16, Y: 200, W: 16, H: 16, Name: "ground"})).Object

	if !torch.CollisionDisabled() || ground.CollisionDisabled() {
		t.Fatalf("at load: torch %v ground %v, want only torch disabled",
			torch.CollisionDisabled(), ground.CollisionDisabled())
	}

	next := simconfig.Default()
	next.DisabledCollisionNames = []string{"ground"}
	kernel.Pending = &next
	UpdateKernel(e)

	if kernel.Pending != nil {
		t.Error("pending tuning was not consumed")
	}
	if torch.CollisionDisabled() || !ground.CollisionDisabled() {
		t.Errorf("after reload: torch %v ground %v, want only ground disabled",
			torch.CollisionDisabled(), ground.CollisionDisabled())
	}
}
