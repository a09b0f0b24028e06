package factory

import (
	"image"
	"testing"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/object"
	"github.com/automoto/tilerun/shared/simconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateTileDisablesDecorativeNames(t *testing.T) {
	sim := simconfig.Default()
	sim.DisabledCollisionNames = []string{"torch"}

	tests := []struct {
		name         string
		tile         string
		wantDisabled bool
	}{
		{"solid ground", "ground", false},
		{"decorative torch", "torch", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			world := object.NewWorld(image.Rect(0, 0, 320, 240), sim)
			level := &assets.Level{LevelData: &leveldata.LevelData{}}

			entry := CreateTile(e, world, level, leveldata.Tile{X: 16, Y: 200, W: 16, H: 16, Name: tt.tile})
			obj := components.Object.Get(entry).Object

			if obj.CollisionDisabled() != tt.wantDisabled {
				t.Errorf("CollisionDisabled() = %v, want %v", obj.CollisionDisabled(), tt.wantDisabled)
			}
			if obj.Data != entry {
				t.Error("object does not point back at its entry")
			}
			if got := len(world.ObjectsOfType(object.KindTile)); got != 1 {
				t.Errorf("tiles in world = %d, want 1", got)
			}
		})
	}
}
