package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/assets/animations"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/border"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile adds an unmovable tile whose border is baked at its position.
// Decorative tiles keep their entity but are skipped by collision passes.
func CreateTile(ecs *ecs.ECS, world *object.World, level *assets.Level, t leveldata.Tile) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)
	sim := world.Simulation()

	obj := object.NewInanimate(t.Name, object.KindTile, t.X, t.Y, t.W, t.H, true)
	obj.Z = cfg.ZTile
	obj.Data = tile

	if b := level.TileBorder(t, sim.AlphaThreshold); b != nil {
		anim := animations.NewAnimation(0, 0, 1, 0)
		anim.SetBorders([]*border.SpriteBorder{b})
		anim.Bake(t.X, t.Y)
		obj.SetAnimation(anim)
	}
	obj.DisableCollision(sim.CollisionDisabledFor(t.Name))

	components.Object.SetValue(tile, components.ObjectData{Object: obj})
	world.Add(obj)
	return tile
}
