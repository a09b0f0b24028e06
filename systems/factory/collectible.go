package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollectible adds a pickup. It floats in place and never takes part
// in collision passes; the pickup system finds it through the grid.
func CreateCollectible(ecs *ecs.ECS, world *object.World, c leveldata.Pickup) *donburi.Entry {
	entry := archetypes.Collectible.Spawn(ecs)
	size := cfg.Collectible.Size

	obj := object.New(c.Name, object.KindCollectible, int(c.X), int(c.Y), size, size)
	obj.Z = cfg.ZCollectible
	obj.Weightless = true
	obj.NeedsUpdate = false
	obj.DisableCollision(true)
	obj.Data = entry

	anim := GenerateAnimations("coin", size, size, world.Simulation().AlphaThreshold)
	if anim.CurrentAnimation != nil {
		obj.SetAnimation(anim.CurrentAnimation)
	}

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Animation.Set(entry, anim)
	components.Collectible.SetValue(entry, components.CollectibleData{Value: cfg.Collectible.Score})
	world.Add(obj)
	return entry
}
