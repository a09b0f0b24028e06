package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects every collectible overlapping the player's
// collision bounds. Collectibles are out of the collision pass, so they are
// found through the grid instead.
func UpdatePickups(e *ecs.ECS) {
	kernel := GetKernel(e)
	if kernel == nil {
		return
	}

	components.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		po := components.Object.Get(playerEntry).Object

		for _, o := range kernel.World.Index().Query(po.CollisionBounds()) {
			if o.Kind != object.KindCollectible {
				continue
			}
			entry, ok := o.Data.(*donburi.Entry)
			if !ok || !entry.Valid() {
				continue
			}
			c := components.Collectible.Get(entry)
			if c.Collected || !po.CollisionBounds().Overlaps(o.CollisionBounds()) {
				continue
			}

			c.Collected = true
			player.Score += c.Value
			player.Collected++
			kernel.World.Remove(o)
			e.World.Remove(entry.Entity())
		}
	})
}
