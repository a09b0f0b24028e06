package archetypes

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Sprite,
		components.FloatingPlatform,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.State,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
		components.Animation,
	)
	Kernel = newArchetype(
		components.Kernel,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Debug = newArchetype(
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
