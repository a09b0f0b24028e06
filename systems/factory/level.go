package factory

import (
	"log"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the level at path, from disk when it exists there and
// from the embedded levels otherwise.
func CreateLevel(ecs *ecs.ECS, path string) (*donburi.Entry, error) {
	fsys, p := assets.OpenLevel(path)
	level, err := assets.NewLevelLoader().LoadLevel(fsys, p)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Path:         path,
	})
	return entry, nil
}

// CreateLevelOrDefault is CreateLevel, falling back to the default level
// when path cannot be loaded. It returns the path that was used.
func CreateLevelOrDefault(ecs *ecs.ECS, path string) (*donburi.Entry, string, error) {
	entry, err := CreateLevel(ecs, path)
	if err == nil || path == cfg.Level.DefaultLevel {
		return entry, path, err
	}
	log.Printf("factory: skipping level %s: %v; loading %s", path, err, cfg.Level.DefaultLevel)
	entry, err = CreateLevel(ecs, cfg.Level.DefaultLevel)
	return entry, cfg.Level.DefaultLevel, err
}

// PopulateLevel adds the level's tiles, floating platforms and collectibles
// to the world.
func PopulateLevel(ecs *ecs.ECS, world *object.World, level *assets.Level) {
	for _, t := range level.Tiles {
		CreateTile(ecs, world, level, t)
	}
	for _, p := range level.Platforms {
		CreateFloatingPlatform(ecs, world, p)
	}
	for _, c := range level.Collectibles {
		CreateCollectible(ecs, world, c)
	}
}
