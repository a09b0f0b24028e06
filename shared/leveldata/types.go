// Package leveldata parses Tiled levels into plain data. It has no
// dependencies on ebitengine, donburi or the kernel, so levels can be
// inspected headless.
package leveldata

import "image"

// Object group names read from a level.
const (
	GroupSpawns       = "Spawns"
	GroupPlatforms    = "Platforms"
	GroupCollectibles = "Collectibles"
)

// CollisionProperty marks a tile layer whose tiles become solid objects.
const CollisionProperty = "collision"

// LevelData holds everything a scene needs to populate a world from a TMX
// file, in pixels.
type LevelData struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int

	Tiles        []Tile
	Spawns       []Spawn
	Platforms    []PlatformPath
	Collectibles []Pickup
}

// Bounds is the level rectangle.
func (l *LevelData) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}

// Tile is one cell of a collision layer.
type Tile struct {
	X, Y, W, H int
	// Name comes from the tileset tile's "name" property and falls back to
	// the tileset name.
	Name  string
	Layer string
	// Image is the tileset image path inside the level filesystem and Src
	// the tile's rectangle in it. Image is empty for image-collection
	// tilesets.
	Image string
	Src   image.Rectangle
}

// Spawn is a named spawn point. Y is the spawn's bottom edge.
type Spawn struct {
	X, Y float64
	Name string
}

// PlatformPath is a floating platform that travels by (DX, DY) and back,
// taking Duration seconds per leg.
type PlatformPath struct {
	Name       string
	X, Y, W, H float64
	DX, DY     float64
	Duration   float64
}

// Pickup is a collectible placed in the level.
type Pickup struct {
	Name       string
	X, Y, W, H float64
}
