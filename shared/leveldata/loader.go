package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoCollisionLayer is returned for levels without any tile layer marked
// with the collision property.
var ErrNoCollisionLayer = errors.New("no collision layer")

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:       strings.TrimSuffix(path.Base(filepath.ToSlash(tmxPath)), ".tmx"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	found := false
	for _, layer := range levelMap.Layers {
		if !layer.Properties.GetBool(CollisionProperty) {
			continue
		}
		found = true
		data.Tiles = append(data.Tiles, layerTiles(levelMap, layer)...)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoCollisionLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSpawns:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, Spawn{X: o.X, Y: o.Y, Name: objectName(o)})
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, PlatformPath{
					Name:     objectName(o),
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					DX:       o.Properties.GetFloat("dx"),
					DY:       o.Properties.GetFloat("dy"),
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		case GroupCollectibles:
			for _, o := range og.Objects {
				data.Collectibles = append(data.Collectibles, Pickup{
					Name: objectName(o),
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
				})
			}
		}
	}

	// Left to right so the first spawn is the leftmost.
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

func layerTiles(levelMap *tiled.Map, layer *tiled.Layer) []Tile {
	var out []Tile
	tw, th := levelMap.TileWidth, levelMap.TileHeight
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) {
				return out
			}
			tile := layer.Tiles[i]
			if tile.IsNil() || tile.Tileset == nil {
				continue
			}

			ts := tile.Tileset
			t := Tile{
				X:     x * tw,
				Y:     y * th,
				W:     tw,
				H:     th,
				Name:  ts.Name,
				Layer: layer.Name,
			}
			if tsTile, err := ts.GetTilesetTile(tile.ID); err == nil {
				if name := tsTile.Properties.GetString("name"); name != "" {
					t.Name = name
				}
			}
			if ts.Image != nil {
				t.Image = filepath.ToSlash(ts.GetFileFullPath(ts.Image.Source))
				t.Src = ts.GetTileRect(tile.ID)
			}
			out = append(out, t)
		}
	}
	return out
}

func objectName(o *tiled.Object) string {
	if o.Name != "" {
		return o.Name
	}
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}

// LoadAll discovers all .tmx files in dir within fsys and loads each one,
// returning them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*LevelData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
