package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/object"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform adds a platform that travels along its path and
// back. Paths without a travel distance move up by the configured amount.
func CreateFloatingPlatform(ecs *ecs.ECS, world *object.World, p leveldata.PlatformPath) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	w, h := int(p.W), int(p.H)
	if w <= 0 || h <= 0 {
		w, h = cfg.Platform.Width, cfg.Platform.Height
	}
	obj := object.NewInanimate(p.Name, object.KindPlatform, int(p.X), int(p.Y), w, h, false)
	obj.Z = cfg.ZPlatform
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Sprite.SetValue(platform, components.SpriteData{Image: assets.GetObjectImage("platform.png")})

	dx, dy := float32(p.DX), float32(p.DY)
	if dx == 0 && dy == 0 {
		dy = -cfg.Platform.Travel
	}
	duration := float32(p.Duration)
	if duration <= 0 {
		duration = cfg.Platform.Duration
	}

	// The floating platform moves using *gween.Sequence tweens, moving it back and forth.
	components.FloatingPlatform.SetValue(platform, components.FloatingPlatformData{
		OriginX: obj.X(),
		OriginY: obj.Y(),
		X:       backAndForth(dx, duration),
		Y:       backAndForth(dy, duration),
	})

	world.Add(obj)
	return platform
}

func backAndForth(distance, duration float32) *gween.Sequence {
	if distance == 0 {
		return nil
	}
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, distance, duration, ease.InOutSine),
		gween.New(distance, 0, duration, ease.InOutSine),
	)
	return tw
}
