package systems

import (
	"math"

	"github.com/automoto/tilerun/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms advances the platform tweens and moves each
// platform together with whatever stands on it. Runs before the world tick
// so riders resolve against the new position.
func UpdateFloatingPlatforms(e *ecs.ECS) {
	kernel := GetKernel(e)
	if kernel == nil {
		return
	}
	dt := float32(1) / float32(ebiten.TPS())

	components.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		fp := components.FloatingPlatform.Get(entry)
		obj := components.Object.Get(entry).Object

		x := fp.OriginX + step(fp.X, dt)
		y := fp.OriginY + step(fp.Y, dt)
		kernel.World.MoveCarrying(obj, x, y)
	})
}

// step advances a back-and-forth sequence and restarts it when it ends.
func step(seq *gween.Sequence, dt float32) int {
	if seq == nil {
		return 0
	}
	v, _, done := seq.Update(dt)
	if done {
		seq.Reset()
	}
	return int(math.Round(float64(v)))
}
