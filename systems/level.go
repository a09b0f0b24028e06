package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the pre-rendered level layers under the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)
	screen.DrawImage(levelData.CurrentLevel.Background, opts)
}
