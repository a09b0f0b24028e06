package systems

import (
	"math"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/object"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi/ecs"
)

func screenSize() (int, int) {
	return config.C.Width, config.C.Height
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(playerObject.VelX) > config.Camera.LookAheadSpeedThreshold {
		facing := 1.0
		if playerObject.Dir.Horizontal() == object.Left {
			facing = -1.0
		}
		targetLookAhead := facing * config.Camera.LookAheadDistanceX * config.Camera.LookAheadMovingScale
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	// Follow the centre of the sprite
	bounds := playerObject.Bounds()
	targetX := float64(bounds.Min.X+bounds.Max.X)/2 + camera.LookAheadX
	targetY := float64(bounds.Min.Y+bounds.Max.Y) / 2

	targetX, targetY = clampCamera(targetX, targetY, float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps the level filling the screen. Levels smaller than the
// screen are centred.
func clampCamera(x, y, levelWidth, levelHeight float64) (float64, float64) {
	w, h := screenSize()
	screenWidth, screenHeight := float64(w), float64(h)

	if levelWidth <= screenWidth {
		x = levelWidth / 2
	} else {
		x = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, x))
	}
	if levelHeight <= screenHeight {
		y = levelHeight / 2
	} else {
		y = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, y))
	}
	return x, y
}
