package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.Vec2{X: x, Y: y}})
}
