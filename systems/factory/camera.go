package factory

import (
	"github.com/automoto/dashrunner/archetypes"
	"github.com/automoto/dashrunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the camera centred on at so the first frames don't
// sweep in from the origin.
func CreateCamera(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: at})
	return camera
}
