package systems

import (
	"math"

	"github.com/automoto/dashrunner/components"
	"github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/tags"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

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
	motion := components.Motion.Get(playerEntry)
	body := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	target := dmath.Vec2{X: body.X + body.W/2, Y: body.Y + body.H/2}
	moving := motion.State.Any(config.Running | config.Dashing)
	followTarget(camera, target, motion.Direction(), moving,
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))
}

// followTarget eases the camera toward target, keeping the level filling the
// screen.
func followTarget(camera *components.CameraData, target dmath.Vec2, direction float64, moving bool, levelWidth, levelHeight float64) {
	// Look-ahead freezes while standing still.
	if moving {
		targetLookAhead := direction * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := target.X + camera.LookAheadX
	targetY := target.Y

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	targetX = clampAxis(targetX, screenWidth/2, levelWidth-screenWidth/2)
	targetY = clampAxis(targetY, screenHeight/2, levelHeight-screenHeight/2)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis centres on a level smaller than the screen.
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// CameraOffset is the translation from world to screen space.
func CameraOffset(camera *components.CameraData) (float64, float64) {
	return float64(config.C.Width)/2 - camera.Position.X, float64(config.C.Height)/2 - camera.Position.Y
}
