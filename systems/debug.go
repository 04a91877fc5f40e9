package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/fonts"
	"github.com/automoto/dashrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay.
func UpdateDebug(ecs *ecs.ECS) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		if components.Input.Get(e).Action(cfg.ActionDebug) == components.InputPressed {
			cfg.Debug.Overlay = !cfg.Debug.Overlay
		}
	})
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := CameraOffset(camera)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		viewX := camera.Position.X - width/2
		viewY := camera.Position.Y - height/2

		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+width || obj.Y+obj.H < viewY || obj.Y > viewY+height {
				continue
			}

			x := obj.X + camX
			y := obj.Y + camY

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	lines := debugLines(
		components.Motion.Get(playerEntry),
		components.Animation.Get(playerEntry),
		components.Object.Get(playerEntry),
		components.Input.Get(playerEntry),
	)
	lines = append(lines, fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	vector.FillRect(screen, 4, 4, 220, float32(lineHeight*len(lines)+8), cfg.Overlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 10, 4+lineHeight*(i+1), cfg.White)
	}
}

func debugLines(m *components.MotionData, anim *components.AnimationData, body *components.ObjectData, input *components.InputData) []string {
	clip, frame := "-", "-"
	if c := anim.Player.Clip(); c != nil {
		clip = c.Name
		frame = fmt.Sprintf("%d/%d %v", anim.Player.Index(), c.LastIndex(), anim.Player.Elapsed())
	}
	facing := "right"
	if m.FacingLeft {
		facing = "left"
	}

	return []string{
		fmt.Sprintf("state %s", m.State),
		fmt.Sprintf("clip %s frame %s", clip, frame),
		fmt.Sprintf("facing %s  vy %.2f", facing, m.VelocityY),
		fmt.Sprintf("dash %v/%v  jump %v", m.DashElapsed, m.DashDuration, m.JumpElapsed),
		fmt.Sprintf("pos %.1f,%.1f", body.X, body.Y),
		fmt.Sprintf("input %s", input.LastInputMethod),
	}
}
