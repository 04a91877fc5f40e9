package systems

import (
	"image"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

type frameKey struct {
	texture *ebiten.Image
	source  image.Rectangle
}

// frameCache avoids allocating a sub-image per draw.
var frameCache = map[frameKey]*ebiten.Image{}

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 64.0

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camX, camY := CameraOffset(components.Camera.Get(cameraEntry))

	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x, y := float32(o.X+camX), float32(o.Y+camY)
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), cfg.GroundFill, false)
		vector.FillRect(screen, x, y, float32(o.W), 3, cfg.GroundTop, false)
	})
}

// DrawAnimated renders every registered animation at its entity's feet.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	registryEntry, ok := components.Animations.First(ecs.World)
	if !ok {
		return
	}
	registry := components.Animations.Get(registryEntry).Registry
	camX, camY := CameraOffset(camera)

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	minX := camera.Position.X - width/2 - cullPadding
	maxX := camera.Position.X + width/2 + cullPadding
	minY := camera.Position.Y - height/2 - cullPadding
	maxY := camera.Position.Y + height/2 + cullPadding

	placements := make(map[donburi.Entity]animations.Placement, registry.Len())
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		o := components.Object.Get(e)
		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}

		flip := false
		if e.HasComponent(components.Motion) {
			flip = components.Motion.Get(e).FacingLeft
		}
		placements[e.Entity()] = animations.Placement{
			Position: footPosition(o.Object),
			FlipX:    flip,
			Tint:     animations.Opaque,
		}
	})

	for _, cmd := range registry.DrawAll(placements) {
		drawCommand(screen, cmd, camX, camY, 1)
	}
}

// DrawAfterImages renders dash trails oldest first, under the characters.
func DrawAfterImages(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camX, camY := CameraOffset(components.Camera.Get(cameraEntry))

	components.AfterImages.Each(ecs.World, func(e *donburi.Entry) {
		trail := components.AfterImages.Get(e)
		for i := 0; i < components.AfterImageCapacity; i++ {
			s := &trail.Samples[(trail.Next+i)%components.AfterImageCapacity]
			if !s.Alive() || s.Texture == nil {
				continue
			}
			cmd := animations.DrawCommand{
				Texture:  s.Texture,
				Source:   s.Frame.Source,
				Position: s.Position,
				FlipX:    s.FacingLeft,
				Tint:     cfg.AfterImage.Tint,
			}
			drawCommand(screen, cmd, camX, camY, afterImageAlpha(cfg.AfterImage, s.Remaining))
		}
	})
}

// drawCommand anchors the frame at its bottom-centre.
func drawCommand(screen *ebiten.Image, cmd animations.DrawCommand, camX, camY float64, alpha float32) {
	if cmd.Texture == nil || cmd.Source.Empty() {
		return
	}
	img := subImage(cmd.Texture, cmd.Source)
	w, h := float64(cmd.Source.Dx()), float64(cmd.Source.Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	drawOp.GeoM.Translate(-w/2, -h)
	if cmd.FlipX {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(cmd.Position.X+camX, cmd.Position.Y+camY)

	drawOp.ColorScale.ScaleWithColor(cmd.Tint)
	drawOp.ColorScale.ScaleAlpha(alpha)

	screen.DrawImage(img, drawOp)
}

func subImage(texture *ebiten.Image, source image.Rectangle) *ebiten.Image {
	key := frameKey{texture: texture, source: source}
	if img, ok := frameCache[key]; ok {
		return img
	}
	img := texture.SubImage(source).(*ebiten.Image)
	frameCache[key] = img
	return img
}

// ResetFrameCache drops cached sub-images, used when textures are reloaded.
func ResetFrameCache() {
	frameCache = map[frameKey]*ebiten.Image{}
}
