package animations

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// DrawCommand is everything a renderer needs to composite one frame. The
// animation package never rasterizes anything itself.
type DrawCommand struct {
	Texture  *ebiten.Image
	Source   image.Rectangle
	Position math.Vec2
	FlipX    bool
	Tint     color.RGBA
}

// Placement is where and how a registry entry should be drawn this tick.
type Placement struct {
	Position math.Vec2
	FlipX    bool
	Tint     color.RGBA
}

// Opaque is the neutral tint.
var Opaque = color.RGBA{R: 255, G: 255, B: 255, A: 255}
