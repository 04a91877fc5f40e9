package components

import (
	"time"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AfterImageCapacity is the number of trail samples kept per character.
const AfterImageCapacity = 5

// AfterImage is one sampled pose of the dash trail.
type AfterImage struct {
	Position   math.Vec2
	FacingLeft bool
	Frame      *animations.Frame
	Texture    *ebiten.Image
	Remaining  time.Duration
}

// Alive reports whether the sample is still visible.
func (a *AfterImage) Alive() bool {
	return a.Frame != nil && a.Remaining > 0
}

// AfterImageData is a fixed ring of samples. Next is the slot the next sample
// overwrites.
type AfterImageData struct {
	Samples    [AfterImageCapacity]AfterImage
	Next       int
	SinceLast  time.Duration
	WasDashing bool
}

var AfterImages = donburi.NewComponentType[AfterImageData]()
