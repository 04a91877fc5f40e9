package components

import (
	"time"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/config"
	"github.com/yohamta/donburi"
)

// CharacterClips are the clips a character plays, resolved once when the
// character is created.
type CharacterClips struct {
	Idle        *animations.Clip
	Run         *animations.Clip
	Dash        *animations.Clip
	JumpAscend  *animations.Clip
	JumpDescend *animations.Clip
	LandRun     *animations.Clip
	LandIdle    *animations.Clip
}

// MotionData is the per-character state of the motion state machine.
type MotionData struct {
	State      config.PlayerState
	FacingLeft bool

	// VelocityY is upward while Jumping and downward while Falling,
	// in pixels per tick.
	VelocityY float64

	DashElapsed  time.Duration
	DashDuration time.Duration // sum of the dash clip's frame durations
	JumpElapsed  time.Duration
	JumpCut      bool

	GroundLevel float64 // y of the ground plane; larger y is lower on screen
	MaxX        float64 // right edge of the level, 0 for unbounded

	Config *config.CharacterConfig
	Clips  CharacterClips
}

// Direction returns the facing as -1 or 1.
func (m *MotionData) Direction() float64 {
	if m.FacingLeft {
		return config.DirectionLeft
	}
	return config.DirectionRight
}

var Motion = donburi.NewComponentType[MotionData]()
