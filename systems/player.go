package systems

import (
	"fmt"
	"time"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/shared/gamemath"
	"github.com/automoto/dashrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Completions the character asks its animation player for.
const (
	completeLandRun  animations.Completion = cfg.ClipLandRun
	completeLandIdle animations.Completion = cfg.ClipLandIdle
)

// MotionInput is the semantic input the motion state machine reads. It never
// looks at raw devices.
type MotionInput interface {
	Action(id cfg.ActionID) components.InputState
	MovingLeft() bool
	MovingRight() bool
	Idle() bool
}

func UpdatePlayer(ecs *ecs.ECS) {
	dt := TickDuration()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateMotion(
			components.Input.Get(e),
			components.Motion.Get(e),
			components.Object.Get(e).Object,
			components.Animation.Get(e).Player,
			dt,
		)
	})
}

// updateMotion runs one tick of the state machine: transition rules first,
// then the physics of whatever flags are set. Advancing the animation is
// left to the animation system, which feeds completions back through
// applyCompletion.
func updateMotion(in MotionInput, m *components.MotionData, body *resolv.Object, anim *animations.Player, dt time.Duration) {
	handleMotionInput(in, m, body, anim)

	executeDash(in, m, body, anim, dt)
	executeJump(in, m, body, anim, dt)
	executeFall(in, m, body, anim, dt)
	moveHorizontally(in, m, body, dt)

	body.Update()
}

// handleMotionInput evaluates the transition rules in priority order.
func handleMotionInput(in MotionInput, m *components.MotionData, body *resolv.Object, anim *animations.Player) {
	// A landing plays out before anything else may happen.
	if m.State.Has(cfg.Landing) {
		return
	}

	grounded := isGrounded(m, body)

	if in.Idle() && grounded {
		m.State = cfg.Idle
		play(anim, m.Clips.Idle, animations.NoCompletion)
		return
	}

	// Both pressed: right wins.
	if in.MovingLeft() {
		m.FacingLeft = true
	}
	if in.MovingRight() {
		m.FacingLeft = false
	}

	if isMoving(in) && grounded && !m.State.Has(cfg.Running) {
		m.State = m.State.Without(cfg.Idle).With(cfg.Running)
		play(anim, m.Clips.Run, animations.NoCompletion)
	}

	// Dashing does not block the jump below.
	if grounded && !m.State.Any(cfg.Dashing|cfg.Airborne) && in.Action(cfg.ActionDash) == components.InputPressed {
		m.State = m.State.With(cfg.Dashing)
		m.DashElapsed = 0
		play(anim, m.Clips.Dash, animations.NoCompletion)
	}

	if grounded && in.Action(cfg.ActionJump) == components.InputPressed {
		m.State = m.State.Without(cfg.Grounded).With(cfg.Jumping)
		m.JumpCut = false
		m.JumpElapsed = 0
		m.VelocityY = 0
		play(anim, m.Clips.JumpAscend, animations.NoCompletion)
	}

	// Walked off a ledge.
	if !onGround(m, body) && !m.State.Any(cfg.Airborne) {
		m.State = m.State.Without(cfg.Grounded).With(cfg.Falling)
		m.VelocityY = 0
		play(anim, m.Clips.JumpDescend, animations.NoCompletion)
	}
}

func executeDash(in MotionInput, m *components.MotionData, body *resolv.Object, anim *animations.Player, dt time.Duration) {
	if !m.State.Has(cfg.Dashing) {
		return
	}
	m.DashElapsed += dt

	expired := m.DashElapsed >= m.DashDuration
	released := !in.Action(cfg.ActionDash).Down()
	// An airborne dash stays set until the character is back on the ground.
	if !(expired || released) || !isGrounded(m, body) {
		return
	}

	m.State = m.State.Without(cfg.Dashing)
	m.DashElapsed = 0
	if isMoving(in) {
		m.State = m.State.Without(cfg.Idle).With(cfg.Running)
		play(anim, m.Clips.Run, animations.NoCompletion)
		return
	}
	m.State = m.State.Without(cfg.Running).With(cfg.Idle)
	play(anim, m.Clips.Idle, animations.NoCompletion)
}

func executeJump(in MotionInput, m *components.MotionData, body *resolv.Object, anim *animations.Player, dt time.Duration) {
	if !m.State.Has(cfg.Jumping) {
		return
	}
	m.JumpElapsed += dt

	released := in.Action(cfg.ActionJump) == components.InputReleased
	if released && !m.JumpCut {
		m.JumpCut = true
	}

	if m.JumpCut {
		m.VelocityY = gamemath.JumpCutVelocity(m.VelocityY, m.Config.GravityDecay)
	} else {
		m.VelocityY = gamemath.JumpAscentVelocity(m.Config.JumpVelocity, m.JumpElapsed, m.Config.JumpAscent)
	}
	body.Y -= m.VelocityY

	if m.JumpElapsed < m.Config.JumpAscent && !released {
		return
	}
	m.State = m.State.Without(cfg.Jumping).With(cfg.Falling)
	m.JumpElapsed = 0
	m.JumpCut = false
	m.VelocityY = 0
	play(anim, m.Clips.JumpDescend, animations.NoCompletion)
}

func executeFall(in MotionInput, m *components.MotionData, body *resolv.Object, anim *animations.Player, dt time.Duration) {
	if !m.State.Has(cfg.Falling) {
		return
	}
	m.VelocityY = gamemath.FallVelocity(m.VelocityY, m.Config.Gravity, m.Config.MaxFallSpeed, dt)
	body.Y += m.VelocityY

	if !onGround(m, body) {
		return
	}

	body.Y = m.GroundLevel - body.H
	m.VelocityY = 0
	m.DashElapsed = 0
	// Landing replaces every flag, including ones unrelated to motion.
	m.State = cfg.StateNone
	if isMoving(in) {
		m.State = cfg.Running | cfg.Landing
		play(anim, m.Clips.LandRun, completeLandRun)
		return
	}
	m.State = cfg.Idle | cfg.Landing
	play(anim, m.Clips.LandIdle, completeLandIdle)
}

func moveHorizontally(in MotionInput, m *components.MotionData, body *resolv.Object, dt time.Duration) {
	speed := m.Config.RunSpeed
	if m.State.Has(cfg.Dashing) {
		speed = m.Config.DashSpeed
	}

	direction := inputDirection(in)
	if direction == 0 {
		// Dashing in place still slides forward.
		if !m.State.Has(cfg.Dashing) || !isGrounded(m, body) {
			return
		}
		direction = m.Direction()
	}

	body.X += gamemath.HorizontalDisplacement(direction, speed, dt)
	if m.MaxX > 0 {
		body.X = clamp(body.X, 0, m.MaxX-body.W)
	}
}

// applyCompletion performs the transition a finished clip asked for. It
// plays at most one new clip and never advances the animation itself.
func applyCompletion(c animations.Completion, m *components.MotionData, anim *animations.Player) {
	switch c {
	case completeLandRun:
		m.State = m.State.Without(cfg.Landing|cfg.Idle).With(cfg.Running)
		play(anim, m.Clips.Run, animations.NoCompletion)
	case completeLandIdle:
		m.State = m.State.Without(cfg.Landing|cfg.Running).With(cfg.Idle)
		play(anim, m.Clips.Idle, animations.NoCompletion)
	}
}

func play(anim *animations.Player, clip *animations.Clip, then animations.Completion) {
	if err := anim.Play(clip, then); err != nil {
		panic(fmt.Sprintf("character clip not resolved: %v", err))
	}
}

// groundTolerance absorbs the rounding left by snapping a body onto a
// fractional ground level.
const groundTolerance = 1e-6

func isGrounded(m *components.MotionData, body *resolv.Object) bool {
	return !m.State.Any(cfg.Airborne) && onGround(m, body)
}

func onGround(m *components.MotionData, body *resolv.Object) bool {
	return feet(body) >= m.GroundLevel-groundTolerance
}

func isMoving(in MotionInput) bool {
	return in.MovingLeft() || in.MovingRight()
}

func inputDirection(in MotionInput) float64 {
	direction := 0.0
	if in.MovingLeft() {
		direction = cfg.DirectionLeft
	}
	if in.MovingRight() {
		direction = cfg.DirectionRight
	}
	return direction
}

func feet(body *resolv.Object) float64 {
	return body.Y + body.H
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
