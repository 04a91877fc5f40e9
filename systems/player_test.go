package systems

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/solarlune/resolv"
)

const (
	tick    = 10 * time.Millisecond
	groundY = 320.0
)

func testClip(name string, loop bool, frames int, d time.Duration) *animations.Clip {
	c := &animations.Clip{Name: name, Loop: loop}
	for i := 0; i < frames; i++ {
		c.Frames = append(c.Frames, animations.Frame{
			Source:   image.Rect(i*32, 0, (i+1)*32, 48),
			Duration: d,
		})
	}
	return c
}

func testClips() components.CharacterClips {
	return components.CharacterClips{
		Idle:        testClip(cfg.ClipIdle, true, 4, 150*time.Millisecond),
		Run:         testClip(cfg.ClipRun, true, 6, 90*time.Millisecond),
		Dash:        testClip(cfg.ClipDash, false, 4, 150*time.Millisecond),
		JumpAscend:  testClip(cfg.ClipJumpAscend, true, 2, 100*time.Millisecond),
		JumpDescend: testClip(cfg.ClipJumpDescend, true, 2, 120*time.Millisecond),
		LandRun:     testClip(cfg.ClipLandRun, false, 2, 60*time.Millisecond),
		LandIdle:    testClip(cfg.ClipLandIdle, false, 3, 80*time.Millisecond),
	}
}

// rig drives one character the way the scene does: motion, then the
// animation tick, then any completion.
type rig struct {
	in   components.InputData
	m    components.MotionData
	body *resolv.Object
	anim *animations.Player
}

func newRig(t *testing.T) *rig {
	t.Helper()
	character := cfg.CharacterConfig{
		Name:         "test",
		Sheet:        "test",
		RunSpeed:     100,
		DashSpeed:    300,
		JumpVelocity: 6,
		JumpAscent:   300 * time.Millisecond,
		Gravity:      40,
		GravityDecay: 0.5,
		MaxFallSpeed: 8,
		BodyWidth:    16,
		BodyHeight:   40,
	}
	clips := testClips()
	r := &rig{
		body: resolv.NewObject(100, groundY-40, 16, 40),
		anim: animations.NewPlayer(),
	}
	r.m = components.MotionData{
		State:        cfg.Idle,
		DashDuration: clips.Dash.Duration(),
		GroundLevel:  groundY,
		Config:       &character,
		Clips:        clips,
	}
	if err := r.anim.Play(clips.Idle, animations.NoCompletion); err != nil {
		t.Fatalf("Play: %v", err)
	}
	return r
}

// step runs one tick with exactly the given actions held.
func (r *rig) step(held ...cfg.ActionID) {
	r.in.Advance()
	for _, id := range held {
		r.in.Current[id] = true
	}
	updateMotion(&r.in, &r.m, r.body, r.anim, tick)
	if c := r.anim.Update(tick); c != animations.NoCompletion {
		applyCompletion(c, &r.m, r.anim)
	}
}

func (r *rig) clip() string {
	if c := r.anim.Clip(); c != nil {
		return c.Name
	}
	return ""
}

func (r *rig) lift(feet float64) {
	r.body.Y = feet - r.body.H
}

func TestDashEndsAfterClipDuration(t *testing.T) {
	r := newRig(t)
	startX := r.body.X

	// 600ms of dash clip at 10ms a tick.
	for i := 1; i < 60; i++ {
		r.step(cfg.ActionDash)
		if !r.m.State.Has(cfg.Dashing) {
			t.Fatalf("tick %d: dash ended early after %v", i, r.m.DashElapsed)
		}
		if r.clip() != cfg.ClipDash {
			t.Fatalf("tick %d: clip %q", i, r.clip())
		}
	}
	r.step(cfg.ActionDash)
	if r.m.State.Has(cfg.Dashing) {
		t.Fatal("dash still set at 600ms")
	}
	if !r.m.State.Has(cfg.Idle) || r.clip() != cfg.ClipIdle {
		t.Fatalf("after dash: state %v clip %q", r.m.State, r.clip())
	}

	// Holding on to 650ms does not start another dash.
	for i := 0; i < 5; i++ {
		r.step(cfg.ActionDash)
		if r.m.State.Has(cfg.Dashing) {
			t.Fatal("dash restarted without a new press")
		}
	}

	if r.body.X <= startX {
		t.Errorf("dash in place did not slide forward: x %v", r.body.X)
	}
}

func TestDashReleasedEarlyEndsDash(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 5; i++ {
		r.step(cfg.ActionDash)
	}
	r.step(cfg.ActionMoveRight)
	if r.m.State.Has(cfg.Dashing) {
		t.Fatalf("dash survived release: %v", r.m.State)
	}
	if !r.m.State.Has(cfg.Running) || r.clip() != cfg.ClipRun {
		t.Fatalf("state %v clip %q, want running", r.m.State, r.clip())
	}
}

func TestAirborneDashPersistsUntilLanding(t *testing.T) {
	r := newRig(t)
	r.step(cfg.ActionDash)
	r.step(cfg.ActionDash)
	r.step(cfg.ActionDash, cfg.ActionJump)
	if !r.m.State.Has(cfg.Dashing | cfg.Jumping) {
		t.Fatalf("dash into jump: %v", r.m.State)
	}

	landed := false
	for i := 0; i < 500; i++ {
		r.step()
		if r.m.State.Has(cfg.Landing) {
			landed = true
			break
		}
		if !r.m.State.Has(cfg.Dashing) {
			t.Fatalf("tick %d: airborne dash cleared, state %v", i, r.m.State)
		}
	}
	if !landed {
		t.Fatal("never landed")
	}
	if r.m.State.Has(cfg.Dashing) {
		t.Fatalf("dash survived landing: %v", r.m.State)
	}
}

func TestLanding(t *testing.T) {
	cases := []struct {
		name       string
		held       []cfg.ActionID
		landState  cfg.PlayerState
		landClip   string
		afterState cfg.PlayerState
		afterClip  string
	}{
		{"moving", []cfg.ActionID{cfg.ActionMoveRight}, cfg.Running | cfg.Landing, cfg.ClipLandRun, cfg.Running, cfg.ClipRun},
		{"still", nil, cfg.Idle | cfg.Landing, cfg.ClipLandIdle, cfg.Idle, cfg.ClipIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.lift(groundY - 60)

			for i := 0; i < 500 && !r.m.State.Has(cfg.Landing); i++ {
				r.step(c.held...)
			}
			if r.m.State != c.landState || r.clip() != c.landClip {
				t.Fatalf("on landing: state %v clip %q", r.m.State, r.clip())
			}
			if feet(r.body) != groundY {
				t.Fatalf("feet at %v, want %v", feet(r.body), groundY)
			}

			for i := 0; i < 50 && r.m.State.Has(cfg.Landing); i++ {
				r.step(c.held...)
			}
			if r.m.State != c.afterState || r.clip() != c.afterClip {
				t.Fatalf("after landing: state %v clip %q", r.m.State, r.clip())
			}
		})
	}
}

func TestIdleInputForcesIdle(t *testing.T) {
	r := newRig(t)
	r.m.State = cfg.Running | cfg.Dashing
	r.step()
	if r.m.State != cfg.Idle {
		t.Fatalf("state %v, want Idle", r.m.State)
	}
	if r.clip() != cfg.ClipIdle {
		t.Fatalf("clip %q", r.clip())
	}
}

func TestLandingLocksOutInput(t *testing.T) {
	r := newRig(t)
	r.m.State = cfg.Idle | cfg.Landing
	if err := r.anim.Play(r.m.Clips.LandIdle, completeLandIdle); err != nil {
		t.Fatal(err)
	}

	for _, held := range [][]cfg.ActionID{{cfg.ActionDash}, {cfg.ActionJump}, {cfg.ActionMoveLeft}} {
		r.step(held...)
		if r.m.State != cfg.Idle|cfg.Landing {
			t.Fatalf("held %v: state %v", held, r.m.State)
		}
	}
	if r.m.FacingLeft {
		t.Error("facing changed during landing")
	}
}

func TestRunTransition(t *testing.T) {
	r := newRig(t)
	startX := r.body.X
	r.step(cfg.ActionMoveRight)
	if !r.m.State.Has(cfg.Running) || r.m.State.Has(cfg.Idle) {
		t.Fatalf("state %v", r.m.State)
	}
	if r.clip() != cfg.ClipRun {
		t.Fatalf("clip %q", r.clip())
	}
	if got := r.body.X - startX; math.Abs(got-1) > 1e-9 {
		t.Fatalf("moved %v, want 1", got)
	}
}

func TestFacing(t *testing.T) {
	cases := []struct {
		name     string
		held     []cfg.ActionID
		wantLeft bool
		wantDX   float64
	}{
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, true, -1},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, false, 1},
		{"both", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, false, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.m.FacingLeft = !c.wantLeft
			startX := r.body.X
			r.step(c.held...)
			if r.m.FacingLeft != c.wantLeft {
				t.Fatalf("FacingLeft %v", r.m.FacingLeft)
			}
			if got := r.body.X - startX; math.Abs(got-c.wantDX) > 1e-9 {
				t.Fatalf("moved %v, want %v", got, c.wantDX)
			}
		})
	}
}

func TestJumpAscent(t *testing.T) {
	r := newRig(t)
	startY := r.body.Y

	prev := math.Inf(1)
	ticks := 0
	for r.m.State.Has(cfg.Jumping) || ticks == 0 {
		r.step(cfg.ActionJump)
		ticks++
		if !r.m.State.Has(cfg.Jumping) {
			break
		}
		if r.m.VelocityY > prev {
			t.Fatalf("tick %d: velocity rose from %v to %v", ticks, prev, r.m.VelocityY)
		}
		prev = r.m.VelocityY
	}
	if ticks != 30 {
		t.Fatalf("ascent lasted %d ticks, want 30", ticks)
	}
	if !r.m.State.Has(cfg.Falling) || r.clip() != cfg.ClipJumpDescend {
		t.Fatalf("after ascent: state %v clip %q", r.m.State, r.clip())
	}
	if r.body.Y >= startY {
		t.Fatal("jump did not rise")
	}
}

func TestJumpReleaseStartsFall(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 5; i++ {
		r.step(cfg.ActionJump)
	}
	heldVelocity, heldY := r.m.VelocityY, r.body.Y
	r.step()

	// The release tick still rises by the cut velocity before gravity takes over.
	cut := heldVelocity * r.m.Config.GravityDecay
	if want := heldY - cut + 40*tick.Seconds(); math.Abs(r.body.Y-want) > 1e-9 {
		t.Fatalf("y %v after cut, want %v (cut velocity %v)", r.body.Y, want, cut)
	}
	if r.body.Y >= heldY {
		t.Fatalf("release tick did not rise: y %v, was %v", r.body.Y, heldY)
	}
	if r.m.State.Has(cfg.Jumping) || !r.m.State.Has(cfg.Falling) {
		t.Fatalf("state %v", r.m.State)
	}
	if r.m.JumpCut || r.m.JumpElapsed != 0 {
		t.Fatalf("jump not reset: cut %v elapsed %v", r.m.JumpCut, r.m.JumpElapsed)
	}
	// Falling starts from rest: one tick of gravity.
	if want := 40 * tick.Seconds(); math.Abs(r.m.VelocityY-want) > 1e-9 {
		t.Fatalf("VelocityY %v, want %v", r.m.VelocityY, want)
	}
}

func TestFractionalGroundLandsOnce(t *testing.T) {
	cases := []struct {
		name   string
		ground float64
		height float64
	}{
		{"212.4/33.7", 212.4, 33.7},
		{"251.4/36.2", 251.4, 36.2},
		{"whole", groundY, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.m.GroundLevel = c.ground
			r.body = resolv.NewObject(100, c.ground-c.height-30, 16, c.height)

			landings := 0
			wasLanding := false
			for i := 0; i < 300; i++ {
				r.step()
				landing := r.m.State.Has(cfg.Landing)
				if landing && !wasLanding {
					landings++
				}
				wasLanding = landing
			}
			if landings != 1 {
				t.Fatalf("landed %d times", landings)
			}
			if r.m.State != cfg.Idle || r.clip() != cfg.ClipIdle {
				t.Fatalf("settled in state %v clip %q", r.m.State, r.clip())
			}
		})
	}
}

func TestWalkOffLedge(t *testing.T) {
	r := newRig(t)
	r.m.State = cfg.Running
	r.lift(groundY - 1)
	r.step(cfg.ActionMoveRight)
	if r.m.State.Any(cfg.Grounded) || !r.m.State.Has(cfg.Falling) {
		t.Fatalf("state %v", r.m.State)
	}
	if r.clip() != cfg.ClipJumpDescend {
		t.Fatalf("clip %q", r.clip())
	}
}

func TestFallSpeedIsClamped(t *testing.T) {
	r := newRig(t)
	r.lift(-2000)
	for i := 0; i < 1000 && !r.m.State.Has(cfg.Landing); i++ {
		r.step()
		if r.m.VelocityY > r.m.Config.MaxFallSpeed {
			t.Fatalf("tick %d: fall speed %v over max", i, r.m.VelocityY)
		}
	}
	if !r.m.State.Has(cfg.Landing) {
		t.Fatal("never landed")
	}
	if feet(r.body) != groundY {
		t.Fatalf("feet at %v", feet(r.body))
	}
}

func TestLevelEdgeClamp(t *testing.T) {
	r := newRig(t)
	r.m.MaxX = 200
	r.body.X = 200 - r.body.W - 0.5
	r.step(cfg.ActionMoveRight)
	if r.body.X != 200-r.body.W {
		t.Fatalf("x %v past right edge", r.body.X)
	}
	r.body.X = 0.5
	r.step(cfg.ActionMoveLeft)
	if r.body.X != 0 {
		t.Fatalf("x %v past left edge", r.body.X)
	}
}

func TestApplyCompletionIgnoresUnknown(t *testing.T) {
	r := newRig(t)
	r.m.State = cfg.Idle | cfg.Landing
	applyCompletion("something-else", &r.m, r.anim)
	if r.m.State != cfg.Idle|cfg.Landing || r.clip() != cfg.ClipIdle {
		t.Fatalf("state %v clip %q", r.m.State, r.clip())
	}
}
