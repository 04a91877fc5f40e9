package systems

import (
	"time"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateAfterImages samples the dash trail of every character and ages the
// samples already taken.
func UpdateAfterImages(ecs *ecs.ECS) {
	dt := TickDuration()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Motion.Get(e)
		updateAfterImages(
			components.AfterImages.Get(e),
			cfg.AfterImage,
			m.State.Has(cfg.Dashing),
			m.FacingLeft,
			footPosition(components.Object.Get(e).Object),
			components.Animation.Get(e).Player,
			dt,
		)
	})
}

func updateAfterImages(trail *components.AfterImageData, c cfg.AfterImageConfig, dashing, facingLeft bool, at math.Vec2, anim *animations.Player, dt time.Duration) {
	for i := range trail.Samples {
		s := &trail.Samples[i]
		if !s.Alive() {
			continue
		}
		s.Remaining -= dt
		if s.Remaining <= 0 {
			*s = components.AfterImage{}
		}
	}

	if !dashing {
		trail.WasDashing = false
		trail.SinceLast = 0
		return
	}

	// The first dashing tick always leaves a sample.
	if !trail.WasDashing {
		trail.SinceLast = c.Interval
	} else {
		trail.SinceLast += dt
	}
	trail.WasDashing = true

	if trail.SinceLast < c.Interval {
		return
	}
	frame, ok := anim.Frame()
	if !ok {
		return
	}
	trail.SinceLast = 0
	trail.Samples[trail.Next] = components.AfterImage{
		Position:   at,
		FacingLeft: facingLeft,
		Frame:      frame,
		Texture:    anim.Clip().Texture,
		Remaining:  c.Lifetime,
	}
	trail.Next = (trail.Next + 1) % components.AfterImageCapacity
}

// afterImageAlpha fades a sample from MaxAlpha to zero over its lifetime.
func afterImageAlpha(c cfg.AfterImageConfig, remaining time.Duration) float32 {
	if c.Lifetime <= 0 || remaining <= 0 {
		return 0
	}
	if remaining > c.Lifetime {
		remaining = c.Lifetime
	}
	age := float32((c.Lifetime - remaining).Seconds())
	life := float32(c.Lifetime.Seconds())
	return ease.OutQuad(age, float32(c.MaxAlpha), -float32(c.MaxAlpha), life)
}

// footPosition is the bottom-centre of a body, where sprites are anchored.
func footPosition(body *resolv.Object) math.Vec2 {
	return math.Vec2{X: body.X + body.W/2, Y: body.Y + body.H}
}
