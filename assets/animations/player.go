package animations

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/features/math"
)

// Completion names the follow-up a caller wants once a non-looping clip has
// played through. The player hands it back from Update instead of calling
// into its owner, so transitions stay in the owner's tick.
type Completion string

// NoCompletion means nothing is pending.
const NoCompletion Completion = ""

// Player tracks playback of a single clip for one entity.
type Player struct {
	clip     *Clip
	index    int
	elapsed  time.Duration
	finished bool
	pending  Completion
}

func NewPlayer() *Player {
	return &Player{}
}

// Play starts clip. Replaying the clip that is already running does not
// restart it; only the pending completion is replaced. A clip that already
// played through restarts from its first frame.
func (p *Player) Play(clip *Clip, then Completion) error {
	if clip == nil {
		return ErrNilClip
	}
	if p.clip == clip && !p.finished && p.inBounds() {
		p.pending = then
		return nil
	}
	p.clip = clip
	p.index = 0
	p.elapsed = 0
	p.finished = false
	p.pending = then
	return nil
}

// Update advances playback by dt and returns the completion that fired this
// call, if any. A completion is returned at most once per Play.
func (p *Player) Update(dt time.Duration) Completion {
	if p.clip == nil || !p.inBounds() {
		return NoCompletion
	}

	p.elapsed += dt
	if p.elapsed < p.clip.Frames[p.index].Duration {
		return NoCompletion
	}
	p.elapsed = 0
	p.index++

	if p.index <= p.clip.LastIndex() {
		return NoCompletion
	}
	if p.clip.Loop {
		p.index = 0
		return NoCompletion
	}

	p.index = p.clip.LastIndex()
	if p.finished {
		return NoCompletion
	}
	p.finished = true
	fired := p.pending
	p.pending = NoCompletion
	return fired
}

// Draw describes the current frame placed at the given world position.
// It reports false when there is nothing to draw.
func (p *Player) Draw(at math.Vec2, flipX bool, tint color.RGBA) (DrawCommand, bool) {
	frame, ok := p.Frame()
	if !ok {
		return DrawCommand{}, false
	}
	return DrawCommand{
		Texture:  p.clip.Texture,
		Source:   frame.Source,
		Position: at,
		FlipX:    flipX,
		Tint:     tint,
	}, true
}

// HasFinishedPlaying reports whether a non-looping clip has played past its
// last frame.
func (p *Player) HasFinishedPlaying() bool {
	return p.clip != nil && !p.clip.Loop && p.finished
}

// Frame returns the frame currently on screen.
func (p *Player) Frame() (*Frame, bool) {
	if p.clip == nil || !p.inBounds() {
		return nil, false
	}
	return &p.clip.Frames[p.index], true
}

func (p *Player) Clip() *Clip { return p.clip }

func (p *Player) Index() int { return p.index }

func (p *Player) Elapsed() time.Duration { return p.elapsed }

// Pending returns the completion waiting for the current clip to finish.
func (p *Player) Pending() Completion { return p.pending }

func (p *Player) inBounds() bool {
	return p.index >= 0 && p.index < len(p.clip.Frames)
}
