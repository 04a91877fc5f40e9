package animations

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Well-known clip tags. Tags describe qualities of a clip for callers that
// query a sheet; the Player never branches on them.
const (
	TagGrounded      = "grounded"
	TagAirborne      = "airborne"
	TagInterruptible = "interruptible"
)

// Frame is one rectangle of the shared texture and how long it stays on screen.
type Frame struct {
	Source   image.Rectangle
	Duration time.Duration
}

// TagSet is an unordered set of clip tags.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Clip is a named, ordered sequence of frames. Clips are built once at load
// time and are never mutated afterwards. Texture is the owning sheet's
// texture, shared by every clip of that sheet.
type Clip struct {
	Name    string
	Frames  []Frame
	Loop    bool
	Tags    TagSet
	Texture *ebiten.Image
}

// Duration is the sum of all frame durations.
func (c *Clip) Duration() time.Duration {
	if c == nil {
		return 0
	}
	var total time.Duration
	for _, f := range c.Frames {
		total += f.Duration
	}
	return total
}

func (c *Clip) HasTag(tag string) bool {
	return c != nil && c.Tags.Has(tag)
}

// LastIndex returns the index of the final frame, or -1 for an empty clip.
func (c *Clip) LastIndex() int {
	return len(c.Frames) - 1
}
