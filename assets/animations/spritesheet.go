package animations

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Spritesheet maps clip names to clips that all cut frames out of Texture.
// It is owned by the loader; players only hold pointers into it.
type Spritesheet struct {
	Texture *ebiten.Image
	clips   map[string]*Clip
}

func NewSpritesheet(texture *ebiten.Image, clips ...*Clip) (*Spritesheet, error) {
	s := &Spritesheet{
		Texture: texture,
		clips:   make(map[string]*Clip, len(clips)),
	}
	for _, c := range clips {
		if c == nil {
			return nil, ErrNilClip
		}
		if _, dup := s.clips[c.Name]; dup {
			return nil, fmt.Errorf("clip %q: %w", c.Name, ErrDuplicateClip)
		}
		c.Texture = texture
		s.clips[c.Name] = c
	}
	return s, nil
}

func (s *Spritesheet) Clip(name string) (*Clip, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.clips[name]
	return c, ok
}

// MustClip panics when the sheet lacks the clip. Required clips are part of a
// character's setup, so a missing one is a configuration error.
func (s *Spritesheet) MustClip(name string) *Clip {
	c, ok := s.Clip(name)
	if !ok {
		panic(fmt.Sprintf("animation clip %q not found in spritesheet", name))
	}
	return c
}

// Names returns the clip names in sorted order.
func (s *Spritesheet) Names() []string {
	names := make([]string, 0, len(s.clips))
	for name := range s.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tagged returns every clip carrying tag, sorted by name.
func (s *Spritesheet) Tagged(tag string) []*Clip {
	var out []*Clip
	for _, name := range s.Names() {
		if c := s.clips[name]; c.HasTag(tag) {
			out = append(out, c)
		}
	}
	return out
}
