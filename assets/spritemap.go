package assets

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyClip    = errors.New("clip has no frames")
	ErrInvalidFrame = errors.New("invalid frame")
)

// SpriteMap is a sprite-map descriptor: one texture and the clips cut from
// it. Descriptors are written as JSON; YAML works too.
type SpriteMap struct {
	Image      string           `yaml:"image"`
	Animations []ClipDescriptor `yaml:"animations"`
}

type ClipDescriptor struct {
	Name   string            `yaml:"name"`
	Frames []FrameDescriptor `yaml:"frames"`
	Loop   bool              `yaml:"loop"`
	Tags   []string          `yaml:"tags"`
}

type FrameDescriptor struct {
	Name     string  `yaml:"name"`
	X        int     `yaml:"x"`
	Y        int     `yaml:"y"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Duration float64 `yaml:"duration"` // milliseconds
}

// ParseSpriteMap decodes and validates a descriptor.
func ParseSpriteMap(data []byte) (*SpriteMap, error) {
	var m SpriteMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode sprite map: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *SpriteMap) Validate() error {
	seen := make(map[string]bool, len(m.Animations))
	for _, c := range m.Animations {
		if c.Name == "" {
			return errors.New("sprite map: clip without a name")
		}
		if seen[c.Name] {
			return fmt.Errorf("sprite map: clip %q: %w", c.Name, animations.ErrDuplicateClip)
		}
		seen[c.Name] = true
		if len(c.Frames) == 0 {
			return fmt.Errorf("sprite map: clip %q: %w", c.Name, ErrEmptyClip)
		}
		for i, f := range c.Frames {
			if f.Width <= 0 || f.Height <= 0 || f.X < 0 || f.Y < 0 {
				return fmt.Errorf("sprite map: clip %q frame %d: %w: bad rectangle", c.Name, i, ErrInvalidFrame)
			}
			if f.Duration < 0 {
				return fmt.Errorf("sprite map: clip %q frame %d: %w: negative duration", c.Name, i, ErrInvalidFrame)
			}
		}
	}
	return nil
}

// BuildSpritesheet translates a validated descriptor into clips on texture.
func BuildSpritesheet(m *SpriteMap, texture *ebiten.Image) (*animations.Spritesheet, error) {
	clips := make([]*animations.Clip, 0, len(m.Animations))
	for _, c := range m.Animations {
		clip := &animations.Clip{
			Name:   c.Name,
			Loop:   c.Loop,
			Tags:   animations.NewTagSet(c.Tags...),
			Frames: make([]animations.Frame, len(c.Frames)),
		}
		for i, f := range c.Frames {
			clip.Frames[i] = animations.Frame{
				Source:   image.Rect(f.X, f.Y, f.X+f.Width, f.Y+f.Height),
				Duration: time.Duration(f.Duration * float64(time.Millisecond)),
			}
		}
		clips = append(clips, clip)
	}
	return animations.NewSpritesheet(texture, clips...)
}
