package assets

import (
	"bytes"
	"embed"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:data all:levels
	embeddedFS embed.FS
)

// Embedded returns the data compiled into the binary.
func Embedded() fs.FS {
	return embeddedFS
}

// Loader reads sheets, archetypes and levels from one file system and caches
// them for the lifetime of a session.
type Loader struct {
	fsys   fs.FS
	images map[string]*ebiten.Image
	sheets map[string]*animations.Spritesheet
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:   fsys,
		images: make(map[string]*ebiten.Image),
		sheets: make(map[string]*animations.Spritesheet),
	}
}

func (l *Loader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.images[path]; ok {
		return img
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.images[path] = img

	return img
}

// LoadSpriteMap reads data/<name>.json without touching its texture.
func (l *Loader) LoadSpriteMap(name string) (*SpriteMap, error) {
	data, err := fs.ReadFile(l.fsys, fmt.Sprintf("data/%s.json", name))
	if err != nil {
		return nil, fmt.Errorf("read sprite map %s: %w", name, err)
	}
	m, err := ParseSpriteMap(data)
	if err != nil {
		return nil, fmt.Errorf("sprite map %s: %w", name, err)
	}
	return m, nil
}

// MustLoadSpritesheet loads a descriptor and its texture. Sheets are shared
// by every entity that plays clips from them.
func (l *Loader) MustLoadSpritesheet(name string) *animations.Spritesheet {
	if s, ok := l.sheets[name]; ok {
		return s
	}

	m, err := l.LoadSpriteMap(name)
	if err != nil {
		panic(err)
	}
	texture := l.MustLoadImage(path.Join("data", m.Image))
	sheet, err := BuildSpritesheet(m, texture)
	if err != nil {
		panic(fmt.Sprintf("Failed to build spritesheet %s: %v", name, err))
	}

	l.sheets[name] = sheet
	return sheet
}

// LoadArchetype reads data/archetypes/<name>.yaml.
func (l *Loader) LoadArchetype(name string) (config.CharacterConfig, error) {
	data, err := fs.ReadFile(l.fsys, fmt.Sprintf("data/archetypes/%s.yaml", name))
	if err != nil {
		return config.CharacterConfig{}, fmt.Errorf("read archetype %s: %w", name, err)
	}
	c, err := config.ParseCharacter(data)
	if err != nil {
		return config.CharacterConfig{}, fmt.Errorf("archetype %s: %w", name, err)
	}
	return c, nil
}

func (l *Loader) MustLoadArchetype(name string) config.CharacterConfig {
	c, err := l.LoadArchetype(name)
	if err != nil {
		panic(err)
	}
	return c
}
