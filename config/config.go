package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the scene uses.
const Default ecs.LayerID = 0

// CharacterConfig holds the physics constants of one character archetype.
// It is loaded once per session and never changes while the session runs.
type CharacterConfig struct {
	Name  string `yaml:"name"`
	Sheet string `yaml:"sheet"` // sprite-map descriptor under assets/data

	// Horizontal speeds (pixels per second)
	RunSpeed  float64 `yaml:"runSpeed"`
	DashSpeed float64 `yaml:"dashSpeed"`

	// Vertical motion. Velocities are pixels per tick; Gravity is how much
	// fall velocity is gained per second.
	JumpVelocity float64       `yaml:"jumpVelocity"`
	JumpAscent   time.Duration `yaml:"jumpAscent"`
	Gravity      float64       `yaml:"gravity"`
	GravityDecay float64       `yaml:"gravityDecay"` // per tick multiplier after a jump cut
	MaxFallSpeed float64       `yaml:"maxFallSpeed"`

	// Dimensions
	BodyWidth  float64 `yaml:"bodyWidth"`
	BodyHeight float64 `yaml:"bodyHeight"`
}

// AfterImageConfig controls the dash trail.
type AfterImageConfig struct {
	Interval time.Duration // time between samples while dashing
	Lifetime time.Duration // how long a sample stays visible
	MaxAlpha float64       // alpha of a fresh sample
	Tint     color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64 // How fast look-ahead offset changes (0.0-1.0)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay   bool // Show the state overlay from the start
	Archetype string
	Level     string
	AssetsDir string // Load data from disk and reload on change
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var AfterImage AfterImageConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky        = color.RGBA{R: 24, G: 28, B: 48, A: 255}
	GroundTop  = color.RGBA{R: 90, G: 170, B: 90, A: 255}
	GroundFill = color.RGBA{R: 60, G: 44, B: 36, A: 255}
	DashGhost  = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	Overlay    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	AfterImage = AfterImageConfig{
		Interval: 80 * time.Millisecond,
		Lifetime: 200 * time.Millisecond,
		MaxAlpha: 0.6,
		Tint:     DashGhost,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.15,
		LookAheadDistanceX: 48,
		LookAheadSmoothing: 0.05,
	}

	Debug = DebugConfig{
		Archetype: "runner",
		Level:     "meadow",
	}
}
