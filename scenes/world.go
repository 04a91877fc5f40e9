package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dashrunner/assets"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/systems"
	factory2 "github.com/automoto/dashrunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Collision grid cell size, matching the level tile size.
const cellSize = 16

// RunScene is one character running on one level.
type RunScene struct {
	ecs    *ecs.ECS
	loader *assets.Loader
	once   sync.Once
}

func NewRunScene(loader *assets.Loader) *RunScene {
	return &RunScene{loader: loader}
}

func (rs *RunScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RunScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunScene) configure() {
	// Everything is loaded up front so a bad archetype or sheet fails here
	// rather than mid-run.
	character := rs.loader.MustLoadArchetype(cfg.Debug.Archetype)
	sheet := rs.loader.MustLoadSpritesheet(character.Sheet)
	level := rs.loader.MustLoadLevel(cfg.Debug.Level)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayer)
	// Animations advance after motion so completions land in the same tick.
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateAfterImages)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawAfterImages)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	rs.ecs = ecs

	factory2.CreateAnimations(rs.ecs)
	factory2.CreateSpace(rs.ecs, level.Width, level.Height, cellSize, cellSize)
	factory2.CreateLevel(rs.ecs, &level, rs.loader)
	factory2.CreatePlayer(rs.ecs, &character, sheet, &level)
	factory2.CreateCamera(rs.ecs, math.Vec2{X: level.Spawn.X, Y: level.Spawn.Y})
}
