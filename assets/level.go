package assets

import (
	"fmt"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// Level is the single ground plane a character runs on, plus what stands on it.
type Level struct {
	Name   string
	Width  int
	Height int
	Ground GroundSpawn
	Spawn  math.Vec2
	Props  []PropSpawn
}

// GroundSpawn is the ground plane. Its top edge is the ground level.
type GroundSpawn struct {
	X, Y, Width, Height float64
}

// PropSpawn is an animated decoration anchored at its feet.
type PropSpawn struct {
	Name string
	Type string
	X, Y float64
}

func (l *Loader) LoadLevel(name string) (Level, error) {
	levelPath := fmt.Sprintf("levels/%s.tmx", name)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", name, err)
	}

	level := Level{
		Name:   name,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Spawn:  math.Vec2{X: float64(levelMap.Width*levelMap.TileWidth) / 2},
	}

	foundGround := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				level.Ground = GroundSpawn{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
				foundGround = true
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.Spawn = math.Vec2{X: o.X, Y: o.Y}
			}
		case "Props":
			for _, o := range og.Objects {
				propType := o.Class
				if propType == "" {
					propType = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				level.Props = append(level.Props, PropSpawn{
					Name: o.Name,
					Type: propType,
					X:    o.X,
					Y:    o.Y,
				})
			}
		}
	}

	if !foundGround {
		return Level{}, fmt.Errorf("load level %s: no ground object", name)
	}
	if level.Spawn.Y == 0 {
		level.Spawn.Y = level.Ground.Y
	}
	return level, nil
}

func (l *Loader) MustLoadLevel(name string) Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
