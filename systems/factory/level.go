package factory

import (
	"log"

	"github.com/automoto/dashrunner/archetypes"
	"github.com/automoto/dashrunner/assets"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, its ground plane and its props.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, loader *assets.Loader) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	CreateGround(ecs, level.Ground)
	for _, p := range level.Props {
		CreateProp(ecs, p, loader)
	}
	return entry
}

func CreateGround(ecs *ecs.ECS, g assets.GroundSpawn) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	obj := resolv.NewObject(g.X, g.Y, g.Width, g.Height, tags.ResolvSolid)
	obj.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return ground
}

// CreateProp spawns a looping decoration. Props of an unknown type are
// skipped with a warning.
func CreateProp(ecs *ecs.ECS, p assets.PropSpawn, loader *assets.Loader) *donburi.Entry {
	ref, ok := cfg.PropClips[p.Type]
	if !ok {
		log.Printf("Warning: no clip for prop %q of type %q", p.Name, p.Type)
		return nil
	}
	clip := loader.MustLoadSpritesheet(ref.Sheet).MustClip(ref.Clip)

	w, h := 0.0, 0.0
	if len(clip.Frames) > 0 {
		w = float64(clip.Frames[0].Source.Dx())
		h = float64(clip.Frames[0].Source.Dy())
	}

	prop := archetypes.Prop.Spawn(ecs)
	// Tiled places props by their feet.
	obj := resolv.NewObject(p.X-w/2, p.Y-h, w, h, tags.ResolvProp)
	obj.Data = prop
	components.Object.SetValue(prop, components.ObjectData{Object: obj})
	components.Prop.SetValue(prop, components.PropData{Name: p.Name, Type: p.Type})
	components.Animation.SetValue(prop, components.AnimationData{
		Player: registerAnimation(ecs, prop.Entity(), clip),
	})
	return prop
}
