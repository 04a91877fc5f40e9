package factory

import (
	"fmt"

	"github.com/automoto/dashrunner/archetypes"
	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAnimations spawns the scene's animation registry.
func CreateAnimations(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Animations.Spawn(ecs)
	components.Animations.SetValue(e, components.AnimationsData{
		Registry: animations.NewRegistry[donburi.Entity](),
	})
	return e
}

// ResolveCharacterClips looks every clip a character needs up by name. A
// sheet missing one of them is a configuration error and panics.
func ResolveCharacterClips(sheet *animations.Spritesheet) components.CharacterClips {
	for _, name := range cfg.RequiredClips {
		sheet.MustClip(name)
	}
	return components.CharacterClips{
		Idle:        sheet.MustClip(cfg.ClipIdle),
		Run:         sheet.MustClip(cfg.ClipRun),
		Dash:        sheet.MustClip(cfg.ClipDash),
		JumpAscend:  sheet.MustClip(cfg.ClipJumpAscend),
		JumpDescend: sheet.MustClip(cfg.ClipJumpDescend),
		LandRun:     sheet.MustClip(cfg.ClipLandRun),
		LandIdle:    sheet.MustClip(cfg.ClipLandIdle),
	}
}

// registerAnimation gives key a player in the scene registry, starting clip.
func registerAnimation(ecs *ecs.ECS, key donburi.Entity, clip *animations.Clip) *animations.Player {
	entry, ok := components.Animations.First(ecs.World)
	if !ok {
		entry = CreateAnimations(ecs)
	}
	registry := components.Animations.Get(entry).Registry
	if err := registry.Register(key, clip); err != nil {
		panic(fmt.Sprintf("register animation: %v", err))
	}
	p, _ := registry.Player(key)
	return p
}
