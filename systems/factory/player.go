package factory

import (
	"github.com/automoto/dashrunner/archetypes"
	"github.com/automoto/dashrunner/assets"
	"github.com/automoto/dashrunner/assets/animations"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a character standing idle at the level's spawn point.
// The sheet must carry every clip in cfg.RequiredClips.
func CreatePlayer(ecs *ecs.ECS, character *cfg.CharacterConfig, sheet *animations.Spritesheet, level *assets.Level) *donburi.Entry {
	clips := ResolveCharacterClips(sheet)

	player := archetypes.Player.Spawn(ecs)

	w, h := character.BodyWidth, character.BodyHeight
	obj := resolv.NewObject(level.Spawn.X-w/2, level.Spawn.Y-h, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Motion.SetValue(player, components.MotionData{
		State:        cfg.Idle,
		DashDuration: clips.Dash.Duration(),
		GroundLevel:  level.Ground.Y,
		MaxX:         float64(level.Width),
		Config:       character,
		Clips:        clips,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Player: registerAnimation(ecs, player.Entity(), clips.Idle),
	})

	return player
}
