package components

import (
	"github.com/automoto/dashrunner/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData points at the entity's player inside the scene registry.
type AnimationData struct {
	Player *animations.Player
}

var Animation = donburi.NewComponentType[AnimationData]()

// AnimationsData is the scene-wide registry, keyed by entity.
type AnimationsData struct {
	Registry *animations.Registry[donburi.Entity]
}

var Animations = donburi.NewComponentType[AnimationsData]()
