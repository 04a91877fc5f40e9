package systems

import (
	"github.com/automoto/dashrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every registered player by one tick and hands
// completions back to the character that asked for them.
func UpdateAnimations(ecs *ecs.ECS) {
	registryEntry, ok := components.Animations.First(ecs.World)
	if !ok {
		return
	}
	registry := components.Animations.Get(registryEntry).Registry

	for _, done := range registry.Update(TickDuration()) {
		e := ecs.World.Entry(done.Key)
		if !e.Valid() || !e.HasComponent(components.Motion) {
			continue
		}
		applyCompletion(done.Completion, components.Motion.Get(e), components.Animation.Get(e).Player)
	}
}
