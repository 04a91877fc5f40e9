package animations

import (
	"fmt"
	"time"
)

// Completed reports a completion fired by the player registered under Key.
type Completed[K comparable] struct {
	Key        K
	Completion Completion
}

// Registry owns one Player per registered key. A registry belongs to a single
// scene; there is no process-wide instance.
type Registry[K comparable] struct {
	players map[K]*Player
	order   []K
}

func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{players: make(map[K]*Player)}
}

// Register creates a player for key and starts clip on it.
func (r *Registry[K]) Register(key K, clip *Clip) error {
	if clip == nil {
		return ErrNilClip
	}
	if _, ok := r.players[key]; ok {
		return fmt.Errorf("%v: %w", key, ErrDuplicateKey)
	}
	p := NewPlayer()
	if err := p.Play(clip, NoCompletion); err != nil {
		return err
	}
	r.players[key] = p
	r.order = append(r.order, key)
	return nil
}

// Play forwards to the player for key. Unknown keys are ignored, since
// callers may still refer to entities that were removed.
func (r *Registry[K]) Play(key K, clip *Clip, then Completion) bool {
	p, ok := r.players[key]
	if !ok {
		return false
	}
	return p.Play(clip, then) == nil
}

func (r *Registry[K]) Player(key K) (*Player, bool) {
	p, ok := r.players[key]
	return p, ok
}

// Unregister removes the player for key and reports whether it existed.
func (r *Registry[K]) Unregister(key K) bool {
	if _, ok := r.players[key]; !ok {
		return false
	}
	delete(r.players, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry[K]) Len() int { return len(r.order) }

// Update advances every player in registration order and collects the
// completions that fired.
func (r *Registry[K]) Update(dt time.Duration) []Completed[K] {
	var fired []Completed[K]
	for _, key := range r.order {
		if c := r.players[key].Update(dt); c != NoCompletion {
			fired = append(fired, Completed[K]{Key: key, Completion: c})
		}
	}
	return fired
}

// Draw describes the frame for key, placed according to placements. Keys
// without a player or without a placement are skipped.
func (r *Registry[K]) Draw(key K, placements map[K]Placement) (DrawCommand, bool) {
	p, ok := r.players[key]
	if !ok {
		return DrawCommand{}, false
	}
	at, ok := placements[key]
	if !ok {
		return DrawCommand{}, false
	}
	return p.Draw(at.Position, at.FlipX, at.Tint)
}

// DrawAll describes every drawable player in registration order.
func (r *Registry[K]) DrawAll(placements map[K]Placement) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(r.order))
	for _, key := range r.order {
		if cmd, ok := r.Draw(key, placements); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
