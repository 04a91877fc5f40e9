package config

import "strings"

// PlayerState is a set of character state flags. Several flags can be set at
// once (a dash taken into a jump is Dashing|Jumping).
type PlayerState uint16

const StateNone PlayerState = 0

const (
	Idle PlayerState = 1 << iota
	Running
	Dashing
	Jumping
	Falling
	Landing
	TakingDamage
	Climbing
	WallSliding
	EnteringDoor
	Shooting
	Slashing
)

// Grounded flags are cleared whenever the character leaves the ground.
const Grounded = Idle | Running

// Airborne flags.
const Airborne = Jumping | Falling

var stateNames = []struct {
	flag PlayerState
	name string
}{
	{Idle, "Idle"},
	{Running, "Running"},
	{Dashing, "Dashing"},
	{Jumping, "Jumping"},
	{Falling, "Falling"},
	{Landing, "Landing"},
	{TakingDamage, "TakingDamage"},
	{Climbing, "Climbing"},
	{WallSliding, "WallSliding"},
	{EnteringDoor, "EnteringDoor"},
	{Shooting, "Shooting"},
	{Slashing, "Slashing"},
}

// Has reports whether every flag in f is set.
func (s PlayerState) Has(f PlayerState) bool { return s&f == f }

// Any reports whether at least one flag in f is set.
func (s PlayerState) Any(f PlayerState) bool { return s&f != 0 }

func (s PlayerState) With(f PlayerState) PlayerState { return s | f }

func (s PlayerState) Without(f PlayerState) PlayerState { return s &^ f }

func (s PlayerState) String() string {
	if s == StateNone {
		return "None"
	}
	var parts []string
	for _, n := range stateNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
