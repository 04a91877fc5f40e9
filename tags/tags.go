package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ground = donburi.NewTag().SetName("Ground")
	Prop   = donburi.NewTag().SetName("Prop")
)

// Resolv tags
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvProp   = "prop"
)
