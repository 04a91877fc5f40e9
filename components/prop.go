package components

import "github.com/yohamta/donburi"

// PropData marks a looping level decoration, anchored at its feet.
type PropData struct {
	Name string
	Type string
}

var Prop = donburi.NewComponentType[PropData]()
