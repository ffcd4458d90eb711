package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Prop     = donburi.NewTag().SetName("Prop")
	Door     = donburi.NewTag().SetName("Door")
	Villager = donburi.NewTag().SetName("Villager")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvDoor   = "door"
)
