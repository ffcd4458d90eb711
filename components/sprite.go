package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData selects a frame from a named sheet. The renderer owns the
// images; Index counts frames left to right, top to bottom.
type SpriteData struct {
	Sheet  string
	Index  int
	Width  float64
	Height float64
}

var Sprite = donburi.NewComponentType[SpriteData]()

// ZSyncData marks a sprite for depth sorting. Offset is the distance from
// the sprite's anchor down to its ground contact.
type ZSyncData struct {
	Offset float64
	Depth  float64
}

var ZSync = donburi.NewComponentType[ZSyncData]()
