package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	Value     int
	Collected bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
