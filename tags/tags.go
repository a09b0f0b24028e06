package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Tile             = donburi.NewTag().SetName("Tile")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Collectible      = donburi.NewTag().SetName("Collectible")
)
