package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Score     int
	Collected int
	SpawnX    int
	SpawnY    int
}

var Player = donburi.NewComponentType[PlayerData]()
