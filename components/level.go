package components

import (
	"github.com/automoto/tilerun/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Path         string
}

var Level = donburi.NewComponentType[LevelData]()
