package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FloatingPlatformData drives a platform along its path. Each sequence yields
// an offset from the origin on one axis.
type FloatingPlatformData struct {
	OriginX, OriginY int
	X, Y             *gween.Sequence
}

var FloatingPlatform = donburi.NewComponentType[FloatingPlatformData]()
