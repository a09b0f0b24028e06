package components

import (
	"github.com/automoto/tilerun/shared/object"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its kernel object.
type ObjectData struct {
	*object.Object
}

var Object = donburi.NewComponentType[ObjectData]()
