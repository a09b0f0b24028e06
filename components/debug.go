package components

import "github.com/yohamta/donburi"

// DebugData stores the overlay toggles. It is persisted between runs.
type DebugData struct {
	ShowBounds  bool
	ShowBorders bool
	ShowGrid    bool
	ShowTuning  bool

	ResolutionIndex int
}

var Debug = donburi.NewComponentType[DebugData]()
