package config

// StateID identifies the animation a character is showing.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
	WallSlide
)

// StateToFileName maps a state to its sprite sheet name under images/.
var StateToFileName = map[StateID]string{
	Idle:      "idle",
	Running:   "run",
	Jump:      "jump",
	Fall:      "fall",
	WallSlide: "wallslide",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}
