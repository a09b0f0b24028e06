package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID names something the player or a debug key can do.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRun
	ActionToggleBounds
	ActionToggleBorders
	ActionToggleGrid
	ActionToggleTuning
	ActionRestart
	ActionCount
)

// Binding maps one action to keys and standard-layout gamepad buttons.
// StickDir is -1 or 1 when the left stick also triggers it.
type Binding struct {
	Action   ActionID
	Keys     []ebiten.Key
	Buttons  []ebiten.StandardGamepadButton
	StickDir int
}

type InputConfig struct {
	Bindings []Binding
	// StickDeadzone is how far the left stick must lean, 0 to 1.
	StickDeadzone float64
}

var Input InputConfig

func init() {
	Input = InputConfig{
		StickDeadzone: 0.25,
		Bindings: []Binding{
			{
				Action:   ActionMoveLeft,
				Keys:     []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				Buttons:  []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
				StickDir: -1,
			},
			{
				Action:   ActionMoveRight,
				Keys:     []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				Buttons:  []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
				StickDir: 1,
			},
			{
				Action:  ActionJump,
				Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			{
				Action:  ActionRun,
				Keys:    []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyZ},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			{Action: ActionToggleBounds, Keys: []ebiten.Key{ebiten.KeyF1}},
			{Action: ActionToggleBorders, Keys: []ebiten.Key{ebiten.KeyF2}},
			{Action: ActionToggleGrid, Keys: []ebiten.Key{ebiten.KeyF3}},
			{
				Action:  ActionToggleTuning,
				Keys:    []ebiten.Key{ebiten.KeyF4, ebiten.KeyTab},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			{
				Action:  ActionRestart,
				Keys:    []ebiten.Key{ebiten.KeyR},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
		},
	}
}
