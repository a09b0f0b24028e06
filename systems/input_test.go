package systems

import (
	"testing"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name        string
		now, before bool
		want        components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed this tick", true, false, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released", false, true, components.ActionState{JustReleased: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Held[cfg.ActionJump] = tt.now
			input.LastHeld[cfg.ActionJump] = tt.before
			if got := GetAction(&input, cfg.ActionJump); got != tt.want {
				t.Errorf("GetAction() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBindingsCoverActions(t *testing.T) {
	bound := map[cfg.ActionID]bool{}
	for _, b := range cfg.Input.Bindings {
		if len(b.Keys) == 0 {
			t.Errorf("action %d has no keys", b.Action)
		}
		bound[b.Action] = true
	}
	for id := cfg.ActionMoveLeft; id < cfg.ActionCount; id++ {
		if !bound[id] {
			t.Errorf("action %d is unbound", id)
		}
	}
}
