package systems

import (
	"testing"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/object"
)

func TestCharacterState(t *testing.T) {
	tests := []struct {
		name     string
		airborne bool
		wall     bool
		velX     float64
		velY     float64
		want     cfg.StateID
	}{
		{"standing", false, false, 0, 0, cfg.Idle},
		{"drifting below threshold", false, false, 0.05, 0, cfg.Idle},
		{"running left", false, false, -1.5, 0, cfg.Running},
		{"rising", true, false, 2, -4, cfg.Jump},
		{"falling", true, false, 0, 3, cfg.Fall},
		{"sliding down a wall", true, true, 0, 1, cfg.WallSlide},
		{"rising along a wall", true, true, 0, -2, cfg.Jump},
		{"wall contact on the ground", false, true, 0, 0, cfg.Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := object.New("player", object.KindPlayer, 0, 0, 24, 32)
			o.Char = object.NewCharacter()
			o.SetInMidAir(tt.airborne)
			o.Char.TouchingWall = tt.wall
			o.VelX, o.VelY = tt.velX, tt.velY

			if got := characterState(o); got != tt.want {
				t.Errorf("characterState() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharacterStateWithoutCharacter(t *testing.T) {
	o := object.New("crate", object.KindGeneric, 0, 0, 16, 16)
	o.SetInMidAir(true)
	o.VelY = 1
	if got := characterState(o); got != cfg.Fall {
		t.Errorf("characterState() = %v, want %v", got, cfg.Fall)
	}
}
