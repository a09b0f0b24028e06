package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/tilerun/shared/simconfig"
)

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	sim, err := LoadSimulation("")
	if err != nil {
		t.Fatalf("LoadSimulation(\"\") error: %v", err)
	}
	def := simconfig.Default()
	if sim.LatchOffset != def.LatchOffset || sim.ResolveAttempts != def.ResolveAttempts ||
		sim.GridCols != def.GridCols || sim.Gravity != def.Gravity {
		t.Errorf("embedded tuning %+v drifted from defaults %+v", sim, def)
	}
	if len(sim.DisabledCollisionNames) != len(def.DisabledCollisionNames) {
		t.Errorf("disabled names = %v, want %v", sim.DisabledCollisionNames, def.DisabledCollisionNames)
	}
}

func TestLoadSimulation(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("latch_offset: 8\ngrid_cols: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("resolve_attempts: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		path        string
		wantErr     bool
		wantLatch   int
		wantGridCol int
	}{
		{"overlay", good, false, 8, 0},
		{"invalid falls back", bad, true, 5, 6},
		{"missing falls back", filepath.Join(dir, "nope.yaml"), true, 5, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := LoadSimulation(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if sim.LatchOffset != tt.wantLatch || sim.GridCols != tt.wantGridCol {
				t.Errorf("got latch %d grid %d, want %d %d", sim.LatchOffset, sim.GridCols, tt.wantLatch, tt.wantGridCol)
			}
		})
	}
}
