package simconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	sim := Default()
	if err := sim.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if sim.ResolveAttempts != 20 || sim.LatchOffset != 5 || sim.LatchGap() != 10 {
		t.Errorf("unexpected defaults: attempts=%d offset=%d gap=%d", sim.ResolveAttempts, sim.LatchOffset, sim.LatchGap())
	}
	if sim.PlatformingPercentage != 0.35 || sim.MostlyAbove != 0.9 || sim.CeilingEncompass != 0.30 {
		t.Errorf("unexpected platforming thresholds: %+v", sim)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, s Simulation)
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			check: func(t *testing.T, s Simulation) {
				if s.ResolveAttempts != 20 || s.GridCols != 6 {
					t.Errorf("defaults not kept: %+v", s)
				}
			},
		},
		{
			name: "partial overlay",
			yaml: "latch_offset: 3\ngrid_cols: 0\ncollisions_disabled: true\n",
			check: func(t *testing.T, s Simulation) {
				if s.LatchOffset != 3 || s.GridCols != 0 || !s.CollisionsDisabled {
					t.Errorf("overlay not applied: %+v", s)
				}
				if s.GridRows != 1 || s.Gravity != 0.3 {
					t.Errorf("untouched keys changed: %+v", s)
				}
			},
		},
		{
			name: "name list replaced",
			yaml: "disabled_collision_names: [torch, banner]\n",
			check: func(t *testing.T, s Simulation) {
				if !s.CollisionDisabledFor("torch") || s.CollisionDisabledFor("coin") {
					t.Errorf("DisabledCollisionNames = %v", s.DisabledCollisionNames)
				}
			},
		},
		{name: "bad yaml", yaml: "latch_offset: [", wantErr: true},
		{name: "zero attempts", yaml: "resolve_attempts: 0", wantErr: true},
		{name: "percentage above one", yaml: "platforming_percentage: 1.5", wantErr: true},
		{name: "negative grid", yaml: "grid_rows: -1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if s.ResolveAttempts != Default().ResolveAttempts {
					t.Errorf("failed Parse should return defaults, got %+v", s)
				}
				return
			}
			tt.check(t, s)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("latch_offset: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("latch_offset: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("latch_offset: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case sim := <-w.Updates:
		if sim.LatchOffset != 7 {
			t.Errorf("reloaded LatchOffset = %d, want 7", sim.LatchOffset)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload within 3s")
	}
}
