// Package simconfig holds the tunables of the collision and platforming
// kernel. Like the rest of shared/, it must not import ebiten so the kernel
// can be exercised headless.
package simconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulation is injected into every kernel object. A zero value is not
// usable; start from Default.
type Simulation struct {
	// CollisionsDisabled turns every narrow-phase test into a miss.
	CollisionsDisabled bool `yaml:"collisions_disabled"`

	// ResolveAttempts bounds the nudge search when separating two objects.
	ResolveAttempts int `yaml:"resolve_attempts"`

	// Platforming
	LatchOffset            int     `yaml:"latch_offset"`             // gap kept between a latched object and its platform
	PlatformingPercentage  float64 `yaml:"platforming_percentage"`   // share of the object's width that must overlap the platform
	MostlyAbove            float64 `yaml:"mostly_above"`             // share of the object's height that must be above the platform top
	LatchGapMultiplier     int     `yaml:"latch_gap_multiplier"`     // max landing gap, in latch offsets
	CeilingEncompass       float64 `yaml:"ceiling_encompass"`        // overlap that makes a falling hit a ceiling bump
	SimilarHeightTolerance int     `yaml:"similar_height_tolerance"` // tiles this close to the platform's Y count as the same surface

	// Broad phase. Either set to 0 disables the grid.
	GridCols int `yaml:"grid_cols"`
	GridRows int `yaml:"grid_rows"`

	// Objects outside the camera view only update every Nth tick.
	OffscreenUpdateInterval int `yaml:"offscreen_update_interval"`

	// Borders
	AlphaThreshold         uint32   `yaml:"alpha_threshold"`
	DisabledCollisionNames []string `yaml:"disabled_collision_names"`

	// Forces
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	WallStickFrames  int     `yaml:"wall_stick_frames"`
}

// Default returns the stock tuning.
func Default() Simulation {
	return Simulation{
		ResolveAttempts:         20,
		LatchOffset:             5,
		PlatformingPercentage:   0.35,
		MostlyAbove:             0.9,
		LatchGapMultiplier:      2,
		CeilingEncompass:        0.30,
		SimilarHeightTolerance:  10,
		GridCols:                6,
		GridRows:                1,
		OffscreenUpdateInterval: 3,
		DisabledCollisionNames: []string{
			"coin", "spike", "pillar", "chain", "web", "skull",
		},
		Gravity:          0.3,
		TerminalVelocity: 10,
		WallStickFrames:  6,
	}
}

// Parse overlays YAML onto the defaults. Keys that are absent keep their
// default value.
func Parse(data []byte) (Simulation, error) {
	sim := Default()
	if err := yaml.Unmarshal(data, &sim); err != nil {
		return Default(), fmt.Errorf("simconfig: unmarshal: %w", err)
	}
	if err := sim.Validate(); err != nil {
		return Default(), err
	}
	return sim, nil
}

// Load reads a YAML tuning file from disk and overlays it onto the defaults.
func Load(path string) (Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("simconfig: load %s: %w", path, err)
	}
	sim, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("simconfig: %s: %w", path, err)
	}
	return sim, nil
}

// Validate rejects values the kernel cannot run with.
func (s Simulation) Validate() error {
	switch {
	case s.ResolveAttempts < 1:
		return fmt.Errorf("simconfig: resolve_attempts must be at least 1, got %d", s.ResolveAttempts)
	case s.LatchOffset < 0:
		return fmt.Errorf("simconfig: latch_offset must not be negative, got %d", s.LatchOffset)
	case s.PlatformingPercentage <= 0 || s.PlatformingPercentage > 1:
		return fmt.Errorf("simconfig: platforming_percentage must be in (0,1], got %v", s.PlatformingPercentage)
	case s.MostlyAbove < 0 || s.MostlyAbove > 1:
		return fmt.Errorf("simconfig: mostly_above must be in [0,1], got %v", s.MostlyAbove)
	case s.GridCols < 0 || s.GridRows < 0:
		return fmt.Errorf("simconfig: grid must not be negative, got %dx%d", s.GridCols, s.GridRows)
	case s.Gravity < 0:
		return fmt.Errorf("simconfig: gravity must not be negative, got %v", s.Gravity)
	case s.OffscreenUpdateInterval < 1:
		return fmt.Errorf("simconfig: offscreen_update_interval must be at least 1, got %d", s.OffscreenUpdateInterval)
	}
	return nil
}

// LatchGap is the largest landing gap, in pixels, that still latches.
func (s Simulation) LatchGap() int {
	return s.LatchGapMultiplier * s.LatchOffset
}

// CollisionDisabledFor reports whether tiles with this name are decorative.
func (s Simulation) CollisionDisabledFor(name string) bool {
	for _, n := range s.DisabledCollisionNames {
		if n == name {
			return true
		}
	}
	return false
}
