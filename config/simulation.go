package config

import (
	_ "embed"
	"log"

	"github.com/automoto/tilerun/shared/simconfig"
)

// Simulation is the kernel tuning in effect at startup.
type Simulation = simconfig.Simulation

//go:embed tuning.yaml
var defaultTuning []byte

// Sim is the tuning loaded at startup. Scenes copy it into their world; live
// edits go through the world, not this variable.
var Sim Simulation

func init() {
	sim, err := simconfig.Parse(defaultTuning)
	if err != nil {
		log.Printf("config: embedded tuning: %v", err)
		sim = simconfig.Default()
	}
	Sim = sim
}

// LoadSimulation returns the tuning at path, or the embedded default when
// path is empty. On error the embedded default is returned with the error.
func LoadSimulation(path string) (Simulation, error) {
	if path == "" {
		return simconfig.Parse(defaultTuning)
	}
	sim, err := simconfig.Load(path)
	if err != nil {
		fallback, _ := simconfig.Parse(defaultTuning)
		return fallback, err
	}
	return sim, nil
}

// WatchSimulation hot-reloads the tuning file at path.
func WatchSimulation(path string) (*simconfig.Watcher, error) {
	return simconfig.Watch(path)
}
