package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings is the overlay state stored between runs.
type SavedSettings struct {
	ShowBounds      bool `json:"showBounds"`
	ShowBorders     bool `json:"showBorders"`
	ShowGrid        bool `json:"showGrid"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the settings store. Without it settings are neither
// loaded nor saved.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Window.AppName,
	})
	if err != nil {
		log.Printf("persistence: could not open settings store: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the stored settings, or nil when there are none.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("persistence: could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("persistence: could not parse settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("persistence: could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveDebugSettings stores the current overlay toggles.
func SaveDebugSettings(d *components.DebugData) {
	_ = SaveSettings(settingsFrom(d))
}

func settingsFrom(d *components.DebugData) *SavedSettings {
	return &SavedSettings{
		ShowBounds:      d.ShowBounds,
		ShowBorders:     d.ShowBorders,
		ShowGrid:        d.ShowGrid,
		ResolutionIndex: d.ResolutionIndex,
	}
}

// ApplySavedSettings copies saved toggles into the scene's debug singleton.
// Overlays forced on from the command line stay on.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	d := GetOrCreateDebug(e)
	d.ShowBounds = saved.ShowBounds || cfg.Debug.ShowBounds
	d.ShowBorders = saved.ShowBorders || cfg.Debug.ShowBorders
	d.ShowGrid = saved.ShowGrid || cfg.Debug.ShowGrid
	d.ResolutionIndex = saved.ResolutionIndex
}

// ApplyWindowSettings sizes the window before any scene exists.
func ApplyWindowSettings(saved *SavedSettings) {
	index := cfg.Window.DefaultResolutionIndex
	if saved != nil && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Window.Resolutions) {
		index = saved.ResolutionIndex
	}
	if index < 0 || index >= len(cfg.Window.Resolutions) {
		return
	}
	res := cfg.Window.Resolutions[index]
	ebiten.SetWindowSize(res.Width, res.Height)
}
