package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed      int // walking speed, doubled while running
	Accel      float64
	Decel      float64
	AirControl float64

	// Jumping
	JumpImpulse       float64
	WallJumpImpulse   float64
	MaxJumps          int
	CoyoteFrames      int
	JumpBufferFrames  int
	MaxJumpHoldFrames int
	WallSlideSpeed    float64

	// Dimensions
	FrameWidth  int
	FrameHeight int
}

// PlatformConfig contains floating platform configuration
type PlatformConfig struct {
	Travel   float32 // pixels moved per leg when the level gives no path
	Duration float32 // seconds per leg
	Width    int
	Height   int
}

// CollectibleConfig contains pickup configuration
type CollectibleConfig struct {
	Size  int
	Score int
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	// Colors (RGBA)
	HUDTextBgColor [4]uint8
	HUDTextColor   [4]uint8

	// Debug colors
	DebugColors map[string][4]uint8

	// Font sizes
	HUDFontSize   float64
	DebugFontSize float64

	// Tuning panel
	PanelWidth int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadMovingScale    float64 // Scale when player is moving (1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// LevelConfig names the layers and object groups read from Tiled maps
type LevelConfig struct {
	Dir          string
	DefaultLevel string
	Background   color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBounds  bool
	ShowBorders bool
	ShowGrid    bool
	Verbose     bool
	TuningPath  string // watched YAML tuning file, empty for the embedded default
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Player PlayerConfig
var Platform PlatformConfig
var Collectible CollectibleConfig
var UI UIConfig
var Camera CameraConfig
var Level LevelConfig
var Debug DebugConfig

// Draw order: higher Z is drawn first, so the player ends up on top.
const (
	ZPlayer = iota
	ZCollectible
	ZPlatform
	ZTile
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	SkyBlue      = color.RGBA{R: 32, G: 40, B: 64, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		Speed:      2,
		Accel:      0.6,
		Decel:      0.8,
		AirControl: 0.6,

		// Jumping
		JumpImpulse:       -10,
		WallJumpImpulse:   6,
		MaxJumps:          2,
		CoyoteFrames:      6,
		JumpBufferFrames:  6,
		MaxJumpHoldFrames: 12,
		WallSlideSpeed:    2,

		// Dimensions
		FrameWidth:  24,
		FrameHeight: 32,
	}

	Platform = PlatformConfig{
		Travel:   128,
		Duration: 2,
		Width:    64,
		Height:   16,
	}

	Collectible = CollectibleConfig{
		Size:  16,
		Score: 10,
	}

	UI = UIConfig{
		HUDTextBgColor: [4]uint8{0, 0, 0, 160},
		HUDTextColor:   [4]uint8{255, 255, 255, 255},
		DebugColors: map[string][4]uint8{
			"bounds":   {255, 0, 255, 255},
			"border":   {0, 255, 0, 255},
			"platform": {255, 255, 0, 255},
			"grid":     {100, 180, 255, 120},
			"disabled": {120, 120, 120, 255},
		},
		HUDFontSize:   10,
		DebugFontSize: 8,
		PanelWidth:    220,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05,
		LookAheadMovingScale:    1.0,
		LookAheadSpeedThreshold: 0.5,
	}

	Level = LevelConfig{
		Dir:          "levels",
		DefaultLevel: "levels/level1.tmx",
		Background:   SkyBlue,
	}
}
