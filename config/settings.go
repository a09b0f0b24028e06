package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// WindowConfig contains window sizing configuration
type WindowConfig struct {
	Title                  string
	AppName                string // gdata storage namespace
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Window is the global window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Title:   "tilerun",
		AppName: "tilerun",
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
	}
}
