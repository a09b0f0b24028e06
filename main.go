package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/automoto/tilerun/scenes"
	"github.com/automoto/tilerun/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(levelPath, tuningPath string) *Game {
	fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, levelPath, tuningPath)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", config.Level.DefaultLevel, "TMX level, on disk or embedded")
	tuningPath := flag.String("tuning", config.Debug.TuningPath, "YAML tuning file, reloaded on change")
	debug := flag.Bool("debug", false, "start with every debug overlay on")
	verbose := flag.Bool("v", config.Debug.Verbose, "log world membership changes")
	flag.Parse()

	if *debug {
		config.Debug.ShowBounds = true
		config.Debug.ShowBorders = true
		config.Debug.ShowGrid = true
	}
	config.Debug.Verbose = *verbose

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	systems.ApplyWindowSettings(saved)

	if err := ebiten.RunGame(NewGame(*levelPath, *tuningPath)); err != nil {
		log.Fatal(err)
	}
}
