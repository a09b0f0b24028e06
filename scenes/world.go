package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/simconfig"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/automoto/tilerun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level: the player, its floating platforms and
// collectibles on top of the collision kernel.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	tuningPath   string
	tuning       *ui.TuningUI
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, levelPath, tuningPath string) *WorldScene {
	if levelPath == "" {
		levelPath = cfg.Level.DefaultLevel
	}
	return &WorldScene{sceneChanger: sc, levelPath: levelPath, tuningPath: tuningPath}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreateDebug(ws.ecs).ShowTuning {
		if kernel := systems.GetKernel(ws.ecs); kernel != nil && kernel.Pending == nil {
			ws.tuning.SetSimulation(kernel.World.Simulation())
		}
		ws.tuning.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if systems.GetOrCreateDebug(ws.ecs).ShowTuning {
		ws.tuning.UI.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	assets.PreloadAllAnimations()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebugToggles)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateFloatingPlatforms)
	ecs.AddSystem(systems.UpdateKernel)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawObjects)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	if saved, err := systems.LoadSettings(); err == nil {
		systems.ApplySavedSettings(ws.ecs, saved)
	}

	sim, err := cfg.LoadSimulation(ws.tuningPath)
	if err != nil {
		log.Printf("scenes: tuning: %v", err)
	}

	levelEntry, levelPath, err := factory.CreateLevelOrDefault(ws.ecs, ws.levelPath)
	if err != nil {
		log.Fatalf("scenes: level %s: %v", levelPath, err)
	}
	ws.levelPath = levelPath
	level := components.Level.Get(levelEntry).CurrentLevel

	kernelEntry := factory.CreateKernel(ws.ecs, level.Bounds(), sim, ws.tuningPath)
	kernel := components.Kernel.Get(kernelEntry)

	factory.PopulateLevel(ws.ecs, kernel.World, level)

	spawnX, spawnY := level.Width/2, level.Height/2
	if len(level.Spawns) > 0 {
		spawnX, spawnY = int(level.Spawns[0].X), int(level.Spawns[0].Y)
	} else {
		log.Printf("scenes: %s has no spawns, using the centre", level.Name)
	}
	factory.CreatePlayer(ws.ecs, kernel.World, spawnX, spawnY)

	// Snap camera to the player to prevent panning from (0,0)
	factory.CreateCamera(ws.ecs, float64(spawnX), float64(spawnY))

	ws.tuning = ui.NewTuningUI(kernel.World.Simulation(), cfg.UI.PanelWidth, func(sim simconfig.Simulation) {
		kernel.Pending = &sim
	})
}
