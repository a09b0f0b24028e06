package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 6
	hudLineHeight = 13
)

// DrawHUD renders the score panel in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := hudLines(ecs)
	if len(lines) == 0 {
		return
	}
	fontFace := fonts.HUD.Get()
	bg := cfg.UI.HUDTextBgColor
	fg := cfg.UI.HUDTextColor

	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(cfg.UI.PanelWidth/2), float32(len(lines)*hudLineHeight+hudMargin),
		color.RGBA{bg[0], bg[1], bg[2], bg[3]}, false)

	for i, line := range lines {
		text.Draw(screen, line, fontFace, hudMargin*2, hudMargin+(i+1)*hudLineHeight, color.RGBA{fg[0], fg[1], fg[2], fg[3]})
	}
}

func hudLines(ecs *ecs.ECS) []string {
	var lines []string
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		lines = append(lines,
			fmt.Sprintf("Score %d", player.Score),
			fmt.Sprintf("Coins %d", player.Collected),
		)
	}
	if kernel := GetKernel(ecs); kernel != nil {
		lines = append(lines, fmt.Sprintf("Tick %d", kernel.World.Tick()))
	}
	lines = append(lines, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()))
	return lines
}
