package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/tilerun/shared/simconfig"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// knob is one adjustable simulation value.
type knob struct {
	name   string
	format func(s simconfig.Simulation) string
	step   func(s *simconfig.Simulation, dir int)
}

var knobs = []knob{
	{
		name:   "Gravity",
		format: func(s simconfig.Simulation) string { return fmt.Sprintf("%.2f", s.Gravity) },
		step:   func(s *simconfig.Simulation, dir int) { s.Gravity += 0.05 * float64(dir) },
	},
	{
		name:   "Terminal vel",
		format: func(s simconfig.Simulation) string { return fmt.Sprintf("%.0f", s.TerminalVelocity) },
		step:   func(s *simconfig.Simulation, dir int) { s.TerminalVelocity += float64(dir) },
	},
	{
		name:   "Latch offset",
		format: func(s simconfig.Simulation) string { return fmt.Sprintf("%d", s.LatchOffset) },
		step:   func(s *simconfig.Simulation, dir int) { s.LatchOffset += dir },
	},
	{
		name:   "Platforming %",
		format: func(s simconfig.Simulation) string { return fmt.Sprintf("%.2f", s.PlatformingPercentage) },
		step:   func(s *simconfig.Simulation, dir int) { s.PlatformingPercentage += 0.05 * float64(dir) },
	},
	{
		name:   "Grid cols",
		format: func(s simconfig.Simulation) string { return fmt.Sprintf("%d", s.GridCols) },
		step:   func(s *simconfig.Simulation, dir int) { s.GridCols += dir },
	},
	{
		name:   "Grid rows",
		format: func(s simconfig.Simulation) string { return fmt.Sprintf("%d", s.GridRows) },
		step:   func(s *simconfig.Simulation, dir int) { s.GridRows += dir },
	},
	{
		name:   "Alpha threshold",
		format: func(s simconfig.Simulation) string { return fmt.Sprintf("%d", s.AlphaThreshold) },
		step: func(s *simconfig.Simulation, dir int) {
			v := int(s.AlphaThreshold) + 8*dir
			s.AlphaThreshold = uint32(max(0, min(v, 255)))
		},
	},
	{
		name: "Collisions",
		format: func(s simconfig.Simulation) string {
			if s.CollisionsDisabled {
				return "off"
			}
			return "on"
		},
		step: func(s *simconfig.Simulation, _ int) { s.CollisionsDisabled = !s.CollisionsDisabled },
	},
}

// TuningUI is a side panel that edits the running simulation.
type TuningUI struct {
	UI *ebitenui.UI

	// OnChange receives every accepted edit.
	OnChange func(sim simconfig.Simulation)

	sim         simconfig.Simulation
	values      []*widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTuningUI(sim simconfig.Simulation, width int, onChange func(sim simconfig.Simulation)) *TuningUI {
	ui := &TuningUI{
		OnChange: onChange,
		sim:      sim,
	}
	ui.loadFonts()
	ui.buildUI(width)
	ui.refresh()
	return ui
}

func (ui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 10}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 8}
}

func (ui *TuningUI) buildUI(width int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TUNING", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for i := range knobs {
		panel.AddChild(ui.buildRow(i))
	}

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TuningUI) buildRow(i int) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(knobs[i].name, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 0))),
	))

	row.AddChild(ui.stepButton("-", i, -1))
	value := widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(36, 0))),
	)
	ui.values = append(ui.values, value)
	row.AddChild(value)
	row.AddChild(ui.stepButton("+", i, 1))

	return row
}

func (ui *TuningUI) stepButton(label string, i, dir int) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(18, 16)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Step(i, dir)
		}),
	)
}

// Step nudges knob i. Edits the simulation rejects are dropped and reported
// in the status line.
func (ui *TuningUI) Step(i, dir int) {
	if i < 0 || i >= len(knobs) {
		return
	}
	next := ui.sim
	knobs[i].step(&next, dir)
	if err := next.Validate(); err != nil {
		ui.setStatus(err.Error())
		return
	}
	ui.sim = next
	ui.setStatus("")
	ui.refresh()
	if ui.OnChange != nil {
		ui.OnChange(next)
	}
}

// SetSimulation shows sim without reporting a change, e.g. after the tuning
// file was reloaded.
func (ui *TuningUI) SetSimulation(sim simconfig.Simulation) {
	ui.sim = sim
	ui.refresh()
}

func (ui *TuningUI) Simulation() simconfig.Simulation { return ui.sim }

func (ui *TuningUI) refresh() {
	for i, l := range ui.values {
		l.Label = knobs[i].format(ui.sim)
	}
}

func (ui *TuningUI) setStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *TuningUI) Update() {
	ui.UI.Update()
}
