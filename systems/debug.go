package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/automoto/tilerun/shared/object"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the debug overlay singleton.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = archetypes.Debug.Spawn(ecs)
		d := components.Debug.Get(entry)
		d.ShowBounds = cfg.Debug.ShowBounds
		d.ShowBorders = cfg.Debug.ShowBorders
		d.ShowGrid = cfg.Debug.ShowGrid
		d.ResolutionIndex = cfg.Window.DefaultResolutionIndex
	}
	return components.Debug.Get(entry)
}

// UpdateDebugToggles flips overlays on their function keys and stores the
// result.
func UpdateDebugToggles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	d := GetOrCreateDebug(ecs)

	changed := false
	toggle := func(id cfg.ActionID, v *bool) {
		if GetAction(input, id).JustPressed {
			*v = !*v
			changed = true
		}
	}
	toggle(cfg.ActionToggleBounds, &d.ShowBounds)
	toggle(cfg.ActionToggleBorders, &d.ShowBorders)
	toggle(cfg.ActionToggleGrid, &d.ShowGrid)

	// The tuning panel is session-only
	if GetAction(input, cfg.ActionToggleTuning).JustPressed {
		d.ShowTuning = !d.ShowTuning
	}

	if changed {
		SaveDebugSettings(d)
	}
}

func debugColor(name string) color.RGBA {
	c := cfg.UI.DebugColors[name]
	return color.RGBA{c[0], c[1], c[2], c[3]}
}

// DrawDebug draws the enabled overlays: the spatial grid with per-cell
// counts, collision bounds, border points and platform links.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	d := GetOrCreateDebug(ecs)
	if !d.ShowBounds && !d.ShowBorders && !d.ShowGrid {
		return
	}
	kernel := GetKernel(ecs)
	if kernel == nil {
		return
	}

	view := CameraView(ecs)
	off := image.Pt(-view.Min.X, -view.Min.Y)

	if d.ShowGrid {
		drawGrid(screen, kernel.World, view, off)
	}

	for _, o := range kernel.World.Objects() {
		if !o.Bounds().Overlaps(view) {
			continue
		}
		if d.ShowBounds {
			drawBounds(screen, o, off)
		}
		if d.ShowBorders {
			drawBorder(screen, o, off)
		}
	}
}

func drawGrid(screen *ebiten.Image, world *object.World, view image.Rectangle, off image.Point) {
	index := world.Index()
	if !index.Enabled() {
		return
	}
	occupancy := index.Occupancy()
	cols, rows, _, _ := index.Grid()
	gridColor := debugColor("grid")
	face := fonts.Debug.Get()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := index.CellRect(col, row)
			if !cell.Overlaps(view) {
				continue
			}
			r := cell.Add(off)
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, gridColor, false)
			text.Draw(screen, fmt.Sprintf("%d,%d: %d", col, row, occupancy[row][col]), face, r.Min.X+3, r.Min.Y+10, gridColor)
		}
	}
}

func drawBounds(screen *ebiten.Image, o *object.Object, off image.Point) {
	c := debugColor("bounds")
	if o.CollisionDisabled() {
		c = debugColor("disabled")
	}
	r := o.CollisionBounds().Add(off)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)

	if p := o.Platform(); p != nil {
		from := o.CollisionBounds()
		to := p.CollisionBounds()
		vector.StrokeLine(screen,
			float32((from.Min.X+from.Max.X)/2+off.X), float32(from.Max.Y+off.Y),
			float32((to.Min.X+to.Max.X)/2+off.X), float32(to.Min.Y+off.Y),
			1, debugColor("platform"), false)
	}
}

func drawBorder(screen *ebiten.Image, o *object.Object, off image.Point) {
	b := o.Border(true)
	if b == nil {
		return
	}
	c := debugColor("border")
	for _, p := range b.Points() {
		vector.FillRect(screen, float32(p.X+off.X), float32(p.Y+off.Y), 1, 1, c, false)
	}
}
