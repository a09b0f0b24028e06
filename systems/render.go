package systems

import (
	"image"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/object"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 64

// DrawObjects renders every kernel object in the world's draw order. Tiles
// are part of the level background and are skipped.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	kernel := GetKernel(ecs)
	if kernel == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y
	view := CameraView(ecs).Inset(-cullPadding)

	for _, o := range kernel.World.Objects() {
		if o.Kind == object.KindTile {
			continue
		}
		bounds := o.Bounds()
		if !bounds.Overlaps(view) {
			continue
		}
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}

		img := objectImage(entry)
		if img == nil {
			continue
		}
		drawObject(screen, img, o, bounds, offX, offY)
	}
}

func objectImage(e *donburi.Entry) *ebiten.Image {
	if e.HasComponent(components.Animation) {
		if img := components.Animation.Get(e).CurrentFrame(); img != nil {
			return img
		}
	}
	if e.HasComponent(components.Sprite) {
		return components.Sprite.Get(e).Image
	}
	return nil
}

// drawObject stretches img over the object's sprite rectangle, mirrored when
// the object faces left.
func drawObject(screen, img *ebiten.Image, o *object.Object, bounds image.Rectangle, offX, offY float64) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	drawOp.GeoM.Scale(float64(bounds.Dx())/float64(iw), float64(bounds.Dy())/float64(ih))

	if o.Kind == object.KindPlayer && o.Dir.Horizontal() == object.Left {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(bounds.Dx()), 0)
	}

	drawOp.GeoM.Translate(float64(bounds.Min.X)+offX, float64(bounds.Min.Y)+offY)
	screen.DrawImage(img, drawOp)
}
