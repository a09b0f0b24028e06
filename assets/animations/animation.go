package animations

import (
	"image"

	"github.com/automoto/tilerun/shared/border"
)

// Animation steps through a strip of frames and serves the silhouette of
// the current one to the collision kernel.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping

	// borders is indexed by frame number. Baked borders are already in
	// level coordinates and are never translated.
	borders []*border.SpriteBorder
	baked   bool
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to frame i, clamped to [First, Last].
func (a *Animation) SetFrame(i int) {
	a.frame = min(max(i, a.First), a.Last)
	a.frameCounter = a.SpeedInTps
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// SetBorders attaches one border per frame, indexed by frame number.
func (a *Animation) SetBorders(borders []*border.SpriteBorder) {
	a.borders = borders
	a.baked = false
}

// Bake fixes the borders at level position (x, y). Used for scenery that
// never moves.
func (a *Animation) Bake(x, y int) {
	baked := make([]*border.SpriteBorder, len(a.borders))
	for i, b := range a.borders {
		if b != nil {
			baked[i] = b.Reposition(x, y)
		}
	}
	a.borders = baked
	a.baked = true
}

// Baked reports whether the borders are in level coordinates.
func (a *Animation) Baked() bool { return a.baked }

// Border returns the silhouette of the current frame, translated by (x, y)
// when reposition is set and the borders are not baked.
func (a *Animation) Border(x, y int, reposition bool) *border.SpriteBorder {
	return a.borderOf(a.frame, x, y, reposition)
}

// BorderAt is Border for frame i, clamped to [First, Last]. The current
// frame and its timing are left alone.
func (a *Animation) BorderAt(i, x, y int, reposition bool) *border.SpriteBorder {
	return a.borderOf(min(max(i, a.First), a.Last), x, y, reposition)
}

func (a *Animation) borderOf(frame, x, y int, reposition bool) *border.SpriteBorder {
	if frame < 0 || frame >= len(a.borders) {
		return nil
	}
	b := a.borders[frame]
	if b == nil || !reposition || a.baked {
		return b
	}
	return b.Reposition(x, y)
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}

// FrameRect returns the source rectangle of frame i in a horizontal strip.
func FrameRect(i, frameW, frameH int) image.Rectangle {
	return image.Rect(i*frameW, 0, (i+1)*frameW, frameH)
}

// StripBorders extracts a border for every frame of a horizontal strip. Each
// frame is scaled to w x h first when both are positive.
func StripBorders(sheet image.Image, frameW, frameH, w, h int, threshold uint32) []*border.SpriteBorder {
	if frameW <= 0 || frameH <= 0 {
		return nil
	}
	origin := sheet.Bounds().Min
	n := sheet.Bounds().Dx() / frameW
	out := make([]*border.SpriteBorder, n)
	for i := range out {
		r := FrameRect(i, frameW, frameH).Add(origin)
		frame := subImage(sheet, r)
		out[i] = border.Extract(border.ImageSampler{Image: border.Scale(frame, w, h)}, threshold)
	}
	return out
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func subImage(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(subImager); ok {
		return s.SubImage(r)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dst.Set(x, y, img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return dst
}
