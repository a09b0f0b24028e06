package border

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Sampler exposes the alpha channel of a frame. AlphaAt takes coordinates
// relative to the frame origin and returns a 16-bit alpha like color.RGBA.
type Sampler interface {
	Width() int
	Height() int
	AlphaAt(x, y int) uint32
}

// ImageSampler adapts any image.Image to Sampler.
type ImageSampler struct {
	Image image.Image
}

func (s ImageSampler) Width() int  { return s.Image.Bounds().Dx() }
func (s ImageSampler) Height() int { return s.Image.Bounds().Dy() }

func (s ImageSampler) AlphaAt(x, y int) uint32 {
	min := s.Image.Bounds().Min
	_, _, _, a := s.Image.At(min.X+x, min.Y+y).RGBA()
	return a
}

// Scale resizes img to w x h with nearest-neighbour sampling so silhouettes
// keep hard edges. img is returned as-is when it already has that size.
func Scale(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FromImage scales img to w x h (when both are positive) and extracts its
// border with alpha threshold 0.
func FromImage(img image.Image, w, h int) *SpriteBorder {
	return Extract(ImageSampler{Image: Scale(img, w, h)}, 0)
}

// Extract scans the frame and returns its silhouette. A pixel is opaque when
// its alpha is greater than threshold.
//
// Every row is scanned from both ends for its first opaque pixel, tracking the
// leftmost and rightmost points. Every column is then scanned from both ends,
// tracking the topmost and bottommost points; a column candidate equal to an
// already chosen bound point is not taken as a vertical bound.
func Extract(s Sampler, threshold uint32) *SpriteBorder {
	w, h := s.Width(), s.Height()
	b := newSpriteBorder(2 * (w + h))

	var (
		leftMost, rightMost = math.MaxInt, math.MinInt
		topMost, bottomMost = math.MaxInt, math.MinInt

		left, right, top, bottom             image.Point
		hasLeft, hasRight, hasTop, hasBottom bool
	)
	opaque := func(x, y int) bool {
		return s.AlphaAt(x, y) > threshold
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !opaque(x, y) {
				continue
			}
			p := image.Pt(x, y)
			if x < leftMost {
				leftMost = x
				left, hasLeft = p, true
			}
			b.add(p)
			break
		}
		for x := w - 1; x >= 0; x-- {
			if !opaque(x, y) {
				continue
			}
			p := image.Pt(x, y)
			if x > rightMost {
				rightMost = x
				right, hasRight = p, true
			}
			b.add(p)
			break
		}
	}
	if hasLeft {
		b.setBound(Left, left)
	}
	if hasRight {
		b.setBound(Right, right)
	}

	isBound := func(p image.Point) bool {
		for side := range b.bounds {
			if b.hasBound[side] && b.bounds[side] == p {
				return true
			}
		}
		return false
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !opaque(x, y) {
				continue
			}
			p := image.Pt(x, y)
			if y < topMost && !isBound(p) {
				topMost = y
				top, hasTop = p, true
			}
			b.add(p)
			break
		}
		for y := h - 1; y >= 0; y-- {
			if !opaque(x, y) {
				continue
			}
			p := image.Pt(x, y)
			if y > bottomMost && !isBound(p) {
				bottomMost = y
				bottom, hasBottom = p, true
			}
			b.add(p)
			break
		}
	}
	if hasTop {
		b.setBound(Top, top)
	}
	if hasBottom {
		b.setBound(Bottom, bottom)
	}

	b.sort()
	return b
}
