package border

import (
	"image"
	"image/color"
	"testing"
)

// frame returns a w x h transparent image with the given rectangles filled
// opaque.
func frame(w, h int, fill ...image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for _, r := range fill {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
			}
		}
	}
	return img
}

func TestExtractBoundPoints(t *testing.T) {
	tests := []struct {
		name string
		img  *image.NRGBA
		want image.Rectangle
	}{
		{
			name: "square with margins",
			img:  frame(10, 10, image.Rect(2, 3, 7, 8)),
			want: image.Rect(2, 3, 6, 7),
		},
		{
			name: "diamond",
			img: frame(9, 9,
				image.Rect(4, 1, 5, 8),
				image.Rect(1, 4, 8, 5),
				image.Rect(3, 3, 6, 6),
			),
			want: image.Rect(1, 1, 7, 7),
		},
		{
			name: "two blobs",
			img:  frame(20, 12, image.Rect(1, 2, 4, 5), image.Rect(12, 6, 18, 10)),
			want: image.Rect(1, 2, 17, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromImage(tt.img, 0, 0)
			if !b.VerifyBoundPoints() {
				t.Fatalf("VerifyBoundPoints() = false")
			}

			seen := make(map[image.Point]Side)
			for side := Left; side <= Bottom; side++ {
				p, ok := b.Bound(side)
				if !ok {
					t.Fatalf("Bound(%s) missing", side)
				}
				if !b.Contains(p) {
					t.Errorf("Bound(%s) = %v not in point set", side, p)
				}
				if prev, dup := seen[p]; dup {
					t.Errorf("Bound(%s) = %v duplicates %s", side, p, prev)
				}
				seen[p] = side
			}

			if got := b.Rect(); got != tt.want {
				t.Errorf("Rect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractOutlineOnly(t *testing.T) {
	b := FromImage(frame(10, 10, image.Rect(2, 2, 8, 8)), 0, 0)

	if b.Contains(image.Pt(4, 4)) {
		t.Errorf("interior pixel (4,4) should not be part of the border")
	}
	for _, p := range []image.Point{{2, 2}, {7, 2}, {2, 7}, {7, 7}, {4, 2}, {2, 5}} {
		if !b.Contains(p) {
			t.Errorf("edge pixel %v missing from border", p)
		}
	}
}

func TestExtractEmptyFrame(t *testing.T) {
	b := FromImage(frame(8, 8), 0, 0)
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.VerifyBoundPoints() {
		t.Errorf("VerifyBoundPoints() = true for an empty frame")
	}
	if !b.Rect().Empty() {
		t.Errorf("Rect() = %v, want empty", b.Rect())
	}
}

func TestExtractThreshold(t *testing.T) {
	img := frame(6, 6, image.Rect(1, 1, 5, 5))
	img.SetNRGBA(0, 0, color.NRGBA{A: 10})

	if b := FromImage(img, 0, 0); !b.Contains(image.Pt(0, 0)) {
		t.Errorf("faint pixel should count with threshold 0")
	}
	if b := Extract(ImageSampler{Image: img}, 0xffff/2); b.Contains(image.Pt(0, 0)) {
		t.Errorf("faint pixel should be ignored above threshold")
	}
}

func TestInvalidIsPermanent(t *testing.T) {
	b := New(image.Pt(0, 0), image.Pt(4, 0), image.Pt(2, 3))
	if !b.VerifyBoundPoints() {
		t.Fatalf("border built from points should verify")
	}

	broken := newSpriteBorder(2)
	broken.add(image.Pt(1, 1))
	broken.bounds[Left] = image.Pt(9, 9)
	broken.hasBound = [4]bool{true, true, true, true}

	if broken.VerifyBoundPoints() {
		t.Fatalf("VerifyBoundPoints() = true with a bound outside the set")
	}
	broken.add(image.Pt(9, 9))
	if broken.VerifyBoundPoints() {
		t.Errorf("border became valid again after a failed verification")
	}
	if _, ok := broken.Bound(Left); ok {
		t.Errorf("Bound() reported a point on an invalid border")
	}
}

func TestRepositionRoundTrip(t *testing.T) {
	b := FromImage(frame(16, 16, image.Rect(3, 2, 12, 14)), 0, 0)

	for _, d := range []image.Point{{0, 0}, {5, -7}, {-120, 64}, {1, 1}} {
		moved := b.Reposition(d.X, d.Y)
		if moved.Rect() != b.Rect().Add(d) {
			t.Errorf("Reposition(%v).Rect() = %v, want %v", d, moved.Rect(), b.Rect().Add(d))
		}

		back := moved.Reposition(-d.X, -d.Y)
		if back.Len() != b.Len() {
			t.Fatalf("round trip %v: Len() = %d, want %d", d, back.Len(), b.Len())
		}
		for i, p := range b.Points() {
			if back.Points()[i] != p {
				t.Fatalf("round trip %v: point %d = %v, want %v", d, i, back.Points()[i], p)
			}
		}
		for side := Left; side <= Bottom; side++ {
			want, _ := b.Bound(side)
			got, _ := back.Bound(side)
			if got != want {
				t.Errorf("round trip %v: Bound(%s) = %v, want %v", d, side, got, want)
			}
		}
	}
}

func TestIntersectsSymmetric(t *testing.T) {
	base := FromImage(frame(10, 10, image.Rect(0, 0, 10, 10)), 0, 0)

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"same place", 0, 0, true},
		{"edge overlap", 9, 0, true},
		{"corner touch", 9, 9, true},
		{"nested offset", 3, 3, true},
		{"apart", 10, 0, false},
		{"far", 40, -40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base.Reposition(tt.dx, tt.dy)
			ab, ba := base.Intersects(other), other.Intersects(base)
			if ab != ba {
				t.Fatalf("Intersects not symmetric: a-b=%v b-a=%v", ab, ba)
			}
			if ab != tt.want {
				t.Errorf("Intersects() = %v, want %v", ab, tt.want)
			}
		})
	}
}

func TestIntersectsRect(t *testing.T) {
	b := New(image.Pt(5, 5), image.Pt(9, 5), image.Pt(7, 9))

	tests := []struct {
		name string
		r    image.Rectangle
		want bool
	}{
		{"covers a point", image.Rect(4, 4, 6, 6), true},
		{"between points", image.Rect(6, 6, 7, 7), false},
		{"empty", image.Rectangle{}, false},
		{"max edge excluded", image.Rect(0, 0, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IntersectsRect(tt.r); got != tt.want {
				t.Errorf("IntersectsRect(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestSortModes(t *testing.T) {
	b := New(image.Pt(2, 0), image.Pt(0, 3), image.Pt(1, 1))

	b.SortBy(ByY)
	want := []image.Point{{2, 0}, {1, 1}, {0, 3}}
	for i, p := range b.Points() {
		if p != want[i] {
			t.Fatalf("ByY point %d = %v, want %v", i, p, want[i])
		}
	}

	b.SortBy(ByX)
	want = []image.Point{{0, 3}, {1, 1}, {2, 0}}
	for i, p := range b.Points() {
		if p != want[i] {
			t.Fatalf("ByX point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestScaleNearestNeighbour(t *testing.T) {
	src := frame(4, 4, image.Rect(1, 1, 3, 3))
	got := Scale(src, 8, 8)
	if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 8 {
		t.Fatalf("Scale bounds = %v", got.Bounds())
	}

	b := FromImage(src, 8, 8)
	if want := image.Rect(2, 2, 5, 5); b.Rect() != want {
		t.Errorf("scaled Rect() = %v, want %v", b.Rect(), want)
	}
}
