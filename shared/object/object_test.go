package object

import (
	"image"
	"testing"

	"github.com/automoto/tilerun/shared/border"
	"github.com/automoto/tilerun/shared/simconfig"
)

// stillFrames serves one fixed border per frame.
type stillFrames struct {
	borders []*border.SpriteBorder
	frame   int
}

func (s *stillFrames) Frame() int { return s.frame }

func (s *stillFrames) Border(x, y int, reposition bool) *border.SpriteBorder {
	return s.BorderAt(s.frame, x, y, reposition)
}

func (s *stillFrames) BorderAt(i, x, y int, reposition bool) *border.SpriteBorder {
	b := s.borders[i]
	if b == nil || !reposition {
		return b
	}
	return b.Reposition(x, y)
}

func diagonal(n int, anti bool) *border.SpriteBorder {
	pts := make([]image.Point, n)
	for i := range pts {
		if anti {
			pts[i] = image.Pt(i, n-1-i)
		} else {
			pts[i] = image.Pt(i, i)
		}
	}
	return border.New(pts...)
}

func testWorld() *World {
	return NewWorld(image.Rect(0, 0, 1000, 600), simconfig.Default())
}

func floor(name string, x, y, w, h int) *Object {
	return NewInanimate(name, KindTile, x, y, w, h, true)
}

func TestCollidesWith(t *testing.T) {
	tests := []struct {
		name  string
		setup func(a, b *Object)
		want  bool
	}{
		{"bounds overlap but silhouettes miss", func(a, b *Object) {}, false},
		{"rect only uses border rectangle", func(a, b *Object) { b.RectOnly = true }, true},
		{"borders disabled on one side", func(a, b *Object) { b.EnableBorders(false) }, true},
		{"no animation", func(a, b *Object) { b.SetAnimation(nil) }, true},
		{"apart", func(a, b *Object) { b.SetPosition(200, 100) }, false},
		{"invalid border falls back to bounds", func(a, b *Object) {
			b.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{border.New()}})
		}, true},
		{"invalid border on a rect only tile", func(a, b *Object) {
			b.RectOnly = true
			b.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{border.New()}})
		}, true},
		{"invalid border on own side", func(a, b *Object) {
			a.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{border.New()}})
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New("a", KindGeneric, 100, 100, 10, 10)
			a.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{diagonal(10, false)}})
			b := New("b", KindGeneric, 100, 100, 10, 10)
			b.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{diagonal(10, true)}})
			tt.setup(a, b)

			if got := a.CollidesWith(b); got != tt.want {
				t.Errorf("CollidesWith() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionsDisabledGlobally(t *testing.T) {
	sim := simconfig.Default()
	sim.CollisionsDisabled = true
	w := NewWorld(image.Rect(0, 0, 1000, 600), sim)

	a := New("a", KindGeneric, 0, 0, 10, 10)
	b := New("b", KindGeneric, 5, 5, 10, 10)
	w.Add(a)
	w.Add(b)
	if a.CollidesWith(b) {
		t.Error("CollidesWith() = true with collisions disabled")
	}
}

func TestCollisionBounds(t *testing.T) {
	o := New("o", KindGeneric, 40, 60, 10, 10)
	if got, want := o.CollisionBounds(), image.Rect(40, 60, 50, 70); got != want {
		t.Errorf("no animation: got %v, want %v", got, want)
	}

	o.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{border.New(image.Pt(2, 1), image.Pt(7, 8))}})
	if got, want := o.CollisionBounds(), image.Rect(42, 61, 47, 68); got != want {
		t.Errorf("with border: got %v, want %v", got, want)
	}

	o.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{border.New()}})
	if got, want := o.CollisionBounds(), o.Bounds(); got != want {
		t.Errorf("invalid border: got %v, want %v", got, want)
	}

	baked := NewInanimate("tile", KindTile, 40, 60, 10, 10, true)
	baked.SetAnimation(&stillFrames{borders: []*border.SpriteBorder{border.New(image.Pt(40, 60), image.Pt(49, 69))}})
	if got, want := baked.CollisionBounds(), image.Rect(40, 60, 49, 69); got != want {
		t.Errorf("baked border: got %v, want %v", got, want)
	}
}

func TestResolveCollision(t *testing.T) {
	tests := []struct {
		name   string
		mover  *Object
		wall   *Object
		speed  int
		want   bool
		wantXY image.Point
	}{
		{
			name:   "pushed back out of a wall",
			mover:  New("e", KindGeneric, 84, 400, 20, 20),
			wall:   floor("wall", 100, 300, 40, 200),
			speed:  4,
			want:   true,
			wantXY: image.Pt(80, 400),
		},
		{
			name:   "pushed out of the right side",
			mover:  New("e", KindGeneric, 136, 400, 20, 20),
			wall:   floor("wall", 100, 300, 40, 200),
			speed:  4,
			want:   true,
			wantXY: image.Pt(140, 400),
		},
		{
			name:   "pushed up out of a floor",
			mover:  New("e", KindGeneric, 10, 90, 20, 20),
			wall:   floor("floor", 0, 100, 100, 100),
			speed:  5,
			want:   true,
			wantXY: image.Pt(10, 80),
		},
		{
			name:   "gives up past the attempt budget",
			mover:  New("e", KindGeneric, 99, 300, 120, 200),
			wall:   floor("wall", 100, 300, 40, 200),
			speed:  4,
			want:   false,
			wantXY: image.Pt(19, 300),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mover.Speed = tt.speed
			if got := tt.mover.ResolveCollision(tt.wall); got != tt.want {
				t.Errorf("ResolveCollision() = %v, want %v", got, tt.want)
			}
			if got := tt.mover.Position(); got != tt.wantXY {
				t.Errorf("position = %v, want %v", got, tt.wantXY)
			}
		})
	}
}

func TestCollisionDirection(t *testing.T) {
	tests := []struct {
		name  string
		mover image.Rectangle
		want  Direction
	}{
		{"square overlap counts as side", image.Rect(95, 95, 105, 105), Right},
		{"left edge", image.Rect(190, 120, 210, 140), Left},
		{"hits with its top", image.Rect(120, 190, 160, 210), Up},
		{"lands with its bottom", image.Rect(120, 90, 160, 110), Down},
		{"apart", image.Rect(0, 0, 10, 10), None},
	}
	other := floor("block", 100, 100, 100, 100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New("o", KindGeneric, tt.mover.Min.X, tt.mover.Min.Y, tt.mover.Dx(), tt.mover.Dy())
			if got := o.collisionDirection(other); got != tt.want {
				t.Errorf("collisionDirection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncompasses(t *testing.T) {
	platform := floor("p", 0, 100, 100, 20)
	tests := []struct {
		name string
		x    int
		pct  float64
		want bool
	}{
		{"fully over", 40, 0.35, true},
		{"one shared column", 100, 0.35, false},
		{"exactly enough", 94, 0.35, true},
		{"just short", 95, 0.35, false},
		{"clear", 120, 0.01, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New("o", KindGeneric, tt.x, 80, 20, 20)
			if got := platform.Encompasses(o, Horizontal, tt.pct); got != tt.want {
				t.Errorf("Encompasses() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleFalling(t *testing.T) {
	tests := []struct {
		name     string
		o        image.Rectangle
		other    image.Rectangle
		wantPos  image.Point
		wantLand bool
	}{
		// Clipping the side of a wall slides off it.
		{"side of a wall", image.Rect(95, 300, 115, 320), image.Rect(100, 310, 140, 510), image.Pt(80, 300), false},
		// Mostly under a ceiling is pushed back down below it.
		{"ceiling bump", image.Rect(50, 130, 70, 150), image.Rect(0, 100, 200, 140), image.Pt(50, 140), false},
		{"landing", image.Rect(50, 478, 70, 498), image.Rect(0, 500, 200, 540), image.Pt(50, 475), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New("o", KindGeneric, tt.o.Min.X, tt.o.Min.Y, tt.o.Dx(), tt.o.Dy())
			o.SetInMidAir(true)
			other := floor("other", tt.other.Min.X, tt.other.Min.Y, tt.other.Dx(), tt.other.Dy())

			if !o.HandleCollision(other) {
				t.Fatal("HandleCollision() = false")
			}
			if o.Position() != tt.wantPos {
				t.Errorf("position = %v, want %v", o.Position(), tt.wantPos)
			}
			if landed := o.Platform() == other; landed != tt.wantLand {
				t.Errorf("landed = %v, want %v", landed, tt.wantLand)
			}
		})
	}
}

func TestSetPositionWhileLatched(t *testing.T) {
	o := New("o", KindGeneric, 0, 475, 20, 20)
	o.Latch(floor("f", 0, 500, 100, 32))

	o.SetPosition(10, 490)
	if got, want := o.Position(), image.Pt(10, 475); got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
	o.SetPosition(10, 470)
	if o.Y() != 470 {
		t.Errorf("y = %d, want 470", o.Y())
	}
}

func TestClampTo(t *testing.T) {
	area := image.Rect(0, 0, 100, 100)
	tests := []struct {
		name     string
		x, y     int
		wantX, w int
	}{
		{"inside", 10, 10, 10, 10},
		{"past left", -5, 10, 0, 10},
		{"past right", 95, 10, 90, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New("o", KindGeneric, tt.x, tt.y, tt.w, 10)
			o.ClampTo(area)
			if o.X() != tt.wantX {
				t.Errorf("x = %d, want %d", o.X(), tt.wantX)
			}
		})
	}
}

func TestAtSimilarHeight(t *testing.T) {
	a := New("a", KindGeneric, 0, 100, 10, 10)
	if a.AtSimilarHeight(nil, 10) {
		t.Error("nil platform counted as similar height")
	}
	if !a.AtSimilarHeight(New("b", KindGeneric, 0, 90, 10, 10), 10) {
		t.Error("10px apart should be similar at tolerance 10")
	}
	if a.AtSimilarHeight(New("c", KindGeneric, 0, 111, 10, 10), 10) {
		t.Error("11px apart should not be similar at tolerance 10")
	}
}

func TestDirectionComponents(t *testing.T) {
	tests := []struct {
		d    Direction
		v, h Direction
	}{
		{RightUp, Up, Right},
		{LeftDown, Down, Left},
		{Left, None, Left},
		{Down, Down, None},
		{None, None, None},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if tt.d.Vertical() != tt.v || tt.d.Horizontal() != tt.h {
				t.Errorf("components = (%v, %v), want (%v, %v)", tt.d.Vertical(), tt.d.Horizontal(), tt.v, tt.h)
			}
			if got := Compose(tt.v, tt.h); got != tt.d {
				t.Errorf("Compose(%v, %v) = %v, want %v", tt.v, tt.h, got, tt.d)
			}
		})
	}
}
