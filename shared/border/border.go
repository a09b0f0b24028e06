// Package border extracts pixel silhouettes from sprite frames and answers
// silhouette intersection queries. It has no dependency on ebitengine, so the
// same borders can be built from any image.Image.
package border

import (
	"image"
	"sort"
)

// Side indexes the four bound points of a SpriteBorder.
type Side int

const (
	Left Side = iota
	Top
	Right
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// SortMode selects the ordering key used by Points.
type SortMode int

const (
	ByX SortMode = iota // (x, y)
	ByY                 // (y, x)
)

func (m SortMode) less(p, q image.Point) bool {
	if m == ByY {
		if p.Y != q.Y {
			return p.Y < q.Y
		}
		return p.X < q.X
	}
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

type verification int

const (
	unverified verification = iota
	verified
	invalid
)

// SpriteBorder is the ordered, deduplicated silhouette of one sprite frame
// plus its four extreme bound points.
//
// A border whose bound points are not all members of its point set is
// permanently invalid; callers fall back to a plain bounding rectangle.
type SpriteBorder struct {
	points []image.Point
	set    map[image.Point]struct{}
	mode   SortMode

	bounds   [4]image.Point
	hasBound [4]bool
	state    verification
}

func newSpriteBorder(capacity int) *SpriteBorder {
	return &SpriteBorder{
		points: make([]image.Point, 0, capacity),
		set:    make(map[image.Point]struct{}, capacity),
	}
}

// New builds a border from an explicit point list. Bound points are taken as
// the first extreme point met in each direction, the same rule Extract uses
// for row scans.
func New(points ...image.Point) *SpriteBorder {
	b := newSpriteBorder(len(points))
	for _, p := range points {
		b.add(p)
	}
	b.sort()
	if len(b.points) == 0 {
		return b
	}

	left, right, top, bottom := b.points[0], b.points[0], b.points[0], b.points[0]
	for _, p := range b.points[1:] {
		if p.X < left.X {
			left = p
		}
		if p.X > right.X {
			right = p
		}
		if p.Y < top.Y {
			top = p
		}
		if p.Y > bottom.Y {
			bottom = p
		}
	}
	b.setBound(Left, left)
	b.setBound(Right, right)
	b.setBound(Top, top)
	b.setBound(Bottom, bottom)
	return b
}

func (b *SpriteBorder) add(p image.Point) {
	if _, ok := b.set[p]; ok {
		return
	}
	b.set[p] = struct{}{}
	b.points = append(b.points, p)
}

func (b *SpriteBorder) setBound(side Side, p image.Point) {
	b.bounds[side] = p
	b.hasBound[side] = true
	b.add(p)
}

func (b *SpriteBorder) sort() {
	mode := b.mode
	sort.Slice(b.points, func(i, j int) bool {
		return mode.less(b.points[i], b.points[j])
	})
}

// Len returns the number of distinct points in the border.
func (b *SpriteBorder) Len() int {
	return len(b.points)
}

// Points returns the border points in the current sort order. The slice is
// shared; callers must not modify it.
func (b *SpriteBorder) Points() []image.Point {
	return b.points
}

// SortBy reorders the point listing. Membership and bound points are not
// affected.
func (b *SpriteBorder) SortBy(mode SortMode) {
	if b.mode == mode {
		return
	}
	b.mode = mode
	b.sort()
}

// Contains reports whether p is one of the border points.
func (b *SpriteBorder) Contains(p image.Point) bool {
	_, ok := b.set[p]
	return ok
}

// Bound returns the bound point for side. ok is false when the scan never
// found one or the border has been invalidated.
func (b *SpriteBorder) Bound(side Side) (image.Point, bool) {
	if b.state == invalid || !b.hasBound[side] {
		return image.Point{}, false
	}
	return b.bounds[side], true
}

// VerifyBoundPoints reports whether all four bound points belong to the
// point set. A failed check is remembered and later calls return false
// without rechecking.
func (b *SpriteBorder) VerifyBoundPoints() bool {
	switch b.state {
	case verified:
		return true
	case invalid:
		return false
	}

	for side := Left; side <= Bottom; side++ {
		if !b.hasBound[side] || !b.Contains(b.bounds[side]) {
			b.state = invalid
			return false
		}
	}
	b.state = verified
	return true
}

// Valid is VerifyBoundPoints without the side effect of caching a result.
func (b *SpriteBorder) Valid() bool {
	if b.state != unverified {
		return b.state == verified
	}
	for side := Left; side <= Bottom; side++ {
		if !b.hasBound[side] || !b.Contains(b.bounds[side]) {
			return false
		}
	}
	return true
}

// Rect returns the rectangle spanned by the bound points: origin at
// (left.X, top.Y), size (right.X-left.X, bottom.Y-top.Y). It is empty for an
// invalid border.
func (b *SpriteBorder) Rect() image.Rectangle {
	if !b.Valid() {
		return image.Rectangle{}
	}
	return image.Rect(b.bounds[Left].X, b.bounds[Top].Y, b.bounds[Right].X, b.bounds[Bottom].Y)
}

// Clone returns a deep copy, bound points and verification state included.
func (b *SpriteBorder) Clone() *SpriteBorder {
	return b.Reposition(0, 0)
}

// Reposition returns a copy translated by (dx, dy). The receiver is not
// modified and no pixels are rescanned.
func (b *SpriteBorder) Reposition(dx, dy int) *SpriteBorder {
	d := image.Pt(dx, dy)
	c := &SpriteBorder{
		points:   make([]image.Point, len(b.points)),
		set:      make(map[image.Point]struct{}, len(b.points)),
		mode:     b.mode,
		hasBound: b.hasBound,
		state:    b.state,
	}
	for i, p := range b.points {
		q := p.Add(d)
		c.points[i] = q
		c.set[q] = struct{}{}
	}
	for side := range b.bounds {
		if b.hasBound[side] {
			c.bounds[side] = b.bounds[side].Add(d)
		}
	}
	return c
}

// Intersects reports whether the two borders share at least one point. Both
// borders must already be positioned in the same coordinate space.
func (b *SpriteBorder) Intersects(other *SpriteBorder) bool {
	if other == nil {
		return false
	}
	small, large := b, other
	if len(small.points) > len(large.points) {
		small, large = large, small
	}
	for _, p := range small.points {
		if large.Contains(p) {
			return true
		}
	}
	return false
}

// IntersectsRect reports whether any border point lies inside r.
func (b *SpriteBorder) IntersectsRect(r image.Rectangle) bool {
	if r.Empty() {
		return false
	}
	for _, p := range b.points {
		if p.In(r) {
			return true
		}
	}
	return false
}

// IntersectsBorderRect tests this border against the bound rectangle of
// other. Used when other is flagged for rectangle-only collision.
func (b *SpriteBorder) IntersectsBorderRect(other *SpriteBorder) bool {
	if other == nil {
		return false
	}
	return b.IntersectsRect(other.Rect())
}
