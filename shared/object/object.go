// Package object is the collision and platforming kernel: a generic game
// object that owns its narrow-phase collision handling and its attachment to
// supporting surfaces, and a World that ticks objects against a spatial index.
//
// Nothing here depends on ebiten. Pixels reach the kernel only through the
// Animation interface, so the whole package runs headless in tests.
package object

import (
	"image"
	"log"

	"github.com/automoto/tilerun/shared/border"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/simconfig"
)

// Kind tags the role an object plays in the game.
type Kind int

const (
	KindGeneric Kind = iota
	KindTile
	KindPlatform
	KindCharacter
	KindPlayer
	KindCollectible
)

func (k Kind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindPlatform:
		return "platform"
	case KindCharacter:
		return "character"
	case KindPlayer:
		return "player"
	case KindCollectible:
		return "collectible"
	}
	return "generic"
}

// Animation is the part of a sprite animation the kernel needs: the current
// frame index and the silhouette of a frame.
//
// Border returns the border of the current frame. With reposition set the
// result is translated by (x, y); otherwise the frame-local (or, for baked
// animations, already absolute) border is returned as-is. It returns nil when
// the frame has no border. BorderAt does the same for frame i without
// changing the animation's state.
type Animation interface {
	Frame() int
	Border(x, y int, reposition bool) *border.SpriteBorder
	BorderAt(i, x, y int, reposition bool) *border.SpriteBorder
}

// Responder reacts to a detected collision. Returning false stops the
// collision pass for this tick.
type Responder interface {
	OnCollision(self, other *Object) bool
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(self, other *Object) bool

func (f ResponderFunc) OnCollision(self, other *Object) bool { return f(self, other) }

// Ignorer is an optional Responder capability that filters collision pairs
// before any test runs.
type Ignorer interface {
	IgnoresCollisionWith(self, other *Object) bool
}

var standalone = simconfig.Default()

// Object is a positioned entity with optional gravity, a sprite silhouette
// and a platform relation.
//
// Position changes go through SetPosition so the spatial index stays current.
type Object struct {
	Name string
	Kind Kind
	Z    int

	VelX, VelY float64
	Speed      int
	Dir        Direction

	// Weightless objects ignore gravity and never platform.
	Weightless bool
	// RectOnly makes others test their silhouette against this object's
	// border rectangle instead of its border points.
	RectOnly bool
	// NeedsUpdate puts the object on the world's update list.
	NeedsUpdate bool
	// ConstrainToLevel clamps the object inside the world's level rect.
	ConstrainToLevel bool

	Responder Responder
	Char      *Character
	Data      any

	x, y, w, h int

	unmovable      bool
	inanimate      bool
	bordersEnabled bool
	noCollision    bool

	inMidAir bool
	platform *Object

	anim, ref Animation
	// refFrame serves borders from the reference animation's first frame.
	refFrame bool
	world    *World

	borderWarned bool
}

// New creates a movable, animate object of size w x h at (x, y). It is
// affected by gravity and starts on the ground, unattached.
func New(name string, kind Kind, x, y, w, h int) *Object {
	return &Object{
		Name:             name,
		Kind:             kind,
		Speed:            2,
		NeedsUpdate:      true,
		ConstrainToLevel: true,
		x:                x,
		y:                y,
		w:                w,
		h:                h,
		bordersEnabled:   true,
	}
}

// NewInanimate creates a scenery object. Unmovable ones expect their
// animation borders to be baked in absolute coordinates already. Inanimate
// objects are tested against as rectangles and are not ticked.
func NewInanimate(name string, kind Kind, x, y, w, h int, unmovable bool) *Object {
	o := New(name, kind, x, y, w, h)
	o.inanimate = true
	o.unmovable = unmovable
	o.RectOnly = true
	o.NeedsUpdate = false
	o.Weightless = true
	o.ConstrainToLevel = false
	return o
}

func (o *Object) sim() *simconfig.Simulation {
	if o.world != nil {
		return &o.world.sim
	}
	return &standalone
}

func (o *Object) X() int        { return o.x }
func (o *Object) Y() int        { return o.y }
func (o *Object) Width() int    { return o.w }
func (o *Object) Height() int   { return o.h }
func (o *Object) World() *World { return o.world }

// Position returns the top-left corner.
func (o *Object) Position() image.Point {
	return image.Pt(o.x, o.y)
}

// Unmovable objects never change position and carry baked borders.
func (o *Object) Unmovable() bool { return o.unmovable }

// Inanimate objects are scenery rather than actors.
func (o *Object) Inanimate() bool { return o.inanimate }

// SetSize changes the sprite size used by Bounds.
func (o *Object) SetSize(w, h int) {
	o.w, o.h = w, h
	o.reindex()
}

// Gravity returns the downward acceleration applied each tick.
func (o *Object) Gravity() float64 {
	if o.Weightless {
		return 0
	}
	return o.sim().Gravity
}

// SetPosition moves the object. While it stands on a platform its Y never
// increases; the platform relation owns downward placement.
func (o *Object) SetPosition(x, y int) {
	if y > o.y && o.platform != nil {
		y = o.y
	}
	o.place(x, y)
}

// Carry translates the object unconditionally, for riders of a moving
// platform.
func (o *Object) Carry(dx, dy int) {
	o.place(o.x+dx, o.y+dy)
}

func (o *Object) place(x, y int) {
	o.x, o.y = x, y
	o.reindex()
}

// Reindex refreshes o's grid cells after its collision bounds changed
// without a move, such as on a new animation frame.
func (o *Object) Reindex() { o.reindex() }

func (o *Object) reindex() {
	if o.world != nil {
		o.world.index.Update(o)
	}
}

// SetAnimation replaces the active animation.
func (o *Object) SetAnimation(a Animation) {
	o.anim = a
	o.reindex()
}

// Animation returns the active animation, possibly nil.
func (o *Object) Animation() Animation { return o.anim }

// SetReferenceAnimation sets the animation whose first frame defines latch
// and detach distances. Without one the active animation is used.
func (o *Object) SetReferenceAnimation(a Animation) { o.ref = a }

func (o *Object) referenceAnimation() Animation {
	if o.ref != nil {
		return o.ref
	}
	return o.anim
}

// EnableBorders toggles silhouette collision for this object. When disabled
// its collision bounds rectangle is used for every test.
func (o *Object) EnableBorders(enable bool) { o.bordersEnabled = enable }

// BordersEnabled reports whether silhouette collision is on.
func (o *Object) BordersEnabled() bool { return o.bordersEnabled }

// DisableCollision removes the object from other objects' collision passes.
func (o *Object) DisableCollision(disable bool) { o.noCollision = disable }

// CollisionDisabled reports whether others skip this object.
func (o *Object) CollisionDisabled() bool { return o.noCollision }

// Bounds is the full sprite rectangle.
func (o *Object) Bounds() image.Rectangle {
	return image.Rect(o.x, o.y, o.x+o.w, o.y+o.h)
}

// Border returns the silhouette of the current frame. Unmovable objects are
// never repositioned because their borders are already absolute.
func (o *Object) Border(reposition bool) *border.SpriteBorder {
	reposition = reposition && !o.unmovable
	if o.refFrame {
		return o.referenceAnimation().BorderAt(0, o.x, o.y, reposition)
	}
	if o.anim == nil {
		return nil
	}
	return o.anim.Border(o.x, o.y, reposition)
}

// CollisionBounds is the tight rectangle spanned by the current frame's
// bound points, in level coordinates. Objects without a usable border fall
// back to Bounds.
func (o *Object) CollisionBounds() image.Rectangle {
	sb := o.Border(false)
	if sb == nil {
		return o.Bounds()
	}
	if !sb.VerifyBoundPoints() {
		if !o.borderWarned {
			log.Printf("object: unable to verify bound points for %s, using sprite bounds", o.Name)
			o.borderWarned = true
		}
		return o.Bounds()
	}

	r := sb.Rect()
	if !o.unmovable {
		r = r.Add(image.Pt(o.x, o.y))
	}
	return r
}

// SetCollisionX moves the object so its collision bounds start at x.
func (o *Object) SetCollisionX(x int) {
	dx := o.CollisionBounds().Min.X - o.x
	o.SetPosition(x-dx, o.y)
}

// Encompasses reports whether the collision bounds of o and other overlap on
// axis by at least pct of other's extent on that axis. Extents are treated as
// closed intervals.
func (o *Object) Encompasses(other *Object, axis Axis, pct float64) bool {
	b, ob := o.CollisionBounds(), other.CollisionBounds()

	start, end := b.Min.X, b.Max.X
	oStart, oEnd := ob.Min.X, ob.Max.X
	extent := ob.Dx()
	if axis == Vertical {
		start, end = b.Min.Y, b.Max.Y
		oStart, oEnd = ob.Min.Y, ob.Max.Y
		extent = ob.Dy()
	}

	if start > oEnd || end < oStart {
		return false
	}
	overlap := min(end, oEnd) - max(start, oStart) + 1
	return overlap >= int(float64(extent)*pct)
}

// AtSimilarHeight reports whether other's Y is within tolerance of o's.
func (o *Object) AtSimilarHeight(other *Object, tolerance int) bool {
	if other == nil {
		return false
	}
	d := o.y - other.y
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// ClampTo keeps the sprite rectangle inside area.
func (o *Object) ClampTo(area image.Rectangle) {
	x, y := o.x, o.y
	if x < area.Min.X {
		x = area.Min.X
	} else if x > area.Max.X-o.w {
		x = area.Max.X - o.w
	}
	if y < area.Min.Y {
		y = area.Min.Y
	} else if y > area.Max.Y-o.h {
		y = area.Max.Y - o.h
	}
	if x != o.x || y != o.y {
		o.SetPosition(x, y)
	}
}

// Update runs one tick: character input, gravity, platform state, movement
// and the collision pass against spatial neighbors.
func (o *Object) Update() {
	if o.Char != nil {
		o.Char.beforeTick(o)
	}

	if o.Gravity() > 0 {
		o.applyGravity()
		o.updatePlatforming()
	}

	if !o.unmovable {
		o.move()
		if o.ConstrainToLevel && o.world != nil && !o.world.level.Empty() {
			o.ClampTo(o.world.level)
		}
	}

	if o.Char != nil {
		o.Char.afterTick(o)
	}
}

func (o *Object) applyGravity() {
	if !o.inMidAir {
		o.VelY = 0
		return
	}
	o.VelY = gamemath.ApplyGravity(o.VelY, o.Gravity(), o.sim().TerminalVelocity)
}

// move applies velocity and runs the collision pass. A descending airborne
// object moves down in steps no larger than the latch offset so a fast fall
// cannot sink past the point where landing is still recognised.
func (o *Object) move() {
	dx, dy := int(o.VelX), int(o.VelY)

	step := dy
	if o.inMidAir && dy > 0 && o.Gravity() > 0 && o.world != nil {
		step = max(1, o.sim().LatchOffset)
	}

	for first := true; ; first = false {
		chunk := dy
		if dy > 0 {
			chunk = min(dy, step)
		}
		x := o.x
		if first {
			x += dx
		}
		o.SetPosition(x, o.y+chunk)
		dy -= chunk

		o.collide()
		if dy <= 0 || o.platform != nil {
			return
		}
	}
}
