package object

import "log"

// Platform returns the object currently supporting o, or nil.
func (o *Object) Platform() *Object { return o.platform }

// InMidAir reports whether o has no supporting surface.
func (o *Object) InMidAir() bool { return o.inMidAir }

// SetInMidAir has no effect on objects without gravity.
func (o *Object) SetInMidAir(v bool) {
	if o.Gravity() == 0 {
		return
	}
	o.inMidAir = v
}

// Falling reports whether o is airborne and coming down. Characters are not
// falling while a jump is still rising.
func (o *Object) Falling() bool {
	if o.Char != nil {
		return o.inMidAir && !o.Char.JumpInProgress(o) && o.VelY > 0
	}
	return o.inMidAir
}

// IsPlacedOnTopOf reports whether candidate is o's current platform.
func (o *Object) IsPlacedOnTopOf(candidate *Object) bool {
	return o.platform != nil && o.platform == candidate
}

// IsLandingOnTopOf reports whether o is close enough above candidate, and
// overlapping it enough horizontally, to latch onto it.
func (o *Object) IsLandingOnTopOf(candidate *Object) bool {
	sim := o.sim()
	b, cb := o.CollisionBounds(), candidate.CollisionBounds()

	if cb.Min.Y-b.Max.Y > sim.LatchGap() {
		return false
	}
	mostlyAbove := float64(cb.Min.Y-b.Min.Y) >= sim.MostlyAbove*float64(b.Dy())
	return mostlyAbove && candidate.Encompasses(o, Horizontal, sim.PlatformingPercentage)
}

// Latch makes p the supporting platform, places o's reference frame exactly
// the latch offset above it and ends any airborne state.
func (o *Object) Latch(p *Object) bool {
	o.platform = p
	o.attach()
	o.SetInMidAir(false)
	if o.Char != nil {
		o.Char.landed()
	}
	return true
}

// attach positions o so that its reference animation's first frame sits the
// latch offset above the platform.
func (o *Object) attach() {
	if o.platform == nil {
		return
	}
	target := o.platform.CollisionBounds().Min.Y - o.sim().LatchOffset

	bottom := 0
	o.withReferenceFrame(func() {
		bottom = o.CollisionBounds().Max.Y
	})
	o.place(o.x, o.y+target-bottom)
}

// detached probes one pixel past the latch offset below o, using the
// reference frame, and reports whether the platform is no longer there.
func (o *Object) detached() bool {
	probe := o.sim().LatchOffset + 1
	touching := false
	o.withReferenceFrame(func() {
		o.y += probe
		touching = o.CollidesWith(o.platform)
		o.y -= probe
	})
	return !touching
}

// withReferenceFrame runs fn with o's borders taken from the first frame of
// the reference animation. No animation state is touched.
func (o *Object) withReferenceFrame(fn func()) {
	if o.referenceAnimation() == nil {
		fn()
		return
	}
	o.refFrame = true
	defer func() { o.refFrame = false }()
	fn()
}

// relatchDisabled is true while a character's jump is under way.
func (o *Object) relatchDisabled() bool {
	return o.Char != nil && o.Char.Jumping
}

// relatch looks for an adjacent surface to latch onto right after leaving a
// platform, so tiles laid side by side behave as one floor.
func (o *Object) relatch() bool {
	if o.relatchDisabled() || o.world == nil {
		return false
	}
	for _, candidate := range o.world.index.Neighbors(o) {
		if candidate.noCollision {
			continue
		}
		if o.IsLandingOnTopOf(candidate) {
			return o.Latch(candidate)
		}
	}
	return false
}

// updatePlatforming drops a platform o has walked or jumped off, tries the
// neighbors, and marks o airborne when nothing holds it.
func (o *Object) updatePlatforming() {
	if o.Gravity() == 0 {
		return
	}

	if o.platform != nil && o.detached() {
		left := o.platform
		o.platform = nil
		if !o.relatch() && o.world != nil && o.world.Verbose {
			log.Printf("object: %s detached from %s", o.Name, left.Name)
		}
	}

	if o.platform == nil {
		o.SetInMidAir(true)
	}
}

// Detach clears the platform relation without looking for a new one.
func (o *Object) Detach() {
	o.platform = nil
	o.SetInMidAir(true)
}
