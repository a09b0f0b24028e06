package object

// CollidesWith is the narrow phase. Collision bounds must overlap first. If
// both objects have silhouette collision enabled their borders decide, using
// other's border rectangle when other is RectOnly. A missing or invalid
// border on either side leaves the bounds result standing.
func (o *Object) CollidesWith(other *Object) bool {
	if o.sim().CollisionsDisabled {
		return false
	}
	if !o.CollisionBounds().Overlaps(other.CollisionBounds()) {
		return false
	}
	if !o.bordersEnabled || !other.bordersEnabled {
		return true
	}

	sb, osb := o.Border(true), other.Border(true)
	if sb == nil || osb == nil {
		return true
	}
	// Verified on the cached borders so an invalid frame stays invalid.
	if !o.Border(false).VerifyBoundPoints() || !other.Border(false).VerifyBoundPoints() {
		return true
	}
	if other.RectOnly {
		return sb.IntersectsBorderRect(osb)
	}
	return sb.Intersects(osb)
}

// HandleCollision is the default collision response: falling objects land or
// slide off, everything else is pushed out of the obstacle.
func (o *Object) HandleCollision(other *Object) bool {
	if o.Falling() {
		return o.handleFalling(other)
	}
	o.ResolveCollision(other)
	return true
}

// ResolveCollision separates o from other along the direction the overlap
// suggests. It reports false when the search budget runs out; o is then left
// at the last position tried.
func (o *Object) ResolveCollision(other *Object) bool {
	return o.ResolveCollisionToward(other, o.collisionDirection(other))
}

// ResolveCollisionToward separates o from other as if the collision came
// from dir. With dir None the object's movement direction is used.
func (o *Object) ResolveCollisionToward(other *Object, dir Direction) bool {
	if dir.IsHorizontal() && o.Char != nil && o.inMidAir {
		o.Char.SetWallContact(dir, o.sim().WallStickFrames)
	}
	return o.closestValidPosition(other, dir, max(1, o.Speed))
}

// collisionDirection reads the side of contact off the overlap rectangle: a
// tall overlap is a side hit, a wide one a top or bottom hit. Square
// overlaps count as side hits.
func (o *Object) collisionDirection(other *Object) Direction {
	b := o.CollisionBounds()
	inter := b.Intersect(other.CollisionBounds())
	if inter.Empty() {
		return None
	}

	if inter.Dy() >= inter.Dx() {
		if inter.Min.X == b.Min.X {
			return Left
		}
		return Right
	}
	if inter.Min.Y == b.Min.Y {
		return Up
	}
	return Down
}

// closestValidPosition nudges o away from dir by step pixels at a time until
// it no longer collides with other.
func (o *Object) closestValidPosition(other *Object, dir Direction, step int) bool {
	if dir == None {
		dir = o.Dir
	}
	v, h := dir.Vertical(), dir.Horizontal()

	x, y := o.x, o.y
	for range o.sim().ResolveAttempts {
		switch v {
		case Up:
			y += step
		case Down:
			y -= step
		}
		switch h {
		case Left:
			x += step
		case Right:
			x -= step
		}

		o.SetPosition(x, y)
		if !o.CollidesWith(other) {
			return true
		}
	}
	return false
}

func (o *Object) handleFalling(other *Object) bool {
	if o.IsLandingOnTopOf(other) {
		return o.Latch(other)
	}

	// Bumped the underside of something overhead.
	if other.Encompasses(o, Horizontal, o.sim().CeilingEncompass) && other.y < o.y {
		o.ResolveCollisionToward(other, Up)
		return true
	}

	b, ob := o.CollisionBounds(), other.CollisionBounds()
	if b.Min.X > ob.Min.X {
		o.SetCollisionX(ob.Max.X)
	} else {
		o.SetCollisionX(ob.Min.X - b.Dx())
	}
	return true
}

func (o *Object) respond(other *Object) bool {
	if o.Responder != nil {
		return o.Responder.OnCollision(o, other)
	}
	return o.HandleCollision(other)
}

func (o *Object) ignores(other *Object) bool {
	if ig, ok := o.Responder.(Ignorer); ok {
		return ig.IgnoresCollisionWith(o, other)
	}
	return false
}

// collide runs the collision pass against o's spatial neighbors.
func (o *Object) collide() {
	if o.world == nil {
		return
	}
	tolerance := o.sim().SimilarHeightTolerance

	for _, other := range o.world.index.Neighbors(o) {
		if other == o {
			continue
		}
		if o.ignores(other) || other.ignores(o) || other.noCollision {
			continue
		}
		// The platform and tiles level with it belong to the platforming
		// handler.
		if o.IsPlacedOnTopOf(other) || other.AtSimilarHeight(o.platform, tolerance) {
			continue
		}

		if o.CollidesWith(other) && !o.respond(other) {
			break
		}
	}
}
