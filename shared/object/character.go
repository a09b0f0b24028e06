package object

import "github.com/automoto/tilerun/shared/gamemath"

// Character is the movement state of an actor that walks, jumps and wall
// jumps. Attach one to an Object through its Char field.
type Character struct {
	MaxJumps          int
	JumpImpulse       float64
	WallJumpImpulse   float64
	Accel             float64
	Decel             float64
	AirControl        float64
	CoyoteFrames      int
	JumpBufferFrames  int
	MaxJumpHoldFrames int
	WallSlideSpeed    float64

	TargetVelX     float64
	RemainingJumps int
	Jumping        bool

	// Wall contact found by this tick's collision pass.
	TouchingWall bool
	WallSide     Direction

	lastWall   Direction
	wallStick  int
	coyote     int
	jumpBuffer int
	jumpHold   int
	jumpHeld   bool
	grounded   bool
}

// NewCharacter returns a character with the stock platformer feel.
func NewCharacter() *Character {
	return &Character{
		MaxJumps:          2,
		RemainingJumps:    2,
		JumpImpulse:       -10,
		WallJumpImpulse:   10,
		Accel:             0.6,
		Decel:             0.8,
		AirControl:        0.6,
		CoyoteFrames:      6,
		JumpBufferFrames:  6,
		MaxJumpHoldFrames: 12,
		WallSlideSpeed:    2,
	}
}

// JumpInProgress is true while a jump is still rising.
func (c *Character) JumpInProgress(o *Object) bool {
	return c.Jumping && o.VelY < 0
}

// SetWallContact records a side hit. Only Left and Right count.
func (c *Character) SetWallContact(side Direction, stickFrames int) {
	if !side.IsHorizontal() {
		return
	}
	c.TouchingWall = true
	c.WallSide = side
	c.wallStick = stickFrames
}

func (c *Character) landed() {
	c.RemainingJumps = c.MaxJumps
	c.Jumping = false
	c.coyote = 0
}

func (c *Character) canJump(o *Object) bool {
	return !o.inMidAir || c.coyote > 0 || c.lastWall != None || c.RemainingJumps > 0
}

// MoveRight sets the horizontal target speed to the right.
func (o *Object) MoveRight(running bool) {
	if o.Char == nil {
		return
	}
	o.Dir = Right
	o.Char.TargetVelX = float64(o.runSpeed(running))
}

// MoveLeft sets the horizontal target speed to the left.
func (o *Object) MoveLeft(running bool) {
	if o.Char == nil {
		return
	}
	o.Dir = Left
	o.Char.TargetVelX = -float64(o.runSpeed(running))
}

// StopX lets horizontal speed decay to zero.
func (o *Object) StopX() {
	if o.Char == nil {
		return
	}
	o.Char.TargetVelX = 0
	if o.VelY == 0 {
		o.Dir = None
	}
}

func (o *Object) runSpeed(running bool) int {
	if running {
		return o.Speed * 2
	}
	return o.Speed
}

// BufferJump queues a jump for the next few ticks.
func (o *Object) BufferJump() {
	if o.Char != nil {
		o.Char.jumpBuffer = o.Char.JumpBufferFrames
	}
}

// SetJumpHeld tracks the jump button for variable jump height.
func (o *Object) SetJumpHeld(held bool) {
	c := o.Char
	if c == nil {
		return
	}
	c.jumpHeld = held
	c.jumpHold = 0
	if held {
		c.jumpHold = c.MaxJumpHoldFrames
	}
}

// Jump performs a ground, coyote, wall or air jump, whichever applies first.
// It reports whether a jump happened.
func (o *Object) Jump() bool {
	c := o.Char
	if c == nil {
		return false
	}

	switch {
	case c.RemainingJumps > 0 && (!o.inMidAir || c.coyote > 0):
		o.VelY = c.JumpImpulse
	case c.lastWall != None || c.TouchingWall:
		side := c.lastWall
		if c.TouchingWall {
			side = c.WallSide
		}
		o.VelY = c.JumpImpulse * 1.25
		if side == Left {
			o.VelX = c.WallJumpImpulse
		} else {
			o.VelX = -c.WallJumpImpulse
		}
		o.SetInMidAir(true)
		c.Jumping = true
		c.RemainingJumps = max(0, c.MaxJumps-1)
		c.TouchingWall, c.WallSide, c.lastWall = false, None, None
		return true
	case c.RemainingJumps > 0 && c.RemainingJumps < c.MaxJumps:
		o.VelY = c.JumpImpulse
	default:
		return false
	}

	o.SetInMidAir(true)
	c.Jumping = true
	c.RemainingJumps--
	c.coyote = 0
	return true
}

func (c *Character) beforeTick(o *Object) {
	c.lastWall = None
	if c.TouchingWall {
		c.lastWall = c.WallSide
	}
	c.TouchingWall, c.WallSide = false, None

	if c.coyote > 0 {
		c.coyote--
	}
	if c.jumpBuffer > 0 {
		c.jumpBuffer--
	}
	if c.jumpBuffer > 0 && c.canJump(o) && o.Jump() {
		c.jumpBuffer = 0
	}

	o.VelX = gamemath.SmoothVelocity(o.VelX, c.TargetVelX, c.Accel, c.Decel, c.AirControl, o.inMidAir)
}

func (c *Character) afterTick(o *Object) {
	if c.TouchingWall {
		if c.wallStick > 0 {
			c.wallStick--
			o.VelY = min(o.VelY, c.WallSlideSpeed/2)
		} else {
			o.VelY = min(o.VelY, c.WallSlideSpeed)
		}
	}

	// Holding jump softens gravity while rising.
	if c.jumpHeld && o.VelY < 0 && c.jumpHold > 0 {
		o.VelY -= o.Gravity() * 0.5
		c.jumpHold--
	}

	grounded := o.platform != nil
	if c.grounded && !grounded && !c.Jumping {
		c.coyote = c.CoyoteFrames
	}
	c.grounded = grounded
}
