package object

import "testing"

func newCharacter(x, y int) *Object {
	o := New("hero", KindPlayer, x, y, 20, 20)
	o.Char = NewCharacter()
	return o
}

func TestJumpSequence(t *testing.T) {
	o := newCharacter(0, 0)

	steps := []struct {
		name      string
		want      bool
		remaining int
	}{
		{"ground jump", true, 1},
		{"air jump", true, 0},
		{"out of jumps", false, 0},
	}
	for _, s := range steps {
		if got := o.Jump(); got != s.want {
			t.Fatalf("%s: Jump() = %v, want %v", s.name, got, s.want)
		}
		if o.Char.RemainingJumps != s.remaining {
			t.Fatalf("%s: remaining = %d, want %d", s.name, o.Char.RemainingJumps, s.remaining)
		}
	}
	if !o.InMidAir() || !o.Char.Jumping {
		t.Error("jumping character not airborne")
	}
}

func TestWallJump(t *testing.T) {
	tests := []struct {
		name  string
		side  Direction
		wantX float64
	}{
		{"off a wall on the right", Right, -10},
		{"off a wall on the left", Left, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newCharacter(0, 0)
			o.SetInMidAir(true)
			o.Char.RemainingJumps = 0
			o.Char.SetWallContact(tt.side, 6)

			if !o.Jump() {
				t.Fatal("Jump() = false against a wall")
			}
			if o.VelX != tt.wantX {
				t.Errorf("VelX = %v, want %v", o.VelX, tt.wantX)
			}
			if o.VelY != -12.5 {
				t.Errorf("VelY = %v, want -12.5", o.VelY)
			}
			if o.Char.RemainingJumps != 1 || o.Char.TouchingWall {
				t.Errorf("remaining = %d, touching = %v", o.Char.RemainingJumps, o.Char.TouchingWall)
			}
		})
	}
}

func TestWallContactFromCollision(t *testing.T) {
	o := newCharacter(84, 400)
	o.Speed = 4
	o.SetInMidAir(true)
	wall := floor("wall", 100, 300, 40, 200)

	o.ResolveCollision(wall)
	if !o.Char.TouchingWall || o.Char.WallSide != Right {
		t.Errorf("wall contact = (%v, %v), want (true, right)", o.Char.TouchingWall, o.Char.WallSide)
	}

	o.Char.SetWallContact(Up, 6)
	if o.Char.WallSide != Right {
		t.Error("vertical contact recorded as a wall")
	}
}

func TestCoyoteJump(t *testing.T) {
	w := testWorld()
	ground := floor("ground", 0, 500, 100, 32)
	o := newCharacter(75, 475)
	w.Add(ground)
	w.Add(o)
	if !w.Settle(o) {
		t.Fatal("character did not settle")
	}

	for range 200 {
		o.MoveRight(false)
		w.Update()
		if o.Platform() == nil {
			break
		}
	}
	if !o.InMidAir() {
		t.Fatal("never left the ledge")
	}
	if !o.Jump() {
		t.Fatal("Jump() = false right after leaving the ledge")
	}
	if o.VelY != o.Char.JumpImpulse {
		t.Errorf("VelY = %v, want %v", o.VelY, o.Char.JumpImpulse)
	}
}

func TestBufferedJump(t *testing.T) {
	w := testWorld()
	ground := floor("ground", 0, 500, 1000, 100)
	o := newCharacter(100, 475)
	w.Add(ground)
	w.Add(o)
	w.Settle(o)

	o.BufferJump()
	w.Update()
	if !o.Char.Jumping || o.Y() >= 475 {
		t.Fatalf("buffered jump not taken: jumping %v, y %d", o.Char.Jumping, o.Y())
	}
	if o.Falling() {
		t.Error("rising character reported as falling")
	}

	// Up and back down onto the same ground.
	for range 200 {
		w.Update()
		if o.Platform() != nil && !o.InMidAir() {
			break
		}
	}
	if o.Char.Jumping || o.Char.RemainingJumps != o.Char.MaxJumps {
		t.Errorf("landing did not reset jumps: jumping %v, remaining %d", o.Char.Jumping, o.Char.RemainingJumps)
	}
	if got := o.CollisionBounds().Max.Y; got != 495 {
		t.Errorf("bottom = %d, want 495", got)
	}
}

func TestMoveSmoothing(t *testing.T) {
	o := newCharacter(0, 0)
	o.MoveRight(false)
	o.Char.beforeTick(o)
	if o.VelX != 0.6 {
		t.Errorf("VelX after one tick = %v, want 0.6", o.VelX)
	}
	if o.Dir != Right {
		t.Errorf("Dir = %v, want right", o.Dir)
	}

	o.MoveLeft(true)
	if o.Char.TargetVelX != -4 {
		t.Errorf("running target = %v, want -4", o.Char.TargetVelX)
	}
}
