package object

// Direction is a movement or collision direction. Composite values carry one
// vertical and one horizontal component.
type Direction int

const (
	None Direction = iota
	Left
	Up
	Right
	Down
	RightUp
	RightDown
	LeftUp
	LeftDown
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case RightUp:
		return "right-up"
	case RightDown:
		return "right-down"
	case LeftUp:
		return "left-up"
	case LeftDown:
		return "left-down"
	}
	return "none"
}

// Vertical returns Up, Down or None.
func (d Direction) Vertical() Direction {
	switch d {
	case Up, RightUp, LeftUp:
		return Up
	case Down, RightDown, LeftDown:
		return Down
	}
	return None
}

// Horizontal returns Left, Right or None.
func (d Direction) Horizontal() Direction {
	switch d {
	case Right, RightUp, RightDown:
		return Right
	case Left, LeftUp, LeftDown:
		return Left
	}
	return None
}

// IsHorizontal reports whether d is exactly Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// Compose joins a vertical and a horizontal component.
func Compose(vertical, horizontal Direction) Direction {
	v, h := vertical.Vertical(), horizontal.Horizontal()
	switch {
	case v == None:
		return h
	case h == None:
		return v
	case v == Up && h == Left:
		return LeftUp
	case v == Up:
		return RightUp
	case h == Left:
		return LeftDown
	}
	return RightDown
}

// Axis selects the dimension used by Encompasses.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)
