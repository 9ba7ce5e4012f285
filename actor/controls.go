package actor

// Action is a logical input the actor reacts to.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	Jump
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

// Controls answers discrete keyboard-state queries for one tick.
type Controls interface {
	// KeyDown reports whether the action is held this tick.
	KeyDown(a Action) bool
	// KeyPressed reports whether the action went down on this tick only.
	KeyPressed(a Action) bool
}

// Clock supplies the elapsed seconds since the previous tick.
type Clock interface {
	ElapsedTime() float64
}
