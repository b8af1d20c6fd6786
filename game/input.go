package game

// Action is a logical control, independent of the device that produced it
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionMenuUp:
		return "menu-up"
	case ActionMenuDown:
		return "menu-down"
	case ActionConfirm:
		return "confirm"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// EventKind identifies the shape of an input event
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventFire    // X, Y hold the aim point
	EventPointer // X, Y hold the pointer position
)

// Event is one entry of the logical input stream
type Event struct {
	Kind   EventKind
	Action Action
	X, Y   float64
}

// KeyDown creates a press event
func KeyDown(a Action) Event {
	return Event{Kind: EventKeyDown, Action: a}
}

// KeyUp creates a release event
func KeyUp(a Action) Event {
	return Event{Kind: EventKeyUp, Action: a}
}

// FireRequested creates a fire request aimed at the given world point
func FireRequested(x, y float64) Event {
	return Event{Kind: EventFire, X: x, Y: y}
}

// PointerMoved creates a pointer update
func PointerMoved(x, y float64) Event {
	return Event{Kind: EventPointer, X: x, Y: y}
}

// Intent is the player's accumulated control state between ticks
type Intent struct {
	Up, Down, Left, Right bool

	// Latest pointer position
	Pointer Vec2

	// Pending fire request, consumed by the next tick
	Fire    bool
	FireAim Vec2
}

// set updates a held-direction flag; non-movement actions are ignored
func (in *Intent) set(a Action, held bool) {
	switch a {
	case ActionMoveUp:
		in.Up = held
	case ActionMoveDown:
		in.Down = held
	case ActionMoveLeft:
		in.Left = held
	case ActionMoveRight:
		in.Right = held
	}
}

// Axis returns the raw movement direction from the held flags, components in {-1, 0, 1}
func (in Intent) Axis() Vec2 {
	var v Vec2
	if in.Up {
		v.Y -= 1
	}
	if in.Down {
		v.Y += 1
	}
	if in.Left {
		v.X -= 1
	}
	if in.Right {
		v.X += 1
	}
	return v
}
