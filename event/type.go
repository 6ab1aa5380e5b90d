package event

// EventType represents the type of game event
type EventType int

const (
	// === Input Event ===

	// EventMoveLeft requests one tick of leftward movement
	// Trigger: Input | Consumer: Player | Payload: nil
	EventMoveLeft EventType = iota

	// EventMoveRight requests one tick of rightward movement
	// Trigger: Input | Consumer: Player | Payload: nil
	EventMoveRight

	// EventJump requests a jump if the player stands on the floor
	// Trigger: Input | Consumer: Player | Payload: nil
	EventJump

	// === Clock Event ===

	// EventInvertTime flips the global time direction
	// Trigger: Input, Mirror | Consumer: TimeKeeper | Payload: nil
	EventInvertTime EventType = iota + 100

	// EventPauseToggle freezes or resumes the global clock
	// Trigger: Input | Consumer: TimeKeeper | Payload: nil
	EventPauseToggle

	// EventWorldReset rebuilds the world and clock
	// Trigger: Input | Consumer: World | Payload: nil
	EventWorldReset
)

// String returns a readable event name for logs
func (t EventType) String() string {
	switch t {
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventJump:
		return "Jump"
	case EventInvertTime:
		return "InvertTime"
	case EventPauseToggle:
		return "PauseToggle"
	case EventWorldReset:
		return "WorldReset"
	default:
		return "Unknown"
	}
}

// GameEvent is a queued request processed at the start of a tick
type GameEvent struct {
	Type    EventType
	Payload any
}
