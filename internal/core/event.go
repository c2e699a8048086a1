package core

// EventKind identifies something that happened during a tick that the
// platform may want to react to, such as playing a sound.
type EventKind int

const (
	EventPieceLocked EventKind = iota
	EventRowsCleared
	EventLevelUp
	EventGameOver
	EventPauseEntered
	EventPauseExited
	EventMuteToggled
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPieceLocked:
		return "PieceLocked"
	case EventRowsCleared:
		return "RowsCleared"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	case EventPauseEntered:
		return "PauseEntered"
	case EventPauseExited:
		return "PauseExited"
	case EventMuteToggled:
		return "MuteToggled"
	default:
		return "Unknown"
	}
}

// Event is a discrete occurrence reported by a game step.
type Event struct {
	Kind  EventKind
	Rows  int  // Rows removed (EventRowsCleared)
	Level int  // New level (EventLevelUp)
	Muted bool // New mute flag (EventMuteToggled)
}
