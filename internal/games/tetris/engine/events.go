package engine

// EventKind identifies a discrete game event for observers such as audio.
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

// String returns a readable name for the event kind.
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

// Event is one observable transition.
type Event struct {
	Kind  EventKind
	Rows  int  // rows removed, for EventRowsCleared
	Level int  // new level, for EventLevelUp
	Muted bool // new mute state, for EventMuteToggled
}

func (s *State) emit(e Event) {
	s.events = append(s.events, e)
}

// Events returns the events emitted since the previous call and clears them.
func (s *State) Events() []Event {
	out := s.events
	s.events = nil
	return out
}
