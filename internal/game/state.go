// Package game ties the world, its entities and storage into a playable
// session, and provides the main game loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is normal exploration.
	StatePlaying State = iota
	// StateWon means the player walked out through the map edge.
	StateWon
	// StateDead means the player ran out of health.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Over reports whether the session has ended.
func (s State) Over() bool {
	return s != StatePlaying
}
