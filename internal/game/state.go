// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateRunning is the normal turn loop.
	StateRunning State = iota
	// StateTerminated means the loop has ended and will not take more turns.
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
