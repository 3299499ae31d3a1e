package topdown

// State is the session's game state.
type State int

const (
	StateStart    State = iota // Waiting for the first click
	StatePlaying                // Simulation running
	StateGameOver               // Player touched an enemy
	StateVictory                // Every enemy destroyed
)

// String returns the state name used in logs and GameState.Phase.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}
