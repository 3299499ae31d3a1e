package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for deterministic simulation; the platform uses the
// screen size to map the world onto the terminal.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a summary of the simulation returned to the platform.
type GameState struct {
	Phase       string // Name of the active game state
	Over        bool   // Whether a terminal state was reached
	Enemies     int    // Live enemies
	Projectiles int    // Live projectiles
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
