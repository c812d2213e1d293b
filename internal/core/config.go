package core

// RuntimeConfig contains configuration passed to hosts at initialization.
// Hosts use this to size the screen buffer, pace frames and seed the engine.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host scheduler
	Seed     int64 // RNG seed for deterministic obstacle streams
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
