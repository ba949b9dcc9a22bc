package core

import "time"

// DefaultTickInterval is the logical simulation step: 16 ms, about 62.5 ticks per second.
const DefaultTickInterval = 16 * time.Millisecond

// RuntimeConfig contains configuration passed to hosts at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters (terminal hosts only)
	ScreenH      int           // Terminal height in characters (terminal hosts only)
	TickInterval time.Duration // Logical time per simulation tick
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// SeedOrNow returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
