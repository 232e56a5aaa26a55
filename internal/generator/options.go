package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	Difficulty Difficulty    // Difficulty selects the carving profile
	Seed       int64         // Seed for reproducible puzzles (0 = random)
	Timeout    time.Duration // Timeout bounds carving time (0 = no limit)
}

// DefaultOptions returns standard generator options for a difficulty.
func DefaultOptions(d Difficulty) *Options {
	return &Options{
		Difficulty: d,
		Seed:       0,
		Timeout:    10 * time.Second,
	}
}
