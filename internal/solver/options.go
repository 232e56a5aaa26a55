package solver

// Options configures solver behavior.
type Options struct {
	Randomize bool  // Randomize shuffles candidate order at each choice point
	Seed      int64 // Seed for reproducible search (0 = time-based)
}

// DefaultOptions returns deterministic solver options.
// Candidates are tried in ascending order, which keeps uniqueness checks
// reproducible.
func DefaultOptions() *Options {
	return &Options{
		Randomize: false,
		Seed:      0,
	}
}
