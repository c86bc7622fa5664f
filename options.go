package cubesolver

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	tablePath string
	noPersist bool
	maxLength int
	improve   bool
}

func defaultConfig() *config {
	return &config{}
}

// WithTablePath sets the pruning-table file path.
// By default tables live under ~/.cubesolver.
func WithTablePath(path string) Option {
	return func(c *config) {
		c.tablePath = path
	}
}

// WithoutPersistence builds pruning tables in memory and never touches
// disk. Useful for tests and ephemeral environments.
func WithoutPersistence() Option {
	return func(c *config) {
		c.noPersist = true
	}
}

// WithMaxLength overrides the global solution-length ceiling.
// The default of 31 moves is enough for every valid state.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithImprove keeps searching for a shorter solution after the first one is
// found, until the Solve context expires. Without it the first solution is
// returned immediately.
func WithImprove(enabled bool) Option {
	return func(c *config) {
		c.improve = enabled
	}
}
