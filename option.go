package gsregress

// Option represents a configurable parameter for the Collector.
type Option func(*Collector)

// WithRecursive makes the collector descend into subdirectories.
//
// Returns:
//   - Option: A function that enables recursion for the Collector.
func WithRecursive() Option {
	return func(c *Collector) {
		c.recursive = true
	}
}

// WithSkipHidden makes the collector ignore entries whose name starts with a dot.
func WithSkipHidden() Option {
	return func(c *Collector) {
		c.skipHidden = true
	}
}

// WithExcludeDirs adds directory names that are never entered.
//
// Args:
//   - names: Base names of the directories to skip, e.g. "vendor".
//
// Returns:
//   - Option: A function that extends the exclusion list of the Collector.
func WithExcludeDirs(names ...string) Option {
	return func(c *Collector) {
		c.excludeDirs = append(c.excludeDirs, names...)
	}
}

// WithDebug enables debug mode for the collector.
//
// When debug mode is enabled, every accepted file is logged at debug level.
//
// Returns:
//   - Option: A function that enables debug mode for the Collector.
func WithDebug() Option {
	return func(c *Collector) {
		c.isDebug = true
	}
}
