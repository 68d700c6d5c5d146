// Package config provides application constants and runtime configuration.
package config

const (
	// AppName is the application name.
	AppName = "countryinfo"

	// DefaultBatchConcurrency is the number of parallel workers for batch
	// lookups from stdin.
	DefaultBatchConcurrency = 4

	// MaxBatchConcurrency caps the --concurrency flag.
	MaxBatchConcurrency = 32
)

// Config holds runtime configuration assembled from CLI flags.
type Config struct {
	JSONOutput  bool
	Concurrency int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Concurrency: DefaultBatchConcurrency,
	}
}

// ClampConcurrency normalizes the concurrency setting into [1, max].
func (c *Config) ClampConcurrency() {
	if c.Concurrency < 1 {
		c.Concurrency = 1
	}
	if c.Concurrency > MaxBatchConcurrency {
		c.Concurrency = MaxBatchConcurrency
	}
}
