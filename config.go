package inorder

import (
	"github.com/rcrowley/go-metrics"
)

// Classification selects how a wanted call whose mock and method match the next
// unconsumed invocation, but whose arguments do not, is reported.
type Classification int

const (
	// ThreeTier checks order (mock and method) first, then arguments, then count,
	// and reports the first tier that fails. An argument mismatch on an in-order
	// invocation is always a WrongArguments failure.
	ThreeTier Classification = iota

	// PinnedCompat reproduces historical behavior: an argument mismatch on an
	// in-order invocation is reported as a StrictVerification failure when an exact
	// count above one was wanted, or when the wanted call still occurs later in the
	// ledger. Every other argument mismatch is a WrongArguments failure.
	PinnedCompat
)

func (c Classification) String() string {
	switch c {
	case ThreeTier:
		return "three-tier"
	case PinnedCompat:
		return "pinned-compat"
	}
	return "unknown"
}

// Config is used to pass multiple configuration options to a StrictSession.
type Config struct {
	Verify struct {
		// How argument mismatches on in-order invocations are classified
		// (default ThreeTier).
		Classification Classification
		// Compares a recorded argument with a wanted literal (default
		// DeepEquality). Wanted arguments implementing ArgumentMatcher bypass it.
		ArgumentEquality ArgumentEquality
	}

	// MetricRegistry is the registry verification metrics are written to. Defaults
	// to a local registry; set it to metrics.DefaultRegistry to share them.
	MetricRegistry metrics.Registry
}

// NewConfig returns a new configuration instance with sane defaults.
func NewConfig() *Config {
	c := &Config{}

	c.Verify.Classification = ThreeTier
	c.Verify.ArgumentEquality = DeepEquality
	c.MetricRegistry = metrics.NewRegistry()

	return c
}

// Validate checks a Config instance. It will return a
// ConfigurationError if the specified values don't make sense.
func (c *Config) Validate() error {
	switch {
	case c.Verify.Classification != ThreeTier && c.Verify.Classification != PinnedCompat:
		return ConfigurationError("Verify.Classification must be ThreeTier or PinnedCompat")
	case c.Verify.ArgumentEquality == nil:
		return ConfigurationError("Verify.ArgumentEquality must not be nil")
	case c.MetricRegistry == nil:
		return ConfigurationError("MetricRegistry must not be nil")
	}
	return nil
}
