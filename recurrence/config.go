package recurrence

import (
	"log/slog"
	"time"
)

// CalculatorConfig holds configuration options for the calculator.
type CalculatorConfig struct {
	// Cache configuration
	CacheEnabled bool
	CacheConfig  CacheConfig

	// MaxOccurrences is the hard cap on a single expansion regardless of
	// the caller-supplied limit.
	MaxOccurrences int

	// HolidayFunc, when set, marks emitted occurrences that fall on a
	// holiday. It never shifts dates; it only feeds metadata.
	HolidayFunc func(time.Time) bool

	// Logger receives debug/warn output. Nil means discard.
	Logger *slog.Logger
}

// DefaultCalculatorConfig provides sensible defaults for production use.
var DefaultCalculatorConfig = CalculatorConfig{
	CacheEnabled:   true,
	CacheConfig:    DefaultCacheConfig,
	MaxOccurrences: 1000,
}

// DisabledCacheConfig turns off expansion caching entirely. Useful in tests
// and in callers that expand each rule at most once.
var DisabledCacheConfig = CalculatorConfig{
	CacheEnabled:   false,
	MaxOccurrences: 1000,
}
