package httpfetch

import (
	"time"

	"github.com/rfam/rfamops/internal/core/domain"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond is the default sustained request rate.
	DefaultRequestsPerSecond = 5.0

	// DefaultBurst is the default token bucket size.
	DefaultBurst = 5

	// DefaultUserAgent identifies the toolkit to remote services.
	DefaultUserAgent = "rfamops"
)

// Config holds the fetcher configuration.
type Config struct {
	// Timeout bounds each request, including reading the body.
	Timeout time.Duration

	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int

	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns the default fetcher configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:           DefaultTimeout,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultBurst,
		UserAgent:         DefaultUserAgent,
	}
}

// ConfigFromSettings builds a Config from application settings,
// falling back to defaults for unset values.
func ConfigFromSettings(s domain.FetchSettings) Config {
	cfg := DefaultConfig()
	if s.Timeout > 0 {
		cfg.Timeout = s.Timeout
	}
	if s.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = s.RequestsPerSecond
	}
	if s.Burst > 0 {
		cfg.Burst = s.Burst
	}
	if s.UserAgent != "" {
		cfg.UserAgent = s.UserAgent
	}
	return cfg
}
