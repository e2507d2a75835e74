package tick

import "github.com/rs/zerolog"

// Option configures the client.
type Option func(*Tick)

// WithLogger sets the logger used for per-request debug events.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tick) { t.logger = l }
}

// WithHTTPClient sets a custom transport (for testing).
func WithHTTPClient(hc HTTPClient) Option {
	return func(t *Tick) { t.httpClient = hc }
}

// WithBaseURL overrides the fixed API origin (for testing).
func WithBaseURL(base string) Option {
	return func(t *Tick) { t.baseURL = trimTrailingSlash(base) }
}

// WithMetrics wires Prometheus instrumentation into every API call.
func WithMetrics(m *Metrics) Option {
	return func(t *Tick) { t.metrics = m }
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
