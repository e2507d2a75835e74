package tick

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the per-instance credentials every request is built from.
// All three fields are required.
type Config struct {
	SubscriptionID string `envconfig:"TICK_SUBSCRIPTION_ID"`
	APIToken       string `envconfig:"TICK_API_TOKEN"`
	UserAgent      string `envconfig:"TICK_USER_AGENT"`
}

// configFields pairs each field with its wire-form name, in reporting order.
func (c Config) configFields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"subscriptionId", c.SubscriptionID},
		{"apiToken", c.APIToken},
		{"userAgent", c.UserAgent},
	}
}

// trimmed returns a copy with surrounding whitespace removed from every field.
func (c Config) trimmed() Config {
	return Config{
		SubscriptionID: strings.TrimSpace(c.SubscriptionID),
		APIToken:       strings.TrimSpace(c.APIToken),
		UserAgent:      strings.TrimSpace(c.UserAgent),
	}
}

// Validate checks all three fields and reports every violation at once.
// On failure the returned error is a *ConfigurationError listing each violated
// field in declaration order.
func (c Config) Validate() error {
	var fields []string
	for _, f := range c.trimmed().configFields() {
		if f.value == "" {
			fields = append(fields, f.name+" is required and must be a non-empty string")
		}
	}
	if len(fields) > 0 {
		return &ConfigurationError{Fields: fields}
	}
	return nil
}

// ConfigFromEnv loads credentials from TICK_SUBSCRIPTION_ID, TICK_API_TOKEN
// and TICK_USER_AGENT. The result is not validated; New does that.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
