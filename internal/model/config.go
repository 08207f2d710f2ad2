package model

import (
	"fmt"
	"time"
)

// Config holds all presbot configuration
type Config struct {
	HTTP   HTTPConfig   `yaml:"http" mapstructure:"http"`
	Wiki   WikiConfig   `yaml:"wiki" mapstructure:"wiki"`
	Rate   RateConfig   `yaml:"rate" mapstructure:"rate"`
	Robots RobotsConfig `yaml:"robots" mapstructure:"robots"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the HTTP client used for all remote fetches
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// WikiConfig selects the MediaWiki instance queried for reference pages
type WikiConfig struct {
	// Endpoint overrides the API URL entirely; when empty it is derived
	// from Language.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Language string `yaml:"language" mapstructure:"language"`
}

// RateConfig controls per-host request rate limiting
type RateConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// RobotsConfig controls robots.txt compliance checking
type RobotsConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "presbot/0.1 (+https://github.com/ppiankov/presbot)",
			MaxBodyBytes: 5_000_000,
		},
		Wiki: WikiConfig{
			Language: "en",
		},
		Rate: RateConfig{
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Robots: RobotsConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
	}
}

// APIEndpoint returns the MediaWiki API URL to query
func (w WikiConfig) APIEndpoint() string {
	if w.Endpoint != "" {
		return w.Endpoint
	}
	lang := w.Language
	if lang == "" {
		lang = "en"
	}
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
}
