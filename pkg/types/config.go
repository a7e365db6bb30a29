package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout bounds each individual platform request.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "orisong/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the aggregation engine.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the per-platform result limit requested from each
	// catalog API (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MaxAttempts bounds how many times the whole platform batch is
	// retried when no platform yields results (default 2).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// RetryBaseDelay is the base inter-attempt delay; attempt n waits
	// RetryBaseDelay * n (default 1s).
	RetryBaseDelay time.Duration `json:"retry_base_delay" yaml:"retry_base_delay"`

	// SimilarityThreshold is the minimum title and artist similarity a
	// catalog entry needs to survive validation (default 0.6).
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`
}

// Normalize fills zero fields with the engine defaults.
func (c SearchConfig) Normalize() SearchConfig {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "orisong/0.1"
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 10
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 2
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = time.Second
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = 0.6
	}
	return c
}

// HistoryConfig holds settings for the research history store.
type HistoryConfig struct {
	// Path is the SQLite database file (default "research-history.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default page size for history listings (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// EngineConfig groups all configuration for the CLI.
type EngineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	History HistoryConfig `json:"history" yaml:"history"`
}
